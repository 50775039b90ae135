package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CollectFiles expands a delimited list of files and directories into
// the files whose extension matches ext (case-insensitive). Directories
// are not searched recursively. Hidden and lock files, starting with
// "." or "~", are skipped.
func CollectFiles(sourceList, ext, delimiter string) ([]string, error) {
	var files []string

	for _, source := range strings.Split(sourceList, delimiter) {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}

		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			// Missing files surface as translation failures later
			if matches(source, ext) {
				files = append(files, source)
			}
			continue
		}

		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", source, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !matches(entry.Name(), ext) {
				continue
			}
			files = append(files, filepath.Join(source, entry.Name()))
		}
	}

	return files, nil
}

func matches(path, ext string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}

// TargetName returns the file name of the translation of file into
// language, e.g. "talk.yaml" -> "talk_de.yaml". An empty language keeps
// the name.
func TargetName(file, language string) string {
	name := filepath.Base(file)
	if language == "" {
		return name
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + language + ext
}
