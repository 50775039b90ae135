package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/decktrans/internal/deck"
	"codeberg.org/snonux/decktrans/internal/memory"
	"codeberg.org/snonux/decktrans/internal/processor"
	"codeberg.org/snonux/decktrans/internal/translation"
)

// FileTranslator translates the document at source into target
type FileTranslator func(ctx context.Context, proc *processor.Processor, source, target string) (processor.Stats, error)

// Job translates a set of files into TargetDir
type Job struct {
	TargetDir string

	// Language is appended to target file names; empty keeps the names
	Language string

	// GlobalDictionary and Dictionary are resolved against TargetDir
	// unless absolute. Dictionary may be empty.
	GlobalDictionary       string
	Dictionary             string
	RemoveUnusedFromGlobal bool

	// Backend answers texts missing from every dictionary; nil leaves
	// them untranslated
	Backend    translation.Service
	Remove     processor.RemovePredicate
	Translator FileTranslator
	Status     func(string)
}

// Result summarizes a finished job
type Result struct {
	Files         int
	Translated    int
	Failed        int
	Pruned        int
	GlobalEntries int
	LocalEntries  int
	Stats         processor.Stats
}

func (j *Job) dictionaryPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(j.TargetDir, name)
}

func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Run translates files one by one. A failing file is reported and
// skipped; errors loading or persisting the dictionaries are returned.
func (j *Job) Run(ctx context.Context, files []string) (*Result, error) {
	if j.GlobalDictionary == "" {
		return nil, fmt.Errorf("global dictionary not set")
	}
	if err := os.MkdirAll(j.TargetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	backend := j.Backend
	if backend == nil {
		backend = translation.EmptyOrDefault
	}

	globalPath := j.dictionaryPath(j.GlobalDictionary)
	globalStore := memory.OpenStore(globalPath)
	global := memory.NewTable(tableName(globalPath),
		memory.WithBackend(translation.NoTranslationNeeded(backend)))
	if err := global.LoadFrom(ctx, globalStore); err != nil {
		return nil, err
	}

	table := global
	var local *memory.Table
	var localStore memory.Store
	if j.Dictionary != "" {
		localPath := j.dictionaryPath(j.Dictionary)
		localStore = memory.OpenStore(localPath)
		local = memory.NewTable(tableName(localPath), memory.WithFallback(global, true))
		if err := local.LoadFrom(ctx, localStore); err != nil {
			return nil, err
		}
		table = local
	}

	translate := j.Translator
	if translate == nil {
		translate = deck.TranslateFile
	}
	status := j.Status
	if status == nil {
		status = func(string) {}
	}

	proc := processor.NewProcessor(table, j.Remove)
	result := &Result{Files: len(files)}

	for i, file := range files {
		name := filepath.Base(file)
		status(fmt.Sprintf("Translate %d/%d %s", i+1, len(files), name))
		proc.SetStatus(func(s string) {
			status(fmt.Sprintf("Translate %s: %s", name, s))
		})

		target := filepath.Join(j.TargetDir, TargetName(file, j.Language))
		stats, err := translateFile(ctx, translate, proc, file, target)
		result.Stats.Add(stats)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error translating '%s': %v\n", file, err)
			result.Failed++
			continue
		}
		result.Translated++
	}

	var errs []error
	if local != nil {
		if j.RemoveUnusedFromGlobal {
			result.Pruned = global.RemoveUnreferencedKeys(local.Keys())
		}
		if err := local.PersistTo(ctx, localStore); err != nil {
			errs = append(errs, err)
		}
		result.LocalEntries = local.Len()
	}
	if err := global.PersistTo(ctx, globalStore); err != nil {
		errs = append(errs, err)
	}
	result.GlobalEntries = global.Len()

	return result, errors.Join(errs...)
}

// translateFile runs one file translation, turning panics into errors
func translateFile(ctx context.Context, translate FileTranslator, proc *processor.Processor, source, target string) (stats processor.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return translate(ctx, proc, source, target)
}

// PrintSummary writes the outcome of a job
func PrintSummary(w io.Writer, r *Result) {
	fmt.Fprintf(w, "\n=== Translation Summary ===\n")
	fmt.Fprintf(w, "Total files: %d\n", r.Files)
	fmt.Fprintf(w, "Translated: %d\n", r.Translated)
	if r.Failed > 0 {
		fmt.Fprintf(w, "Errors: %d\n", r.Failed)
	}
	fmt.Fprintf(w, "Run groups: %s\n", r.Stats)
	fmt.Fprintf(w, "Global dictionary entries: %d\n", r.GlobalEntries)
	if r.LocalEntries > 0 {
		fmt.Fprintf(w, "Job dictionary entries: %d\n", r.LocalEntries)
	}
	if r.Pruned > 0 {
		fmt.Fprintf(w, "Removed from global dictionary: %d\n", r.Pruned)
	}
	fmt.Fprintf(w, "===========================\n")
}
