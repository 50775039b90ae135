package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/decktrans/internal/processor"
)

// TranslateFile translates the deck at source with proc and saves the
// result at target. The document is named after the source file.
func TranslateFile(ctx context.Context, proc *processor.Processor, source, target string) (processor.Stats, error) {
	d, err := Load(source)
	if err != nil {
		return processor.Stats{}, err
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	doc := d.Document(name)
	stats := proc.TranslateDocument(ctx, doc)
	doc.Commit()

	if err := d.Save(target); err != nil {
		return stats, fmt.Errorf("failed to save %s: %w", target, err)
	}
	return stats, nil
}
