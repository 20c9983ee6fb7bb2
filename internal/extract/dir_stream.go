package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"catalog-extract/internal/metrics"
)

// StreamFromDir extracts every file in dir and streams a single JSON array
// to w, one ProductExtraction per file, with SourceFile recorded on each.
//
// Behavior:
//   - stable ordering by filename
//   - unreadable or invalid-document files are skipped so one bad page
//     never aborts a batch
//   - baseURL stands in as the source URL for every file (relative image
//     resolution and brand inference)
func (e *Extractor) StreamFromDir(w io.Writer, dir, baseURL string, enc *json.Encoder) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if _, err := io.WriteString(w, "["); err != nil {
		return fmt.Errorf("write [: %w", err)
	}

	first := true
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		b, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		start := time.Now()
		p, err := e.Extract(string(b), baseURL)
		RecordExtraction(p, err, time.Since(start))
		if err != nil {
			if errors.Is(err, ErrInvalidDocument) {
				continue
			}
			return fmt.Errorf("extract %s: %w", entry.Name(), err)
		}
		p.SourceFile = entry.Name()

		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return fmt.Errorf("write comma: %w", err)
			}
		}
		first = false
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}

	if _, err := io.WriteString(w, "]"); err != nil {
		return fmt.Errorf("write ]: %w", err)
	}
	return nil
}

// RecordExtraction records the outcome of one Extract call on the active
// metrics backend.
func RecordExtraction(p *ProductExtraction, err error, dur time.Duration) {
	switch {
	case errors.Is(err, ErrInvalidDocument):
		metrics.IncCounter(metrics.PagesTotal, 1, metrics.Labels{"status": "invalid"})
		return
	case err != nil:
		metrics.IncCounter(metrics.PagesTotal, 1, metrics.Labels{"status": "error"})
		return
	}

	metrics.IncCounter(metrics.PagesTotal, 1, metrics.Labels{"status": "ok"})
	if len(p.Variants) > 0 {
		metrics.IncCounter(metrics.VariantsTotal, float64(len(p.Variants)), nil)
	}
	if len(p.Categories) > 0 {
		metrics.IncCounter(metrics.CategoriesTotal, float64(len(p.Categories)), nil)
	}
	metrics.ObserveHistogram(metrics.DurationSeconds, dur.Seconds(), nil)
}
