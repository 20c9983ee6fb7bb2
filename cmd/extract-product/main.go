// Command extract-product reads supplier product-page HTML (from stdin, a
// URL, or a directory of files), runs the catalog extraction engine, and
// prints JSON.
//
// Usage (stdin):
//
//	cat page.html | extract-product
//
// Usage (fetch URL):
//
//	extract-product -url "https://www.nerotapware.com.au/some-product"
//
// Usage (directory batch mode):
//
//	extract-product -dir "./pages" -base-url "https://www.nerotapware.com.au/"
//
// Debug (print outer HTML blocks):
//
//	cat page.html | extract-product -selector "h1.product_title"
//
// Debug (print text for selector matches):
//
//	cat page.html | extract-product -selector ".summary .price" -text
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"catalog-extract/internal/extract"
	"catalog-extract/internal/fetch"
	"catalog-extract/internal/metrics"
	"catalog-extract/internal/metrics/datadog"
)

func main() {
	os.Exit(run(
		context.Background(),
		os.Args[1:],
		os.Stdin,
		os.Stdout,
		os.Stderr,
		http.DefaultClient,
	))
}

// run is split out from main so the command can be unit tested without
// spawning an OS process.
//
// It returns a Unix-style exit code:
//   - 0 for success
//   - 2 for usage/config errors
//   - 1 for operational/runtime errors
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	httpClient *http.Client,
) int {
	fs := flag.NewFlagSet("extract-product", flag.ContinueOnError)
	fs.SetOutput(stderr)

	urlFlag := fs.String("url", "", "Optional: fetch HTML from URL instead of stdin")
	dirFlag := fs.String("dir", "", "Optional: directory of HTML files to extract (one record per file)")
	baseURL := fs.String("base-url", "", "Source URL used for image resolution and brand inference in -dir mode")
	tablesPath := fs.String("tables", "", "Optional: JSON lookup-table overrides file")
	timeout := fs.Duration("timeout", 20*time.Second, "Timeout for -url fetch")
	debugSelector := fs.String("selector", "", "Debug: CSS selector to print matches for (not JSON)")
	onlyText := fs.Bool("text", false, "Debug: print text blocks for -selector matches (not JSON)")
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	metricsBackend := fs.String("metrics-backend", "none", "Metrics backend (none, datadog)")
	metricsTags := fs.String("metrics-tags", "", "Extra metrics tags, comma-separated (e.g. env:prod,supplier:nero)")
	verbose := fs.Bool("v", false, "Enable verbose logs")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	loader := fetch.NewLoader(httpClient, *timeout)

	// Debug selector mode needs HTML input (stdin or url) but no tables.
	if *debugSelector != "" {
		html, err := loader.Load(ctx, fetch.Input{URL: *urlFlag, Stdin: stdin})
		if err != nil {
			logger.Error().Err(err).Msg("load html")
			return 1
		}
		if err := extract.DebugPrintSelector(stdout, html, *debugSelector, *onlyText); err != nil {
			logger.Error().Err(err).Msg("debug selector")
			return 1
		}
		return 0
	}

	tables := extract.DefaultTables()
	if *tablesPath != "" {
		var err error
		tables, err = extract.LoadTablesFile(*tablesPath)
		if err != nil {
			logger.Error().Err(err).Str("path", *tablesPath).Msg("load tables")
			return 2
		}
	}
	extractor := extract.New(tables, nil)

	switch *metricsBackend {
	case "datadog":
		b, err := datadog.NewBackend(ctx, datadog.Options{
			JobName: "extract-product",
			Tags:    datadog.ParseTagsCSV(*metricsTags),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("metrics: datadog init failed; metrics disabled")
		} else {
			metrics.SetBackend(b)
			defer func() {
				if err := b.Close(); err != nil {
					logger.Warn().Err(err).Msg("metrics: datadog close/flush")
				}
			}()
		}
	case "", "none":
		// metrics disabled; nop backend remains
	default:
		logger.Warn().Str("backend", *metricsBackend).Msg("metrics: unknown backend; metrics disabled")
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	// Directory batch mode: stream output as a single JSON array.
	if *dirFlag != "" {
		if err := extractor.StreamFromDir(stdout, *dirFlag, *baseURL, enc); err != nil {
			logger.Error().Err(err).Str("dir", *dirFlag).Msg("dir extract")
			return 1
		}
		return 0
	}

	// Single input mode: stdin or -url.
	html, err := loader.Load(ctx, fetch.Input{URL: *urlFlag, Stdin: stdin})
	if err != nil {
		logger.Error().Err(err).Msg("load html")
		return 1
	}

	start := time.Now()
	p, err := extractor.Extract(html, *urlFlag)
	extract.RecordExtraction(p, err, time.Since(start))
	if err != nil {
		if errors.Is(err, extract.ErrInvalidDocument) {
			logger.Error().Err(err).Msg("input is not a readable HTML document")
		} else {
			logger.Error().Err(err).Msg("extract")
		}
		return 1
	}

	logger.Debug().
		Str("sku", p.SKU).
		Int("variants", len(p.Variants)).
		Int("categories", len(p.Categories)).
		Msg("extracted")

	if err := enc.Encode(p); err != nil {
		logger.Error().Err(err).Msg("encode json")
		return 1
	}
	return 0
}
