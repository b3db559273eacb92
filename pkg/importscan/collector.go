// Package importscan collects import statements from a source tree.
package importscan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/src-d/enry/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Sumatoshi-tech/depusage/pkg/importmodel"
)

// DefaultExtension is the source file extension scanned when none is configured.
const DefaultExtension = ".kt"

const tracerName = "depusage/importscan"

// ErrFileRead is returned when the source tree or one of its files cannot be read.
var ErrFileRead = errors.New("file read failure")

// errNotText marks a file whose content is not valid UTF-8.
var errNotText = errors.New("content is not valid UTF-8 text")

// Collector walks a source tree and extracts import strings.
type Collector struct {
	// Extension selects the files to read, including the leading dot.
	Extension string
	// SkipVendor skips paths that enry classifies as vendored.
	SkipVendor bool

	logger *slog.Logger
}

// NewCollector creates a Collector for files with the given extension.
// An empty extension falls back to DefaultExtension.
func NewCollector(extension string, logger *slog.Logger) *Collector {
	if extension == "" {
		extension = DefaultExtension
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Collector{
		Extension: extension,
		logger:    logger,
	}
}

// Collect returns the set of unique imports found under root.
func (c *Collector) Collect(ctx context.Context, root string) (importmodel.Set, error) {
	files, err := c.CollectFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	set := importmodel.NewSet()
	for _, file := range files {
		set.Add(file.Imports...)
	}

	return set, nil
}

// CollectFiles walks root and returns one record per scanned file, in lexical path order.
// The walk stops at the first read failure.
func (c *Collector) CollectFiles(ctx context.Context, root string) ([]importmodel.File, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "importscan.collect")
	defer span.End()

	var (
		files        []importmodel.File
		totalBytes   uint64
		totalImports int
	)

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
		}

		ctxErr := ctx.Err()
		if ctxErr != nil {
			return ctxErr
		}

		if c.SkipVendor && c.isVendor(root, path, entry.IsDir()) {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() || filepath.Ext(path) != c.Extension {
			return nil
		}

		file, readErr := c.scanFile(ctx, path)
		if readErr != nil {
			return readErr
		}

		totalBytes += uint64(file.Size)
		totalImports += len(file.Imports)
		files = append(files, file)

		return nil
	})
	if walkErr != nil {
		span.RecordError(walkErr)

		return nil, walkErr
	}

	span.SetAttributes(attribute.Int("depusage.files", len(files)))

	c.logger.InfoContext(ctx, "source tree scanned",
		slog.String("root", root),
		slog.Int("files", len(files)),
		slog.String("size", humanize.Bytes(totalBytes)),
		slog.Int("imports", totalImports),
	)

	return files, nil
}

// isVendor matches the path relative to root so the location of root itself never counts.
func (c *Collector) isVendor(root, path string, dir bool) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}

	rel = filepath.ToSlash(rel)
	if dir {
		rel += "/"
	}

	return enry.IsVendor(rel)
}

func (c *Collector) scanFile(ctx context.Context, path string) (importmodel.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return importmodel.File{}, fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}

	if !utf8.Valid(data) {
		return importmodel.File{}, fmt.Errorf("%w: %s: %w", ErrFileRead, path, errNotText)
	}

	file := importmodel.File{
		Path:    path,
		Lang:    enry.GetLanguage(filepath.Base(path), data),
		Imports: ExtractImports(string(data)),
		Size:    int64(len(data)),
	}

	c.logger.DebugContext(ctx, "file scanned",
		slog.String("path", path),
		slog.String("lang", file.Lang),
		slog.Int("imports", len(file.Imports)),
	)

	return file, nil
}
