// Package batch converts every image of a directory into level files.
package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ironsheep/nonoconv/internal/imaging"
	"github.com/ironsheep/nonoconv/internal/nonogram"
)

// Converter turns one decoded image into a nonogram.
type Converter interface {
	Convert(img image.Image, name string) (*nonogram.Nonogram, error)
}

// Runner processes all images of InputDir one after the other.
type Runner struct {
	Converter Converter

	InputDir  string
	Extension string
	OutputDir string

	// Tiered writes levels into a size tier subdirectory of OutputDir.
	Tiered bool

	// DryRun converts and counts without writing any file.
	DryRun bool

	// PreviewDir receives a rendered PNG of every converted level when set.
	PreviewDir   string
	PreviewScale int

	// Progress receives one line per converted file. Nil discards it.
	Progress io.Writer

	Logger *slog.Logger
}

// Run converts every matching file. Files that fail are logged, recorded in
// the report and skipped. Run only returns an error when the input directory
// cannot be listed or ctx is done; the report then covers the files
// processed so far.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	progress := r.Progress
	if progress == nil {
		progress = io.Discard
	}

	report := &Report{Histogram: nonogram.NewHistogram()}

	files, err := imaging.ListImages(r.InputDir, r.Extension)
	if err != nil {
		return report, err
	}
	logger.Debug("Batch started", "input", r.InputDir, "files", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry, err := r.convertFile(ctx, logger, file, report.Histogram)
		if err != nil {
			logger.Error("Skipping file", "file", filepath.Base(file), "error", err)
			report.Skipped = append(report.Skipped, Skip{File: file, Reason: err.Error()})
			continue
		}
		report.Converted = append(report.Converted, *entry)
		fmt.Fprintf(progress, "File %s converted...\n", file)
	}
	return report, nil
}

func (r *Runner) convertFile(ctx context.Context, logger *slog.Logger, file string, hist *nonogram.Histogram) (*Entry, error) {
	img, err := imaging.Load(file)
	if err != nil {
		return nil, err
	}
	info := imaging.Info(img)
	logger.Debug("Reading image", "file", filepath.Base(file),
		"width", info.Width, "height", info.Height, "paletted", info.Paletted)

	name := LevelName(file)
	n, err := r.Converter.Convert(img, name)
	if err != nil {
		return nil, err
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Level decoded", "name", name, "width", n.Width, "height", n.Height, "grid", n.String())
	}

	tier := nonogram.TierUnclassified
	if r.Tiered {
		tier = nonogram.ClassifyTier(n.MaxDimension())
	}
	entry := &Entry{
		File:   file,
		Name:   name,
		Width:  n.Width,
		Height: n.Height,
		Tier:   tier,
	}

	if !r.DryRun {
		entry.Output = nonogram.Path(r.OutputDir, tier, name)
		if err := nonogram.WriteFile(entry.Output, n); err != nil {
			return nil, err
		}
		if r.PreviewDir != "" {
			if err := r.writePreview(n, tier); err != nil {
				return nil, err
			}
		}
	}

	// Count only once the level is on disk.
	hist.Add(n.MaxDimension())
	return entry, nil
}

func (r *Runner) writePreview(n *nonogram.Nonogram, tier nonogram.Tier) error {
	sheet, err := imaging.RenderSheet(n, imaging.SheetLayout{})
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	scale := max(r.PreviewScale, 1)
	return imaging.SavePNG(filepath.Join(r.PreviewDir, string(tier), n.Name+".png"), sheet, scale)
}

// LevelName derives a level name from an image path: the base name without
// its extension and with every ".d" removed.
func LevelName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, ".d", "")
}
