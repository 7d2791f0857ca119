package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/nonoconv/internal/nonogram"
)

// Entry describes one converted file.
type Entry struct {
	File   string        `yaml:"file"`
	Name   string        `yaml:"name"`
	Output string        `yaml:"output,omitempty"`
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Tier   nonogram.Tier `yaml:"tier,omitempty"`
}

// Skip describes one file that could not be converted.
type Skip struct {
	File   string `yaml:"file"`
	Reason string `yaml:"reason"`
}

// Report is the outcome of a batch run.
type Report struct {
	Converted []Entry
	Skipped   []Skip
	Histogram *nonogram.Histogram
}

type reportDocument struct {
	Converted []Entry           `yaml:"converted"`
	Skipped   []Skip            `yaml:"skipped"`
	Sizes     []nonogram.Bucket `yaml:"sizes"`
}

// WriteYAML stores the report as YAML.
func (r *Report) WriteYAML(path string) error {
	doc := reportDocument{
		Converted: r.Converted,
		Skipped:   r.Skipped,
		Sizes:     r.Histogram.Buckets(),
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
