package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ironsheep/nonoconv/internal/batch"
	"github.com/ironsheep/nonoconv/internal/config"
	"github.com/ironsheep/nonoconv/internal/detection"
	"github.com/ironsheep/nonoconv/internal/imaging"
)

// Version is printed in the banners. It is set from main.
var Version = "dev"

type recognonoFlags struct {
	input, output, ext string
	dryRun, preview    bool
	independentAxes    bool
	flat               bool
	policy, sample     string
	report             string
}

func newRecognonoCmd() *cobra.Command {
	var f recognonoFlags

	cmd := &cobra.Command{
		Use:   "recognono",
		Short: "Recognize puzzle sheets and write level files",
		Long: `Reads every image of the input directory, detects the cell grid,
classifies each cell as filled or empty and writes one .nonogram file per
image into a size tier subdirectory (small, medium, large) of the output
directory. A histogram of puzzle sizes is printed at the end.`,
		Example: `  # Convert ./input/*.gif into output/<tier>/
  nonoconv recognono

  # Inverted PNG scans, report written to stats.yaml
  nonoconv recognono --input scans --ext .png --policy light --report stats.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rc := f.apply(cmd, cfg.Recognono)
			if err := (&config.Config{Recognono: rc}).Validate(); err != nil {
				return err
			}
			opts, err := rc.DetectionOptions()
			if err != nil {
				return err
			}
			opts.Logger = slog.Default()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "This is recognono version %s\n", Version)

			runner := &batch.Runner{
				Converter: &detection.Recognizer{Options: opts, Description: rc.Description},
				InputDir:  rc.Input,
				Extension: rc.Extension,
				OutputDir: rc.Output,
				Tiered:    rc.Tiered,
				DryRun:    rc.DryRun,
				Progress:  out,
				Logger:    slog.Default(),
			}
			if rc.Preview {
				runner.PreviewDir = filepath.Join(rc.Output, "preview")
				runner.PreviewScale = rc.PreviewScale
			}

			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Nonograms by size:")
			if _, err := report.Histogram.WriteTo(out); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d converted, %d skipped\n", len(report.Converted), len(report.Skipped))

			if rc.Report != "" {
				if err := report.WriteYAML(rc.Report); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, "Have a nice day!")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "./input/", "directory with puzzle images")
	fl.StringVarP(&f.output, "output", "o", "output", "output directory")
	fl.StringVar(&f.ext, "ext", ".gif", "image file extension")
	fl.BoolVar(&f.dryRun, "dry-run", false, "recognize and count without writing files")
	fl.BoolVar(&f.preview, "preview", false, "also write a PNG rendering of every level")
	fl.BoolVar(&f.independentAxes, "independent-axes", false, "probe the vertical pitch separately")
	fl.BoolVar(&f.flat, "flat", false, "write all levels directly into the output directory")
	fl.StringVar(&f.policy, "policy", "dark", "which cells are filled: dark or light")
	fl.StringVar(&f.sample, "sample", string(imaging.SampleAuto), "pixel sampling: auto, index, luma or lightness")
	fl.StringVar(&f.report, "report", "", "write a YAML batch report to this file")

	return cmd
}

// apply overrides file settings with explicitly set flags.
func (f *recognonoFlags) apply(cmd *cobra.Command, rc config.Recognono) config.Recognono {
	fl := cmd.Flags()
	if fl.Changed("input") {
		rc.Input = f.input
	}
	if fl.Changed("output") {
		rc.Output = f.output
	}
	if fl.Changed("ext") {
		rc.Extension = f.ext
	}
	if fl.Changed("dry-run") {
		rc.DryRun = f.dryRun
	}
	if fl.Changed("preview") {
		rc.Preview = f.preview
	}
	if fl.Changed("independent-axes") {
		rc.Detection.IndependentAxes = f.independentAxes
	}
	if fl.Changed("flat") {
		rc.Tiered = !f.flat
	}
	if fl.Changed("policy") {
		rc.Policy = f.policy
	}
	if fl.Changed("sample") {
		rc.Detection.SampleMode = imaging.SampleMode(f.sample)
	}
	if fl.Changed("report") {
		rc.Report = f.report
	}
	return rc
}
