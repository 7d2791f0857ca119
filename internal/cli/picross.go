package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/nonoconv/internal/batch"
	"github.com/ironsheep/nonoconv/internal/picross"
)

func newPicrossCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "picross",
		Short: "Decode handheld Picross screenshots into level files",
		Long: `Reads 160x144 PNG screenshots of solved 15x15 Picross puzzles and writes
one .nonogram file per screenshot into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			pc := cfg.Picross
			if cmd.Flags().Changed("input") {
				pc.Input = input
			}
			if cmd.Flags().Changed("output") {
				pc.Output = output
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "This is mp2fn version %s\n", Version)

			runner := &batch.Runner{
				Converter: &picross.Decoder{},
				InputDir:  pc.Input,
				Extension: pc.Extension,
				OutputDir: pc.Output,
				Progress:  out,
				Logger:    slog.Default(),
			}
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d converted, %d skipped\n", len(report.Converted), len(report.Skipped))
			fmt.Fprintln(out, "Have a nice day!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "../ScreenShots/", "directory with screenshots")
	cmd.Flags().StringVarP(&output, "output", "o", "../LevelData/", "output directory")

	return cmd
}
