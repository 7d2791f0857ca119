package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/nonoconv/internal/po"
)

func newPO2PropsCmd() *cobra.Command {
	var (
		outputDir string
		latin1    bool
	)

	cmd := &cobra.Command{
		Use:   "po2props FILE.po...",
		Short: "Convert gettext catalogs into Java properties files",
		Long: `Writes FILE.properties for every FILE.po given. Keys are taken from the
message context, the first source reference or the message id.`,
		Example: `  nonoconv po2props i18n/*.po --output-dir resources --latin1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			pc := cfg.PO
			if cmd.Flags().Changed("output-dir") {
				pc.OutputDir = outputDir
			}
			if cmd.Flags().Changed("latin1") {
				pc.Latin1 = latin1
			}

			var failed int
			for _, src := range args {
				dst := po.PropertiesPath(src, pc.OutputDir)
				n, err := po.ConvertFile(src, dst, pc.Latin1)
				if err != nil {
					slog.Error("Skipping catalog", "file", src, "error", err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "File %s converted (%d entries)...\n", src, n)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d catalogs failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for properties files (default: next to each catalog)")
	cmd.Flags().BoolVar(&latin1, "latin1", false, "write ISO-8859-1 characters unescaped")

	return cmd
}
