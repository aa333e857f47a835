package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/export"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the loaded ontology back to Turtle or N-Triples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			exporter := export.NewExporter(snap.Store)
			out, err := exporter.Export(export.Format(format))
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.logger.Info("Ontology exported",
				"format", format,
				"path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatTurtle), "Output format (turtle, ntriples)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
