package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print triple and term counts for the loaded ontology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Triples: %d\n", snap.Store.Len())
			fmt.Fprintf(out, "Terms:   %d\n", snap.Store.Dict().Len())
			fmt.Fprintf(out, "Sources: %d\n", len(snap.Sources))
			for _, src := range snap.Sources {
				fmt.Fprintf(out, "  %s\n", src)
			}
			return nil
		},
	}
}
