package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/query"
)

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find a chain of assertions connecting two resources",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			engine := query.New(snap.Store, a.logger)
			from := resolveResource(engine, args[0])
			to := resolveResource(engine, args[1])
			facts, err := engine.Path(from, to)
			if err != nil {
				return fmt.Errorf("path %s -> %s: %w", args[0], args[1], err)
			}

			out := cmd.OutOrStdout()
			if facts == nil {
				fmt.Fprintln(out, "No connection found.")
				return nil
			}
			if len(facts) == 0 {
				fmt.Fprintln(out, "Source and target are the same resource.")
				return nil
			}
			for _, f := range facts {
				fmt.Fprintln(out, engine.FormatFact(f))
			}
			return nil
		},
	}
}
