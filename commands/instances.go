package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/query"
)

func (a *app) instancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instances <class>",
		Short: "List the direct instances of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			engine := query.New(snap.Store, a.logger)
			class := resolveResource(engine, args[0])
			instances, err := engine.InstancesOf(class)
			if err != nil {
				return fmt.Errorf("instances of %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if len(instances) == 0 {
				fmt.Fprintln(out, "No instances found.")
				return nil
			}
			for _, iri := range instances {
				label, err := engine.LabelOf(iri)
				if err != nil {
					label = iri
				}
				fmt.Fprintf(out, "%s <%s>\n", label, iri)
			}
			return nil
		},
	}
}
