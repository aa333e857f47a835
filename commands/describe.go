package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/vocabulary"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <resource>",
		Short: "Show the label, comment, types, and properties of a resource",
		Long: `Describe prints everything the ontology asserts about one resource.
The resource may be given as a full IRI, a prefixed name such as
hpc:FalseSharing, or an exact rdfs:label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			engine := query.New(snap.Store, a.logger)
			iri := resolveResource(engine, args[0])
			desc, err := engine.Describe(iri)
			if err != nil {
				return fmt.Errorf("describe %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", desc.Label, desc.IRI)
			if desc.Comment != "" {
				fmt.Fprintf(out, "  %s\n", desc.Comment)
			}
			for _, typ := range desc.Types {
				fmt.Fprintf(out, "  type: %s\n", vocabulary.LocalName(typ))
			}

			preds := make([]string, 0, len(desc.Properties))
			for pred := range desc.Properties {
				preds = append(preds, pred)
			}
			sort.Strings(preds)
			for _, pred := range preds {
				if pred == vocabulary.RDFType ||
					pred == vocabulary.RDFSLabel ||
					pred == vocabulary.RDFSComment {
					continue
				}
				for _, obj := range desc.Properties[pred] {
					value := obj.Value
					if !obj.IsLiteral() {
						value = vocabulary.LocalName(obj.Value)
					}
					fmt.Fprintf(out, "  %s: %s\n", vocabulary.LocalName(pred), value)
				}
			}
			return nil
		},
	}
}
