package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/retrieve"
)

func (a *app) retrieveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve <question>...",
		Short: "Print the ontology facts most relevant to a question",
		Long: `Retrieve matches the question's keywords against resource labels and
comments, expands configured synonyms, and prints the matching facts
one per line. Useful for grounding an LLM prompt in the ontology.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			engine := query.New(snap.Store, a.logger)
			retriever := retrieve.New(engine, retrieve.Options{
				MaxFacts:    a.cfg.Retrieve.MaxFacts,
				MaxSubjects: a.cfg.Retrieve.MaxSubjects,
				Synonyms:    a.cfg.Retrieve.Synonyms,
			}, a.logger)

			question := strings.Join(args, " ")
			facts := retriever.RelevantFacts(question)

			out := cmd.OutOrStdout()
			if len(facts) == 0 {
				fmt.Fprintln(out, "No relevant facts found.")
				return nil
			}
			for _, fact := range facts {
				fmt.Fprintln(out, fact)
			}
			return nil
		},
	}
}
