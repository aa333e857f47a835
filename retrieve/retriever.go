// Package retrieve answers "which facts matter for this question" over a
// loaded ontology. It matches question keywords against labels and comments,
// expands configured synonyms, and collects a capped set of readable fact
// lines for a presentation layer to consume.
package retrieve

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/term"
	"github.com/c360studio/ontograph/vocabulary"
)

const maxOtherPropsPerSubject = 3

// Options bounds retrieval and supplies the synonym map.
type Options struct {
	// MaxFacts caps the number of fact lines returned.
	MaxFacts int

	// MaxSubjects caps how many matched subjects are expanded.
	MaxSubjects int

	// Synonyms maps a question keyword to the ontology labels it stands
	// for, bridging everyday words to technical concept names.
	Synonyms map[string][]string
}

// Retriever finds relevant facts in one snapshot. It only reads; a
// Retriever is safe for concurrent use.
type Retriever struct {
	engine *query.Engine
	opts   Options
	logger *slog.Logger
}

// New creates a retriever over a query engine. Zero caps fall back to the
// original pipeline defaults.
func New(engine *query.Engine, opts Options, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxFacts <= 0 {
		opts.MaxFacts = 7
	}
	if opts.MaxSubjects <= 0 {
		opts.MaxSubjects = 5
	}
	return &Retriever{engine: engine, opts: opts, logger: logger}
}

// Subjects returns the resources the question mentions, in match order:
// synonym-mapped labels first, then direct keyword hits in labels and
// comments.
func (r *Retriever) Subjects(question string) []string {
	lower := strings.ToLower(question)
	seen := make(map[string]bool)
	var subjects []string
	add := func(iri string) {
		if !seen[iri] {
			seen[iri] = true
			subjects = append(subjects, iri)
		}
	}

	for keyword, labels := range r.opts.Synonyms {
		if !strings.Contains(lower, strings.ToLower(keyword)) {
			continue
		}
		for _, label := range labels {
			if iri, ok := r.engine.ResourceByLabel(label); ok {
				r.logger.Debug("Subject matched via synonym",
					slog.String("keyword", keyword), slog.String("resource", iri))
				add(iri)
			}
		}
	}

	keywords := ExtractKeywords(question)
	if len(keywords) == 0 {
		return subjects
	}

	st := r.engine.Store()
	for _, predIRI := range []string{vocabulary.RDFSLabel, vocabulary.RDFSComment} {
		pred, ok := st.Resource(predIRI)
		if !ok {
			continue
		}
		for t := range st.Scan(store.Any, pred, store.Any) {
			obj := st.Term(t.Object)
			if !obj.IsLiteral() {
				continue
			}
			text := strings.ToLower(obj.Value)
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					add(st.Value(t.Subject))
					break
				}
			}
		}
	}
	return subjects
}

// RelevantFacts returns up to MaxFacts readable fact lines about the
// subjects the question mentions. Annotation facts (label, comment) come
// first per subject, then a few other properties.
func (r *Retriever) RelevantFacts(question string) []string {
	subjects := r.Subjects(question)
	if len(subjects) == 0 {
		r.logger.Debug("No subjects matched question")
		return nil
	}
	if len(subjects) > r.opts.MaxSubjects {
		subjects = subjects[:r.opts.MaxSubjects]
	}

	seen := make(map[string]bool)
	var facts []string
	add := func(line string) bool {
		if !seen[line] {
			seen[line] = true
			facts = append(facts, line)
		}
		return len(facts) >= r.opts.MaxFacts
	}

	for _, subject := range subjects {
		if r.collectSubjectFacts(subject, add) {
			break
		}
	}

	r.logger.Debug("Retrieved facts",
		slog.String("question", question),
		slog.Int("subjects", len(subjects)),
		slog.Int("facts", len(facts)))
	return facts
}

// collectSubjectFacts appends fact lines for one subject until the add
// callback reports the cap is reached.
func (r *Retriever) collectSubjectFacts(subject string, add func(string) bool) bool {
	props, err := r.engine.PropertiesOf(subject)
	if err != nil {
		return false
	}
	heading := r.subjectHeading(subject, props)

	priority := []string{vocabulary.RDFSLabel, vocabulary.RDFSComment}
	for _, pred := range priority {
		for _, obj := range props[pred] {
			if !obj.IsLiteral() {
				continue
			}
			if add(fmt.Sprintf("%s - %s: %s", heading, vocabulary.LocalName(pred), obj.Value)) {
				return true
			}
		}
	}

	other := 0
	st := r.engine.Store()
	id, ok := st.Resource(subject)
	if !ok {
		return false
	}
	for t := range st.Scan(id, store.Any, store.Any) {
		pred := st.Value(t.Predicate)
		if pred == vocabulary.RDFSLabel || pred == vocabulary.RDFSComment || pred == vocabulary.RDFType {
			continue
		}
		if add(fmt.Sprintf("%s - %s: %s", heading, vocabulary.LocalName(pred), r.objectText(t.Object))) {
			return true
		}
		other++
		if other >= maxOtherPropsPerSubject {
			break
		}
	}
	return false
}

// subjectHeading renders "label (type: T1, T2)" for fact lines.
func (r *Retriever) subjectHeading(subject string, props map[string][]term.Term) string {
	label := vocabulary.LocalName(subject)
	if l, err := r.engine.LabelOf(subject); err == nil {
		label = l
	}
	var typeNames []string
	for _, obj := range props[vocabulary.RDFType] {
		if !obj.IsLiteral() {
			typeNames = append(typeNames, vocabulary.LocalName(obj.Value))
		}
	}
	if len(typeNames) == 0 {
		return label
	}
	return fmt.Sprintf("%s (type: %s)", label, strings.Join(typeNames, ", "))
}

func (r *Retriever) objectText(id term.ID) string {
	st := r.engine.Store()
	t := st.Term(id)
	if t.IsLiteral() {
		return t.Value
	}
	if label, err := r.engine.LabelOf(t.Value); err == nil {
		return label
	}
	return vocabulary.LocalName(t.Value)
}
