package retrieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/retrieve"
	"github.com/c360studio/ontograph/store"
)

const sample = `@prefix hpc: <http://example.org/hpc#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

hpc:FalseSharing a hpc:ConceptHPC ;
    rdfs:label "False sharing" ;
    rdfs:comment "Threads invalidate each other's cache line." .

hpc:PaddingMemoire a hpc:SolutionTechnique ;
    rdfs:label "Padding memoire 3D" ;
    hpc:resout hpc:FalseSharing ;
    hpc:ameliore hpc:BandePassante ;
    hpc:exige hpc:Alignement ;
    hpc:coute hpc:MemoireSupplementaire .

hpc:BandePassante rdfs:label "Bande passante memoire" .
`

func newRetriever(t *testing.T, opts retrieve.Options) *retrieve.Retriever {
	t.Helper()
	st, err := store.Load(sample)
	require.NoError(t, err)
	return retrieve.New(query.New(st, nil), opts, nil)
}

func TestExtractKeywords(t *testing.T) {
	kws := retrieve.ExtractKeywords("Comment corriger le false sharing avec du padding ?")
	assert.Contains(t, kws, "false")
	assert.Contains(t, kws, "sharing")
	assert.Contains(t, kws, "padding")
	assert.Contains(t, kws, "corriger")
	assert.NotContains(t, kws, "le", "stopwords are dropped")
	assert.NotContains(t, kws, "du")
}

func TestExtractKeywordsHyphenVariants(t *testing.T) {
	kws := retrieve.ExtractKeywords("what about covid-19?")
	assert.Contains(t, kws, "covid-19")
	assert.Contains(t, kws, "covid19")
	assert.Contains(t, kws, "covid 19")
}

func TestExtractKeywordsEmpty(t *testing.T) {
	assert.Empty(t, retrieve.ExtractKeywords(""))
	assert.Empty(t, retrieve.ExtractKeywords("le la de et"))
}

func TestSubjectsDirectLabelMatch(t *testing.T) {
	r := newRetriever(t, retrieve.Options{})

	subjects := r.Subjects("Tell me about false sharing")
	assert.Contains(t, subjects, "http://example.org/hpc#FalseSharing")
}

func TestSubjectsCommentMatch(t *testing.T) {
	r := newRetriever(t, retrieve.Options{})

	subjects := r.Subjects("who can invalidate the cache?")
	assert.Contains(t, subjects, "http://example.org/hpc#FalseSharing")
}

func TestSubjectsSynonymMatch(t *testing.T) {
	r := newRetriever(t, retrieve.Options{
		Synonyms: map[string][]string{
			"solution": {"Padding memoire 3D"},
		},
	})

	subjects := r.Subjects("Quelle solution existe ?")
	require.NotEmpty(t, subjects)
	assert.Equal(t, "http://example.org/hpc#PaddingMemoire", subjects[0],
		"synonym hits come before direct keyword hits")
}

func TestSubjectsNoMatch(t *testing.T) {
	r := newRetriever(t, retrieve.Options{})
	assert.Empty(t, r.Subjects("quantum entanglement"))
}

func TestRelevantFactsAnnotationsFirst(t *testing.T) {
	r := newRetriever(t, retrieve.Options{})

	facts := r.RelevantFacts("explain false sharing")
	require.NotEmpty(t, facts)
	assert.Equal(t, "False sharing (type: ConceptHPC) - label: False sharing", facts[0])
	assert.Contains(t, facts[1], "cache line")
}

func TestRelevantFactsRespectsMaxFacts(t *testing.T) {
	r := newRetriever(t, retrieve.Options{MaxFacts: 2})

	facts := r.RelevantFacts("padding memoire")
	assert.Len(t, facts, 2)
}

func TestRelevantFactsLimitsOtherProperties(t *testing.T) {
	r := newRetriever(t, retrieve.Options{MaxFacts: 20})

	facts := r.RelevantFacts("padding memoire 3d")
	// PaddingMemoire: label + 3 other properties (out of 4 asserted), plus
	// facts from the BandePassante subject also matched by "memoire".
	var padding []string
	for _, f := range facts {
		if len(f) >= len("Padding") && f[:len("Padding")] == "Padding" {
			padding = append(padding, f)
		}
	}
	assert.Len(t, padding, 4)
}

func TestRelevantFactsUsesLabelsForObjects(t *testing.T) {
	r := newRetriever(t, retrieve.Options{MaxFacts: 20})

	facts := r.RelevantFacts("padding")
	assert.Contains(t, facts, "Padding memoire 3D (type: SolutionTechnique) - resout: False sharing")
}
