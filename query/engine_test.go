package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/vocabulary"
)

const hpc = vocabulary.HPCNamespace

const sample = `@prefix hpc: <http://example.org/hpc#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix : <http://example.org/hpc#> .

hpc:ConceptHPC a rdfs:Class ;
    rdfs:label "Concept HPC" .

hpc:FalseSharing a hpc:ConceptHPC ;
    rdfs:label "False sharing" ;
    rdfs:comment "Two threads write distinct variables sharing a cache line." .

hpc:PaddingMemoire a hpc:ConceptHPC, hpc:SolutionTechnique ;
    rdfs:label "Padding memoire 3D" ;
    hpc:resout hpc:FalseSharing .

:PragmaOmpSimdReduction :beneficieDe :PragmaOmpSimdAligned, :PragmaOmpSimdNontemporal .

:BankConflictsL2 a hpc:ConceptHPC .
`

func newEngine(t *testing.T) *query.Engine {
	t.Helper()
	st, err := store.Load(sample)
	require.NoError(t, err)
	return query.New(st, nil)
}

func TestPropertiesOfPreservesMultiValueOrder(t *testing.T) {
	e := newEngine(t)

	props, err := e.PropertiesOf(hpc + "PragmaOmpSimdReduction")
	require.NoError(t, err)

	objs := props[hpc+"beneficieDe"]
	require.Len(t, objs, 2)
	assert.Equal(t, hpc+"PragmaOmpSimdAligned", objs[0].Value)
	assert.Equal(t, hpc+"PragmaOmpSimdNontemporal", objs[1].Value)
}

func TestPropertiesOfObjectOnlyResourceIsEmpty(t *testing.T) {
	e := newEngine(t)

	props, err := e.PropertiesOf(hpc + "PragmaOmpSimdAligned")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestInstancesOfDirectMembershipOnly(t *testing.T) {
	e := newEngine(t)

	got, err := e.InstancesOf(hpc + "ConceptHPC")
	require.NoError(t, err)
	assert.Equal(t, []string{
		hpc + "FalseSharing",
		hpc + "PaddingMemoire",
		hpc + "BankConflictsL2",
	}, got, "assertion order, direct type facts only")

	// PaddingMemoire carries both type facts explicitly.
	sols, err := e.InstancesOf(hpc + "SolutionTechnique")
	require.NoError(t, err)
	assert.Equal(t, []string{hpc + "PaddingMemoire"}, sols)
}

func TestLabelOf(t *testing.T) {
	e := newEngine(t)

	label, err := e.LabelOf(hpc + "FalseSharing")
	require.NoError(t, err)
	assert.Equal(t, "False sharing", label)
}

func TestLabelOfFallsBackToLocalName(t *testing.T) {
	e := newEngine(t)

	label, err := e.LabelOf(hpc + "BankConflictsL2")
	require.NoError(t, err)
	assert.Equal(t, "BankConflictsL2", label)
}

func TestLabelOfUnknownResource(t *testing.T) {
	e := newEngine(t)

	_, err := e.LabelOf(hpc + "NeverMentioned")
	assert.ErrorIs(t, err, query.ErrUnknownResource)
}

func TestTypesOf(t *testing.T) {
	e := newEngine(t)

	types, err := e.TypesOf(hpc + "PaddingMemoire")
	require.NoError(t, err)
	assert.Equal(t, []string{hpc + "ConceptHPC", hpc + "SolutionTechnique"}, types)
}

func TestResourceByLabel(t *testing.T) {
	e := newEngine(t)

	iri, ok := e.ResourceByLabel("Padding memoire 3D")
	require.True(t, ok)
	assert.Equal(t, hpc+"PaddingMemoire", iri)

	_, ok = e.ResourceByLabel("No such label")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	e := newEngine(t)

	desc, err := e.Describe(hpc + "FalseSharing")
	require.NoError(t, err)

	assert.Equal(t, "False sharing", desc.Label)
	assert.Equal(t, "Two threads write distinct variables sharing a cache line.", desc.Comment)
	assert.Equal(t, []string{hpc + "ConceptHPC"}, desc.Types)
	assert.Len(t, desc.Properties, 3)
}

func TestDescribeWithoutCommentOrLabel(t *testing.T) {
	e := newEngine(t)

	desc, err := e.Describe(hpc + "BankConflictsL2")
	require.NoError(t, err)
	assert.Equal(t, "BankConflictsL2", desc.Label)
	assert.Empty(t, desc.Comment)
}

func TestNeighborhood(t *testing.T) {
	e := newEngine(t)

	facts, err := e.Neighborhood(hpc + "PaddingMemoire")
	require.NoError(t, err)
	require.Len(t, facts, 4)
	last := facts[len(facts)-1]
	assert.Equal(t, hpc+"resout", last.Predicate)
	assert.Equal(t, hpc+"FalseSharing", last.Object)
	assert.False(t, last.LiteralObject)
}

func TestPathFollowsEdgesForward(t *testing.T) {
	e := newEngine(t)

	path, err := e.Path(hpc+"PaddingMemoire", hpc+"FalseSharing")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, hpc+"resout", path[0].Predicate)
}

func TestPathFollowsEdgesBackward(t *testing.T) {
	e := newEngine(t)

	// No outgoing edge from FalseSharing reaches PaddingMemoire; the
	// inverse direction must still connect them.
	path, err := e.Path(hpc+"FalseSharing", hpc+"PaddingMemoire")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, hpc+"resout", path[0].Predicate)
}

func TestPathMultiHop(t *testing.T) {
	e := newEngine(t)

	// FalseSharing -a-> ConceptHPC <-a- BankConflictsL2.
	path, err := e.Path(hpc+"FalseSharing", hpc+"BankConflictsL2")
	require.NoError(t, err)
	require.Len(t, path, 2)
}

func TestPathNoChain(t *testing.T) {
	e := newEngine(t)

	path, err := e.Path(hpc+"PragmaOmpSimdAligned", hpc+"FalseSharing")
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestPathSameEndpoints(t *testing.T) {
	e := newEngine(t)

	path, err := e.Path(hpc+"FalseSharing", hpc+"FalseSharing")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestFormatFact(t *testing.T) {
	e := newEngine(t)

	facts, err := e.Neighborhood(hpc + "PaddingMemoire")
	require.NoError(t, err)

	var got []string
	for _, f := range facts {
		got = append(got, e.FormatFact(f))
	}
	assert.Contains(t, got, "Padding memoire 3D --[resout]--> False sharing")
	assert.Contains(t, got, `Padding memoire 3D --[label]--> "Padding memoire 3D"`)
}
