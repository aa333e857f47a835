package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/term"
	"github.com/c360studio/ontograph/vocabulary"
)

const sample = `@prefix hpc: <http://example.org/hpc#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix : <http://example.org/hpc#> .

hpc:FalseSharing a hpc:ConceptHPC ;
    rdfs:label "False sharing" .

:PragmaOmpSimdReduction :beneficieDe :PragmaOmpSimdAligned, :PragmaOmpSimdNontemporal .
`

func mustLoad(t *testing.T, text string) *store.Store {
	t.Helper()
	st, err := store.Load(text)
	require.NoError(t, err)
	return st
}

func collect(st *store.Store, s, p, o term.ID) []store.Triple {
	var out []store.Triple
	for t := range st.Scan(s, p, o) {
		out = append(out, t)
	}
	return out
}

func TestLoadRoundTrip(t *testing.T) {
	st := mustLoad(t, sample)

	// 2 facts about FalseSharing + 2 list objects.
	assert.Equal(t, 4, st.Len())

	all := collect(st, store.Any, store.Any, store.Any)
	assert.Len(t, all, 4)
}

func TestChainingStyleDoesNotChangeTriples(t *testing.T) {
	chained := mustLoad(t, `@prefix hpc: <http://example.org/hpc#> .
hpc:X a hpc:C ; hpc:p hpc:A, hpc:B .`)
	flat := mustLoad(t, `@prefix hpc: <http://example.org/hpc#> .
hpc:X a hpc:C .
hpc:X hpc:p hpc:A .
hpc:X hpc:p hpc:B .`)

	require.Equal(t, chained.Len(), flat.Len())
	toStrings := func(st *store.Store) [][3]string {
		var out [][3]string
		for tr := range st.All() {
			out = append(out, [3]string{st.Value(tr.Subject), st.Value(tr.Predicate), st.Value(tr.Object)})
		}
		return out
	}
	assert.Equal(t, toStrings(chained), toStrings(flat))
}

func TestInsertIsIdempotent(t *testing.T) {
	st := mustLoad(t, `@prefix hpc: <http://example.org/hpc#> .
hpc:X a hpc:C .
hpc:X a hpc:C .
hpc:X a hpc:C ; a hpc:C .`)

	assert.Equal(t, 1, st.Len(), "duplicate facts collapse regardless of chaining style")
}

func TestScanBoundSubject(t *testing.T) {
	st := mustLoad(t, sample)

	fs, ok := st.Resource("http://example.org/hpc#FalseSharing")
	require.True(t, ok)

	matches := collect(st, fs, store.Any, store.Any)
	require.Len(t, matches, 2)
	for _, tr := range matches {
		assert.Equal(t, fs, tr.Subject)
	}
}

func TestScanBoundSubjectAndPredicate(t *testing.T) {
	st := mustLoad(t, sample)

	subj, ok := st.Resource("http://example.org/hpc#PragmaOmpSimdReduction")
	require.True(t, ok)
	pred, ok := st.Resource("http://example.org/hpc#beneficieDe")
	require.True(t, ok)

	matches := collect(st, subj, pred, store.Any)
	require.Len(t, matches, 2)
	assert.Equal(t, "http://example.org/hpc#PragmaOmpSimdAligned", st.Value(matches[0].Object))
	assert.Equal(t, "http://example.org/hpc#PragmaOmpSimdNontemporal", st.Value(matches[1].Object))
}

func TestScanBoundPredicate(t *testing.T) {
	st := mustLoad(t, sample)

	typePred, ok := st.Resource(vocabulary.RDFType)
	require.True(t, ok)

	matches := collect(st, store.Any, typePred, store.Any)
	require.Len(t, matches, 1)
	assert.Equal(t, "http://example.org/hpc#FalseSharing", st.Value(matches[0].Subject))
}

func TestScanBoundObject(t *testing.T) {
	st := mustLoad(t, sample)

	obj, ok := st.Resource("http://example.org/hpc#PragmaOmpSimdAligned")
	require.True(t, ok)

	matches := collect(st, store.Any, store.Any, obj)
	require.Len(t, matches, 1)
	assert.Equal(t, "http://example.org/hpc#PragmaOmpSimdReduction", st.Value(matches[0].Subject))
}

func TestScanNeverAssertedSubjectIsEmpty(t *testing.T) {
	st := mustLoad(t, sample)

	// ConceptHPC appears only as an object; as a subject it matches nothing.
	class, ok := st.Resource("http://example.org/hpc#ConceptHPC")
	require.True(t, ok)
	assert.Empty(t, collect(st, class, store.Any, store.Any))
}

func TestScanIsRestartable(t *testing.T) {
	st := mustLoad(t, sample)

	seq := st.All()
	first := 0
	for range seq {
		first++
		if first == 2 {
			break
		}
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 4, second, "a sequence can be iterated again from the start")
}

func TestLoadFailureReturnsNoStore(t *testing.T) {
	st, err := store.Load(`@prefix hpc: <http://example.org/hpc#> .
hpc:X hpc:p hpc:A, .`)
	assert.Error(t, err)
	assert.Nil(t, st, "no partial store observable after a syntax error")
}

func TestBuilderMultipleTexts(t *testing.T) {
	b := store.NewBuilder()
	require.NoError(t, b.AddText("a.ttl", `@prefix hpc: <http://example.org/hpc#> .
hpc:X a hpc:C .`))
	require.NoError(t, b.AddText("b.ttl", `@prefix hpc: <http://example.org/hpc#> .
hpc:Y a hpc:C .`))

	st := b.Store()
	assert.Equal(t, 2, st.Len())
}

func TestBuilderPrefixesAreLocalToEachText(t *testing.T) {
	b := store.NewBuilder()
	require.NoError(t, b.AddText("a.ttl", `@prefix hpc: <http://example.org/hpc#> .
hpc:X a hpc:C .`))

	err := b.AddText("b.ttl", `hpc:Y a hpc:C .`)
	require.Error(t, err, "prefixes from an earlier text must not leak")
	assert.Contains(t, err.Error(), "b.ttl")
}
