package export_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/export"
	"github.com/c360studio/ontograph/store"
)

const sample = `@prefix hpc: <http://example.org/hpc#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

hpc:FalseSharing a hpc:ConceptHPC ;
    rdfs:label "False sharing" .

hpc:PragmaOmpSimdReduction hpc:beneficieDe hpc:PragmaOmpSimdAligned, hpc:PragmaOmpSimdNontemporal .

hpc:ExempleAlignas64 hpc:code """
struct s {
    alignas(64) double v;
};
""" .
`

func loadSample(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Load(sample)
	require.NoError(t, err)
	return st
}

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestExportTurtleGolden(t *testing.T) {
	exporter := export.NewExporter(loadSample(t))

	out, err := exporter.Export(export.FormatTurtle)
	require.NoError(t, err)
	golden(t).Assert(t, "hpc_turtle", []byte(out))
}

func TestExportNTriplesGolden(t *testing.T) {
	exporter := export.NewExporter(loadSample(t))

	out, err := exporter.Export(export.FormatNTriples)
	require.NoError(t, err)
	golden(t).Assert(t, "hpc_ntriples", []byte(out))
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := export.NewExporter(loadSample(t))

	_, err := exporter.Export(export.Format("jsonld"))
	assert.Error(t, err)
}

func TestTurtleRoundTrip(t *testing.T) {
	original := loadSample(t)
	exporter := export.NewExporter(original)

	out, err := exporter.Export(export.FormatTurtle)
	require.NoError(t, err)

	reloaded, err := store.Load(out)
	require.NoError(t, err)
	require.Equal(t, original.Len(), reloaded.Len())

	asStrings := func(st *store.Store) map[[3]string]bool {
		set := make(map[[3]string]bool)
		for tr := range st.All() {
			set[[3]string{st.Value(tr.Subject), st.Value(tr.Predicate), st.Value(tr.Object)}] = true
		}
		return set
	}
	assert.Equal(t, asStrings(original), asStrings(reloaded),
		"serialization style must not change the triple set")
}

func TestExportCustomPrefix(t *testing.T) {
	st, err := store.Load(`@prefix ex: <http://example.com/x#> .
ex:A ex:p ex:B .`)
	require.NoError(t, err)

	exporter := export.NewExporter(st)
	exporter.SetPrefix("ex", "http://example.com/x#")

	out, err := exporter.Export(export.FormatTurtle)
	require.NoError(t, err)
	assert.Contains(t, out, "ex:A ex:p ex:B .")
}
