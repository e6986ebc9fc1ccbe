package hmdb

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dumpXML = `<?xml version="1.0" encoding="UTF-8"?>
<hmdb xmlns="http://www.hmdb.ca">
  <metabolite>
    <accession>HMDB0000122</accession>
    <name>D-Glucose</name>
    <synonyms>
      <synonym>Grape sugar</synonym>
      <synonym>Dextrose</synonym>
    </synonyms>
    <chemical_formula>C6H12O6</chemical_formula>
    <smiles>OC[C@H]1OC(O)[C@H](O)[C@@H](O)[C@@H]1O</smiles>
    <inchi>InChI=1S/C6H12O6/c7-1-2-3(8)4(9)5(10)6(11)12-2/h2-11H,1H2</inchi>
    <inchikey>WQZGKKKJIJFFOK-GASJEMHNSA-N</inchikey>
    <taxonomy>
      <description>Belongs to the class of organic compounds.</description>
      <name>Carbohydrates and carbohydrate conjugates</name>
    </taxonomy>
  </metabolite>
  <metabolite>
    <accession>HMDB0099999</accession>
    <name>Partialin</name>
    <inchi>InChI=1S/partial</inchi>
  </metabolite>
</hmdb>
`

func writeDump(t *testing.T, entryName, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hmdb_metabolites.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create(entryName)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLoadAndLookup(t *testing.T) {
	idx, err := Load(writeDump(t, "hmdb_metabolites.xml", dumpXML))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	rec, err := idx.Lookup(context.Background(), "D-Glucose")
	require.NoError(t, err)
	assert.True(t, rec.Complete())
	assert.Equal(t, "D-Glucose", rec.MetaboliteID)
	assert.Equal(t, "WQZGKKKJIJFFOK-GASJEMHNSA-N", rec.InChIKey)
	// The InChI= prefix is stripped.
	assert.Equal(t, "1S/C6H12O6/c7-1-2-3(8)4(9)5(10)6(11)12-2/h2-11H,1H2", rec.InChI)
}

func TestLookupByAccessionAndSynonym(t *testing.T) {
	idx, err := Load(writeDump(t, "hmdb_metabolites.xml", dumpXML))
	require.NoError(t, err)

	byAccession, err := idx.Lookup(context.Background(), "HMDB0000122")
	require.NoError(t, err)
	assert.True(t, byAccession.Complete())

	bySynonym, err := idx.Lookup(context.Background(), "Dextrose")
	require.NoError(t, err)
	assert.Equal(t, byAccession.InChIKey, bySynonym.InChIKey)
}

func TestLookupUnknownIsIncomplete(t *testing.T) {
	idx, err := Load(writeDump(t, "hmdb_metabolites.xml", dumpXML))
	require.NoError(t, err)

	rec, err := idx.Lookup(context.Background(), "no such metabolite")
	require.NoError(t, err)
	assert.False(t, rec.Complete())
	assert.Equal(t, "no such metabolite", rec.MetaboliteID)
}

func TestNestedNameDoesNotIndex(t *testing.T) {
	idx, err := Load(writeDump(t, "hmdb_metabolites.xml", dumpXML))
	require.NoError(t, err)

	// The taxonomy name lives in a skipped subtree.
	rec, err := idx.Lookup(context.Background(), "Carbohydrates and carbohydrate conjugates")
	require.NoError(t, err)
	assert.False(t, rec.Complete())
}

func TestPartialEntryIsIncomplete(t *testing.T) {
	idx, err := Load(writeDump(t, "hmdb_metabolites.xml", dumpXML))
	require.NoError(t, err)

	rec, err := idx.Lookup(context.Background(), "Partialin")
	require.NoError(t, err)
	assert.False(t, rec.Complete())
	assert.Equal(t, "1S/partial", rec.InChI)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.zip"))
	assert.ErrorIs(t, err, ErrDumpNotFound)
}

func TestLoadNoXMLEntry(t *testing.T) {
	_, err := Load(writeDump(t, "readme.txt", "not xml"))
	assert.ErrorIs(t, err, ErrNoXMLEntry)
}
