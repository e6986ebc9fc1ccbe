package identify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ligandid/pkg/identify/models"
)

// fakeSource serves canned records; unknown ids come back incomplete,
// like both real sources.
type fakeSource struct {
	records map[string]models.Record
	err     error
}

func (f *fakeSource) Lookup(ctx context.Context, id string) (models.Record, error) {
	if f.err != nil {
		return models.Record{}, f.err
	}
	rec := f.records[id]
	rec.MetaboliteID = id
	return rec, nil
}

func completeRecord(key string) models.Record {
	return models.Record{
		InChI:    "1S/" + key,
		InChIKey: key,
		SMILES:   "C(" + key + ")O",
	}
}

func TestRetrieveDropsIncomplete(t *testing.T) {
	src := &fakeSource{records: map[string]models.Record{
		"GLC": completeRecord("KEY-GLC"),
		"BAD": {InChI: "1S/partial"}, // no InChIKey or SMILES
	}}

	recs, err := retrieve(context.Background(), []string{"GLC", "BAD", "UNKNOWN"}, src)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "GLC", recs[0].MetaboliteID)
}

func TestRetrievePropagatesError(t *testing.T) {
	src := &fakeSource{err: errors.New("service down")}
	_, err := retrieve(context.Background(), []string{"GLC"}, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `lookup "GLC"`)
}

func TestIntersect(t *testing.T) {
	e1 := completeRecord("KEY-A")
	e1.MetaboliteID = "CPD-1"
	e2 := completeRecord("KEY-B")
	e2.MetaboliteID = "CPD-2"
	h1 := completeRecord("KEY-A")
	h1.MetaboliteID = "Glucose"

	matches := intersect([]models.Record{e1, e2}, []models.Record{h1})
	require.Len(t, matches, 1)
	assert.Equal(t, "KEY-A", matches[0].InChIKey)
	assert.Equal(t, "CPD-1", matches[0].EcoCyc.MetaboliteID)
	assert.Equal(t, "Glucose", matches[0].HMDB.MetaboliteID)
	// InChI comes from the HMDB side.
	assert.Equal(t, h1.InChI, matches[0].InChI)
}

func TestIntersectNoOverlap(t *testing.T) {
	e := completeRecord("KEY-A")
	h := completeRecord("KEY-B")
	assert.Empty(t, intersect([]models.Record{e}, []models.Record{h}))
}

func TestIntersectMultipleKeysFollowEcoCycOrder(t *testing.T) {
	eb := completeRecord("KEY-B")
	eb.MetaboliteID = "CPD-B"
	ea := completeRecord("KEY-A")
	ea.MetaboliteID = "CPD-A"
	ha := completeRecord("KEY-A")
	ha.MetaboliteID = "Alpha"
	hb := completeRecord("KEY-B")
	hb.MetaboliteID = "Beta"

	matches := intersect([]models.Record{eb, ea}, []models.Record{ha, hb})
	require.Len(t, matches, 2)
	assert.Equal(t, "KEY-B", matches[0].InChIKey)
	assert.Equal(t, "Beta", matches[0].HMDB.MetaboliteID)
	assert.Equal(t, "KEY-A", matches[1].InChIKey)
	assert.Equal(t, "Alpha", matches[1].HMDB.MetaboliteID)
}

func TestIntersectDuplicateKeysPairOnce(t *testing.T) {
	e1 := completeRecord("KEY-A")
	e1.MetaboliteID = "CPD-1"
	e2 := completeRecord("KEY-A")
	e2.MetaboliteID = "CPD-1b"
	h1 := completeRecord("KEY-A")
	h1.MetaboliteID = "Glucose"
	h2 := completeRecord("KEY-A")
	h2.MetaboliteID = "Dextrose"

	matches := intersect([]models.Record{e1, e2}, []models.Record{h1, h2})
	require.Len(t, matches, 1)
	// First record on each side wins.
	assert.Equal(t, "CPD-1", matches[0].EcoCyc.MetaboliteID)
	assert.Equal(t, "Glucose", matches[0].HMDB.MetaboliteID)
}
