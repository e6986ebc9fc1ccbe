package identify

import (
	"context"
	"fmt"

	"ligandid/pkg/identify/models"
)

// retrieve resolves each identifier through the source and keeps only
// records that carry all three structure encodings.
func retrieve(ctx context.Context, ids []string, src Lookup) ([]models.Record, error) {
	var recs []models.Record
	for _, id := range ids {
		rec, err := src.Lookup(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", id, err)
		}
		if rec.Complete() {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// intersect pairs EcoCyc and HMDB records sharing an InChIKey. Each key
// pairs once, using the first record carrying it on either side, and
// matches follow EcoCyc record order so output is deterministic.
func intersect(erecs, hrecs []models.Record) []models.Match {
	hByKey := make(map[string]models.Record, len(hrecs))
	for _, rec := range hrecs {
		if _, ok := hByKey[rec.InChIKey]; !ok {
			hByKey[rec.InChIKey] = rec
		}
	}

	var matches []models.Match
	seen := make(map[string]bool)
	for _, erec := range erecs {
		hrec, ok := hByKey[erec.InChIKey]
		if !ok || seen[erec.InChIKey] {
			continue
		}
		seen[erec.InChIKey] = true
		matches = append(matches, models.Match{
			InChI:    hrec.InChI,
			InChIKey: hrec.InChIKey,
			EcoCyc:   erec,
			HMDB:     hrec,
		})
	}
	return matches
}
