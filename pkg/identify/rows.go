package identify

import (
	"maps"
	"slices"
	"strings"

	"ligandid/pkg/identify/models"
	"ligandid/pkg/workbook"
)

// valueSeparator joins multiple values written into a single cell.
const valueSeparator = "|"

var (
	simpleColumns    = []string{"InChI", "InChIKey", "SMILES", "MetaboliteID", "Database"}
	matchColumns     = []string{"InChI", "InChIKey", "eMetaboliteID", "eSMILES", "hMetaboliteID", "hSMILES"}
	ambiguousColumns = []string{"eMetaboliteID", "eInChI", "eInChIKey", "eSMILES", "hMetaboliteID", "hInChI", "hInChIKey", "hSMILES"}
)

// baseColumns returns the sheet columns minus the two database ID
// columns, which every output drops.
func baseColumns(columns []string) []string {
	base := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == workbook.ColumnEcoCyc || col == workbook.ColumnHMDB {
			continue
		}
		base = append(base, col)
	}
	return base
}

// newOutcomeTables builds the five per-sheet output tables. Each table
// starts with the subheader line; enrichment columns carry the source
// database name there so the second header row stays readable.
func newOutcomeTables(base []string, subheader workbook.Row) map[models.Outcome]*workbook.Table {
	baseSub := baseRow(subheader, base)

	nodata := workbook.NewTable(base)
	nodata.Append(baseSub)

	simple := workbook.NewTable(append(slices.Clone(base), simpleColumns...))
	simple.Append(baseSub)

	matchSub := maps.Clone(baseSub)
	matchSub["eMetaboliteID"] = string(models.DatabaseEcoCyc)
	matchSub["eSMILES"] = string(models.DatabaseEcoCyc)
	matchSub["hMetaboliteID"] = string(models.DatabaseHMDB)
	matchSub["hSMILES"] = string(models.DatabaseHMDB)

	match := workbook.NewTable(append(slices.Clone(base), matchColumns...))
	match.Append(matchSub)
	multimatch := workbook.NewTable(append(slices.Clone(base), matchColumns...))
	multimatch.Append(matchSub)

	ambiguousSub := maps.Clone(baseSub)
	for _, col := range ambiguousColumns {
		if strings.HasPrefix(col, "e") {
			ambiguousSub[col] = string(models.DatabaseEcoCyc)
		} else {
			ambiguousSub[col] = string(models.DatabaseHMDB)
		}
	}
	ambiguous := workbook.NewTable(append(slices.Clone(base), ambiguousColumns...))
	ambiguous.Append(ambiguousSub)

	return map[models.Outcome]*workbook.Table{
		models.OutcomeNoData:     nodata,
		models.OutcomeSimple:     simple,
		models.OutcomeMatch:      match,
		models.OutcomeMultiMatch: multimatch,
		models.OutcomeAmbiguous:  ambiguous,
	}
}

// baseRow projects a sheet row onto the base columns.
func baseRow(row workbook.Row, base []string) workbook.Row {
	out := make(workbook.Row, len(base))
	for _, col := range base {
		out[col] = row[col]
	}
	return out
}

// simpleRow enriches a base row with the single structure one database
// resolved.
func simpleRow(row workbook.Row, base []string, rec models.Record, db models.Database) workbook.Row {
	out := baseRow(row, base)
	out["InChI"] = rec.InChI
	out["InChIKey"] = rec.InChIKey
	out["SMILES"] = rec.SMILES
	out["MetaboliteID"] = rec.MetaboliteID
	out["Database"] = string(db)
	return out
}

// matchRow enriches a base row with the cross-database matches, joining
// multiple values per column.
func matchRow(row workbook.Row, base []string, matches []models.Match) workbook.Row {
	out := baseRow(row, base)
	var inchi, inchikey, eids, esmiles, hids, hsmiles []string
	for _, m := range matches {
		inchi = append(inchi, m.InChI)
		inchikey = append(inchikey, m.InChIKey)
		eids = append(eids, m.EcoCyc.MetaboliteID)
		esmiles = append(esmiles, m.EcoCyc.SMILES)
		hids = append(hids, m.HMDB.MetaboliteID)
		hsmiles = append(hsmiles, m.HMDB.SMILES)
	}
	out["InChI"] = strings.Join(inchi, valueSeparator)
	out["InChIKey"] = strings.Join(inchikey, valueSeparator)
	out["eMetaboliteID"] = strings.Join(eids, valueSeparator)
	out["eSMILES"] = strings.Join(esmiles, valueSeparator)
	out["hMetaboliteID"] = strings.Join(hids, valueSeparator)
	out["hSMILES"] = strings.Join(hsmiles, valueSeparator)
	return out
}

// ambiguousRow enriches a base row with all values each database
// resolved, one prefixed column group per database. A side with no
// records leaves its group blank.
func ambiguousRow(row workbook.Row, base []string, erecs, hrecs []models.Record) workbook.Row {
	out := baseRow(row, base)
	fillSide(out, "e", erecs)
	fillSide(out, "h", hrecs)
	return out
}

func fillSide(out workbook.Row, prefix string, recs []models.Record) {
	var ids, inchi, inchikey, smiles []string
	for _, rec := range recs {
		ids = append(ids, rec.MetaboliteID)
		inchi = append(inchi, rec.InChI)
		inchikey = append(inchikey, rec.InChIKey)
		smiles = append(smiles, rec.SMILES)
	}
	out[prefix+"MetaboliteID"] = strings.Join(ids, valueSeparator)
	out[prefix+"InChI"] = strings.Join(inchi, valueSeparator)
	out[prefix+"InChIKey"] = strings.Join(inchikey, valueSeparator)
	out[prefix+"SMILES"] = strings.Join(smiles, valueSeparator)
}

