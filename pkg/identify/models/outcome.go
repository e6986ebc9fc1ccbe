package models

// Outcome classifies one spreadsheet row after cross-referencing.
type Outcome string

const (
	// OutcomeNoData marks rows with no valid identifier in either database column.
	OutcomeNoData Outcome = "nodata"
	// OutcomeSimple marks rows where exactly one database yielded exactly one structure.
	OutcomeSimple Outcome = "simple"
	// OutcomeMatch marks rows with a single cross-database InChIKey match.
	OutcomeMatch Outcome = "match"
	// OutcomeMultiMatch marks rows with several cross-database InChIKey matches.
	OutcomeMultiMatch Outcome = "multimatch"
	// OutcomeAmbiguous marks rows whose identifiers could not be reconciled
	// to a single structure. Matched rows are also recorded here as an
	// audit trail of both databases' values.
	OutcomeAmbiguous Outcome = "ambiguous"
)

// Outcomes lists all outcomes in output file order.
var Outcomes = []Outcome{
	OutcomeNoData,
	OutcomeSimple,
	OutcomeMatch,
	OutcomeMultiMatch,
	OutcomeAmbiguous,
}
