// Package models defines the data types shared by the identification pipeline.
package models

// Database names an external metabolite reference database.
type Database string

const (
	// DatabaseEcoCyc is the BioCyc E. coli database, queried over HTTP.
	DatabaseEcoCyc Database = "EcoCyc"
	// DatabaseHMDB is the Human Metabolome Database, read from a local dump.
	DatabaseHMDB Database = "HMDB"
)

// Record holds the chemical structure encodings resolved for one
// metabolite identifier. Fields that could not be resolved are empty.
type Record struct {
	MetaboliteID string
	InChI        string
	InChIKey     string
	SMILES       string
}

// Complete reports whether all three structure encodings were resolved.
// Incomplete records are discarded after retrieval.
func (r Record) Complete() bool {
	return r.InChI != "" && r.InChIKey != "" && r.SMILES != ""
}

// Match pairs an EcoCyc record with an HMDB record that share an InChIKey.
// InChI and InChIKey are taken from the HMDB side; by construction the
// keys are identical on both sides.
type Match struct {
	InChI    string
	InChIKey string
	EcoCyc   Record
	HMDB     Record
}
