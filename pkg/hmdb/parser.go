package hmdb

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"ligandid/pkg/identify/models"
)

// parse streams the dump, collecting one record per metabolite element.
// Only direct children of each metabolite are read; every other subtree
// is skipped so nested name/inchi occurrences cannot shadow the entry.
func (ix *Index) parse(r io.Reader) error {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "metabolite" {
			if err := ix.parseMetabolite(d); err != nil {
				return err
			}
		}
	}
}

func (ix *Index) parseMetabolite(d *xml.Decoder) error {
	var entry struct {
		name      string
		accession string
		synonyms  []string
		inchi     string
		inchikey  string
		smiles    string
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if err := d.DecodeElement(&entry.name, &t); err != nil {
					return err
				}
			case "accession":
				if err := d.DecodeElement(&entry.accession, &t); err != nil {
					return err
				}
			case "synonyms":
				syns, err := parseSynonyms(d)
				if err != nil {
					return err
				}
				entry.synonyms = syns
			case "inchi":
				if err := d.DecodeElement(&entry.inchi, &t); err != nil {
					return err
				}
			case "inchikey":
				if err := d.DecodeElement(&entry.inchikey, &t); err != nil {
					return err
				}
			case "smiles":
				if err := d.DecodeElement(&entry.smiles, &t); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "metabolite" {
				rec := models.Record{
					InChI:    strings.TrimPrefix(entry.inchi, "InChI="),
					InChIKey: entry.inchikey,
					SMILES:   entry.smiles,
				}
				ix.add(entry.name, rec, true)
				ix.add(entry.accession, rec, true)
				for _, syn := range entry.synonyms {
					ix.add(syn, rec, false)
				}
				ix.count++
				return nil
			}
		}
	}
}

func parseSynonyms(d *xml.Decoder) ([]string, error) {
	var syns []string
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "synonym" {
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return nil, err
				}
				syns = append(syns, s)
			} else if err := d.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == "synonyms" {
				return syns, nil
			}
		}
	}
}

// add indexes one key. A name or accession displaces a key registered
// from a synonym, but never one from an earlier name or accession, so
// the first entry carrying a name wins as it does in the dump order.
func (ix *Index) add(key string, rec models.Record, primary bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, exists := ix.records[key]; exists {
		if !primary || ix.primary[key] {
			return
		}
	}
	ix.records[key] = rec
	if primary {
		if ix.primary == nil {
			ix.primary = make(map[string]bool)
		}
		ix.primary[key] = true
	}
}
