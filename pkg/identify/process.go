package identify

import (
	"context"

	"go.uber.org/zap"

	"ligandid/pkg/identify/models"
	"ligandid/pkg/workbook"
)

// Lookup resolves one metabolite identifier to a structure record.
// Implementations return incomplete records for unknown identifiers and
// reserve errors for source failures.
type Lookup interface {
	Lookup(ctx context.Context, id string) (models.Record, error)
}

// Processor runs the identification pipeline: read the workbook,
// classify every row, write the five outcome workbooks.
type Processor struct {
	cfg    Config
	ecocyc Lookup
	hmdb   Lookup
	log    *zap.Logger
}

// New builds a processor over the two lookup sources. log may be nil.
func New(cfg Config, ecocyc, hmdb Lookup, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{cfg: cfg, ecocyc: ecocyc, hmdb: hmdb, log: log}
}

// Summary reports what a run produced.
type Summary struct {
	Sheets int
	Counts map[models.Outcome]int
}

// Run processes the workbook at excelPath and writes the outcome
// workbooks into outDir. Rows whose lookups fail are logged and
// skipped; sheet-level failures abort the run.
func (p *Processor) Run(ctx context.Context, excelPath, outDir string) (*Summary, error) {
	sheets, err := workbook.Read(excelPath, p.cfg.SkipSheets)
	if err != nil {
		return nil, err
	}

	outputs := workbook.NewOutputSet()
	summary := &Summary{Counts: make(map[models.Outcome]int)}
	for _, sheet := range sheets {
		p.log.Info("processing sheet",
			zap.String("sheet", sheet.Name),
			zap.Int("rows", len(sheet.Rows)))
		tables, err := p.processSheet(ctx, sheet, summary)
		if err != nil {
			return nil, &SheetError{Sheet: sheet.Name, Stage: "classify", Err: err}
		}
		outputs.Add(sheet.Name, tables)
		summary.Sheets++
	}

	if err := outputs.Write(outDir); err != nil {
		return nil, err
	}
	return summary, nil
}

func (p *Processor) processSheet(ctx context.Context, sheet workbook.Sheet, summary *Summary) (map[models.Outcome]*workbook.Table, error) {
	base := baseColumns(sheet.Columns)
	tables := newOutcomeTables(base, sheet.Subheader)

	for i, row := range sheet.Rows {
		// Spreadsheet row number, after the header and subheader lines.
		rowNum := i + 3
		emids := SplitIDs(row[workbook.ColumnEcoCyc], p.cfg.InvalidIDs)
		hmids := SplitIDs(row[workbook.ColumnHMDB], p.cfg.InvalidIDs)

		outcome, err := p.classifyRow(ctx, row, base, emids, hmids, tables)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.log.Warn("row lookup failed, skipping",
				zap.String("sheet", sheet.Name),
				zap.Int("row", rowNum),
				zap.Error(err))
			continue
		}
		summary.Counts[outcome]++
		p.log.Debug("row classified",
			zap.String("sheet", sheet.Name),
			zap.Int("row", rowNum),
			zap.String("outcome", string(outcome)))
	}
	return tables, nil
}

// classifyRow sorts one data row into its outcome table. Matched rows
// additionally land in the ambiguous table as an audit trail of both
// databases' values.
func (p *Processor) classifyRow(ctx context.Context, row workbook.Row, base []string, emids, hmids []string, tables map[models.Outcome]*workbook.Table) (models.Outcome, error) {
	switch {
	case len(emids) == 0 && len(hmids) == 0:
		tables[models.OutcomeNoData].Append(baseRow(row, base))
		return models.OutcomeNoData, nil

	case len(emids) == 0 || len(hmids) == 0:
		ids, src, db := hmids, p.hmdb, models.DatabaseHMDB
		if len(hmids) == 0 {
			ids, src, db = emids, p.ecocyc, models.DatabaseEcoCyc
		}
		recs, err := retrieve(ctx, ids, src)
		if err != nil {
			return "", err
		}
		if len(recs) == 1 {
			tables[models.OutcomeSimple].Append(simpleRow(row, base, recs[0], db))
			return models.OutcomeSimple, nil
		}
		if db == models.DatabaseEcoCyc {
			tables[models.OutcomeAmbiguous].Append(ambiguousRow(row, base, recs, nil))
		} else {
			tables[models.OutcomeAmbiguous].Append(ambiguousRow(row, base, nil, recs))
		}
		return models.OutcomeAmbiguous, nil

	default:
		erecs, err := retrieve(ctx, emids, p.ecocyc)
		if err != nil {
			return "", err
		}
		hrecs, err := retrieve(ctx, hmids, p.hmdb)
		if err != nil {
			return "", err
		}

		matches := intersect(erecs, hrecs)
		outcome := models.OutcomeAmbiguous
		if len(matches) == 1 {
			tables[models.OutcomeMatch].Append(matchRow(row, base, matches))
			outcome = models.OutcomeMatch
		} else if len(matches) > 1 {
			tables[models.OutcomeMultiMatch].Append(matchRow(row, base, matches))
			outcome = models.OutcomeMultiMatch
		}
		tables[models.OutcomeAmbiguous].Append(ambiguousRow(row, base, erecs, hrecs))
		return outcome, nil
	}
}
