package app

import (
	"context"
	"fmt"
	"strings"

	"dealqa/domain/core"
	"dealqa/domain/deal"
	"dealqa/internal"
	"dealqa/internal/errors"
	"dealqa/ports"
)

// ValidationService runs the full reconciliation pipeline: load rows,
// fetch each deal, compare, and write the report. Strictly sequential,
// one request in flight at a time.
type ValidationService struct {
	source   ports.RowSource
	fetcher  ports.DealFetcher
	reporter ports.ReportWriter
	checks   []deal.FieldCheck
	idColumn string
	logger   *internal.Logger
}

// Summary aggregates the result of one run.
type Summary struct {
	RunID    core.RunID
	Total    int
	Passed   int
	Failed   int
	Errors   int
	Skipped  int
	Outcomes []deal.Outcome
}

// NewValidationService wires the pipeline components.
func NewValidationService(
	source ports.RowSource,
	fetcher ports.DealFetcher,
	reporter ports.ReportWriter,
	checks []deal.FieldCheck,
	idColumn string,
	logger *internal.Logger,
) *ValidationService {
	return &ValidationService{
		source:   source,
		fetcher:  fetcher,
		reporter: reporter,
		checks:   checks,
		idColumn: idColumn,
		logger:   logger,
	}
}

// Run executes one validation pass. Input errors (unreadable file,
// missing identifier column) abort the run; per-row fetch failures are
// recorded as ERROR outcomes and processing continues.
func (s *ValidationService) Run(ctx context.Context) (*Summary, error) {
	runID := core.NewRunID()

	sheet, err := s.source.ReadSheet()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input sheet")
	}

	if !sheet.HasColumn(s.idColumn) {
		return nil, errors.InvalidInput(fmt.Sprintf(
			"column %q not found; available columns: %s",
			s.idColumn, strings.Join(sheet.Headers, ", ")))
	}

	summary := &Summary{RunID: runID}
	for _, row := range sheet.Rows {
		dealID := strings.TrimSpace(row[s.idColumn])
		if dealID == "" {
			summary.Skipped++
			continue
		}

		s.logger.Info("[Validator] run=%s validating deal %s", runID, dealID)

		outcome := deal.Outcome{DealID: dealID, Status: deal.StatusPass}
		record, err := s.fetcher.FetchDeal(ctx, dealID)
		if err != nil {
			s.logger.Error("[Validator] run=%s fetching deal %s: %v", runID, dealID, err)
			outcome.Status = deal.StatusError
			outcome.Comments = err.Error()
			summary.Errors++
		} else if issues := deal.Compare(row, record, s.checks); len(issues) > 0 {
			outcome.Status = deal.StatusFail
			outcome.Comments = strings.Join(issues, "; ")
			summary.Failed++
		} else {
			summary.Passed++
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	summary.Total = len(summary.Outcomes)

	if err := s.reporter.WriteReport(summary.Outcomes); err != nil {
		return nil, errors.Wrap(err, "failed to write report")
	}

	s.logger.Info("[Validator] run=%s complete: %d validated, %d passed, %d failed, %d errors, %d skipped",
		runID, summary.Total, summary.Passed, summary.Failed, summary.Errors, summary.Skipped)

	return summary, nil
}
