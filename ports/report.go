package ports

import "dealqa/domain/deal"

// ReportWriter serializes the collected outcomes to the report file,
// overwriting any previous report at the configured path.
type ReportWriter interface {
	WriteReport(outcomes []deal.Outcome) error
}
