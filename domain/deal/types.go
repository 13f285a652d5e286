package deal

import "fmt"

// Status is the final verdict for one validated row.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusError   Status = "ERROR"
	StatusSkipped Status = "SKIPPED"
)

// Row is one data record from the input sheet, keyed by trimmed column name.
type Row map[string]string

// Sheet is the loaded input table: trimmed headers plus data rows in sheet order.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the sheet carries the named column.
func (s *Sheet) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// RemoteRecord is the JSON object returned by the deals API for one identifier.
type RemoteRecord map[string]any

// FieldCheck declares one correspondence between an input column and a
// remote field. Date-flagged checks normalize both sides before comparing.
// Strict checks report a mismatch when exactly one side is missing;
// lenient checks (the default) treat missing, empty and null as equal.
type FieldCheck struct {
	Column string
	Field  string
	Label  string
	IsDate bool
	Strict bool
}

// Outcome is the per-row verdict collected into the report, in input order.
type Outcome struct {
	DealID   string
	Status   Status
	Comments string
}

// Discrepancy formats a single mismatch message for one field check.
func Discrepancy(label, expected, found string) string {
	return fmt.Sprintf("%s: Expected '%s', Found '%s'", label, expected, found)
}

// DefaultChecks returns the standard deal field checks. All are lenient.
func DefaultChecks() []FieldCheck {
	return []FieldCheck{
		{Column: "Deal Name", Field: "name", Label: "Deal Name"},
		{Column: "CPM (INR)", Field: "cpm", Label: "CPM"},
		{Column: "Start Date (MM-DD-YY)", Field: "startDate", Label: "Start Date", IsDate: true},
		{Column: "End date (MM-DD-YY)", Field: "endDate", Label: "End Date", IsDate: true},
		{Column: "Budget (INR)", Field: "budget", Label: "Budget"},
	}
}
