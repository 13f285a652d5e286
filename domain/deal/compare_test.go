package deal

import (
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	checks := DefaultChecks()

	tests := []struct {
		name         string
		row          Row
		record       RemoteRecord
		wantCount    int
		wantContains []string
	}{
		{
			name: "Everything matches",
			row: Row{
				"Deal Name":             "Spring Push",
				"CPM (INR)":             "50",
				"Start Date (MM-DD-YY)": "2026-02-01 00:00:00",
				"End date (MM-DD-YY)":   "2026-03-01 00:00:00",
				"Budget (INR)":          "100000",
			},
			record: RemoteRecord{
				"name":      "Spring Push",
				"cpm":       float64(50),
				"startDate": "2026-02-01T00:00:00Z",
				"endDate":   "2026-03-01T00:00:00Z",
				"budget":    float64(100000),
			},
			wantCount: 0,
		},
		{
			name:         "CPM mismatch reported once",
			row:          Row{"CPM (INR)": "50"},
			record:       RemoteRecord{"cpm": float64(55)},
			wantCount:    1,
			wantContains: []string{"CPM", "'50'", "'55'"},
		},
		{
			name:      "Missing name on both sides is equal",
			row:       Row{"CPM (INR)": "50"},
			record:    RemoteRecord{"cpm": float64(50)},
			wantCount: 0,
		},
		{
			name:         "Date mismatch after normalization",
			row:          Row{"Start Date (MM-DD-YY)": "2026-02-01 00:00:00"},
			record:       RemoteRecord{"startDate": "2026-02-02T09:31:18Z"},
			wantCount:    1,
			wantContains: []string{"Start Date", "'2026-02-01'", "'2026-02-02'"},
		},
		{
			name:      "Null remote value equals empty cell",
			row:       Row{"Deal Name": ""},
			record:    RemoteRecord{"name": nil},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.row, tt.record, checks)
			if len(got) != tt.wantCount {
				t.Fatalf("Compare returned %d discrepancies, want %d: %v", len(got), tt.wantCount, got)
			}
			joined := strings.Join(got, "; ")
			for _, want := range tt.wantContains {
				if !strings.Contains(joined, want) {
					t.Errorf("discrepancies %q missing %q", joined, want)
				}
			}
		})
	}
}

func TestCompareStrictMissing(t *testing.T) {
	checks := []FieldCheck{{Column: "Deal Name", Field: "name", Label: "Deal Name", Strict: true}}

	// Lenient would call these equal; strict flags the one-sided absence.
	got := Compare(Row{"Deal Name": "   "}, RemoteRecord{"name": ""}, checks)
	if len(got) != 1 {
		t.Fatalf("strict check returned %d discrepancies, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0], "<missing>") {
		t.Errorf("strict discrepancy %q does not mark the missing side", got[0])
	}

	// Missing on both sides is still equal under strict.
	if got := Compare(Row{}, RemoteRecord{}, checks); len(got) != 0 {
		t.Errorf("strict check on doubly-missing field returned %v", got)
	}
}
