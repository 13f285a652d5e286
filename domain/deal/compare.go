package deal

import "strings"

const missingMarker = "<missing>"

// Compare evaluates the field checks in declared order against one row
// and one remote record, returning the resulting discrepancy messages.
// An empty result means the row passes.
func Compare(row Row, record RemoteRecord, checks []FieldCheck) []string {
	var discrepancies []string

	for _, check := range checks {
		rowVal, rowOK := row[check.Column]
		remoteVal, remoteOK := record[check.Field]

		expected := strings.TrimSpace(rowVal)
		found := ValueString(remoteVal)

		if check.Strict {
			rowMissing := !rowOK || expected == ""
			remoteMissing := !remoteOK || remoteVal == nil
			if rowMissing != remoteMissing {
				e, f := expected, found
				if rowMissing {
					e = missingMarker
				}
				if remoteMissing {
					f = missingMarker
				}
				discrepancies = append(discrepancies, Discrepancy(check.Label, e, f))
				continue
			}
		}

		if check.IsDate {
			expected = NormalizeDate(expected)
			found = NormalizeDate(remoteVal)
		}

		if expected != found {
			discrepancies = append(discrepancies, Discrepancy(check.Label, expected, found))
		}
	}

	return discrepancies
}
