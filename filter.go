package seer2arff

import "strconv"

// A RowFilter is a pure predicate over one SEER record, used to
// select the subset of records written to the output.
type RowFilter func(row string) bool

// AllOf combines filters into their logical AND.  Evaluation is left
// to right and short-circuits on the first rejection.  With no
// filters the result accepts every record.
func AllOf(filters ...RowFilter) RowFilter {
	return func(row string) bool {
		for _, f := range filters {
			if !f(row) {
				return false
			}
		}
		return true
	}
}

// DiagnosedAfter returns a filter accepting records whose diagnosis
// year is strictly greater than year.  Unknown or non-numeric years
// never match.
func DiagnosedAfter(yearOfDx Attribute, year int) RowFilter {
	return func(row string) bool {
		value, err := yearOfDx.Value(row)
		if err != nil || value == Missing {
			return false
		}
		y, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return y > year
	}
}

// SurvivedAtMost returns a filter accepting records whose survival
// time is no more than the given number of months.  Unknown survival
// times never match.
func SurvivedAtMost(survival SurvivalRecode, months int) RowFilter {
	return func(row string) bool {
		value, err := survival.Months(row)
		if err != nil || value == Missing {
			return false
		}
		m, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return m <= months
	}
}
