package seer2arff

import (
	"regexp"
	"strconv"
	"strings"
)

// A Converter computes one output field from a SEER record.  The row
// pipeline drives a fixed ordered list of Converters: MetaString
// supplies the @attribute declaration and Value the per-record field.
// The implementations form a closed set; a plain Attribute passes the
// normalized value through, the recode types below layer field
// specific transformations on top of it.
type Converter interface {
	MetaString() string
	Value(row string) (string, error)
	attrName() string
	end() int
}

// A StatusRecode is an Attribute with one in-range category reported
// as missing.  The ER/PR status recodes use it: code 4 means the
// status is unknown, which is real registry data but useless for
// learning, so it joins the blank and all-nines encodings in
// collapsing to the sentinel.
type StatusRecode struct {
	Attribute

	// UnknownCode is the category suppressed to Missing.
	UnknownCode string
}

func (s StatusRecode) Value(row string) (string, error) {
	value, err := s.Attribute.Value(row)
	if err != nil {
		return "", err
	}
	if value == s.UnknownCode {
		return Missing, nil
	}
	return value, nil
}

// A SurvivalRecode converts the SEER survival time, stored as a four
// character YYMM value (years then months), into a two-class nominal
// value: "1" when the case survived at most SplitMonths months, "2"
// otherwise.  The registry's 9999 marker and blank spans are unknown.
type SurvivalRecode struct {
	Attribute

	// SplitMonths is the class boundary in months, inclusive on the
	// "1" side.  Fixed at construction; see Config.
	SplitMonths int
}

const survivalUnknown = "9999"

// Months returns the survival time converted from YYMM to whole
// months, as a decimal string, or Missing when the value is unknown.
// A value that is neither blank, the unknown marker, nor numeric is
// also reported as Missing.
func (s SurvivalRecode) Months(row string) (string, error) {
	raw, err := s.RawSlice(row)
	if err != nil {
		return "", err
	}
	if strings.Contains(raw, survivalUnknown) || strings.ContainsRune(raw, ' ') {
		return Missing, nil
	}

	years, err := strconv.Atoi(raw[0:2])
	if err != nil {
		return Missing, nil
	}
	months, err := strconv.Atoi(raw[2:4])
	if err != nil {
		return Missing, nil
	}

	return strconv.Itoa(years*12 + months), nil
}

func (s SurvivalRecode) Value(row string) (string, error) {
	value, err := s.Months(row)
	if err != nil {
		return "", err
	}
	if value == Missing {
		return Missing, nil
	}

	months, err := strconv.Atoi(value)
	if err != nil {
		return Missing, nil
	}
	if months <= s.SplitMonths {
		return "1", nil
	}
	return "2", nil
}

// A VitalStatus is the SEER vital status recode column.  Besides the
// pass-through value, it exposes the deceased test used by row
// filters.
type VitalStatus struct {
	Attribute
}

// deadCode is the vital status recode for a deceased case.
const deadCode = "4"

// IsDead reports whether the case is recorded as deceased.
func (v VitalStatus) IsDead(row string) bool {
	return v.Matches(row, deadCode)
}

// A CauseOfDeath is the SEER cause-specific death classification
// column, with the died-of-this-cancer test used by row filters.
type CauseOfDeath struct {
	Attribute
}

// deadOfCancerCode classifies a death as attributable to the
// diagnosed cancer.
const deadOfCancerCode = "1"

// IsDeadFromCancer reports whether the case died of the diagnosed
// cancer.
func (c CauseOfDeath) IsDeadFromCancer(row string) bool {
	return c.Matches(row, deadOfCancerCode)
}

// A StageCode is the two character AJCC staging column.  Stage IV
// spans a family of codes whose first digit is 4.
type StageCode struct {
	Attribute
}

var stageIVPattern = regexp.MustCompile(`^4[0-9]$`)

// IsStageIV reports whether the case is staged in the AJCC stage IV
// family.  Values that do not parse as a two digit code never match.
func (s StageCode) IsStageIV(row string) bool {
	raw, err := s.RawSlice(row)
	if err != nil {
		return false
	}
	return stageIVPattern.MatchString(raw)
}
