package seer2arff

import (
	"fmt"
	"strings"
)

// Missing is the ARFF missing-value sentinel.  Every SEER unknown
// encoding (all-nines codes, blank spans, suppressed categories)
// collapses to this marker in the output.
const Missing = "?"

// A Datatype is the ARFF datatype of an attribute: numeric, string,
// or nominal with a fixed category set.
type Datatype interface {
	arffTag() string
}

type numericType struct{}

func (numericType) arffTag() string { return "numeric" }

type stringType struct{}

func (stringType) arffTag() string { return "string" }

type nominalType struct {
	categories []string
}

func (t nominalType) arffTag() string {
	return "{" + strings.Join(t.categories, ",") + "}"
}

// Numeric and String are the scalar ARFF datatypes.
var (
	Numeric Datatype = numericType{}
	String  Datatype = stringType{}
)

// Nominal returns the ARFF nominal datatype with the given permitted
// codes.  The ordering is preserved into the @attribute declaration, so
// it is stable across runs.
func Nominal(categories ...string) Datatype {
	return nominalType{categories: categories}
}

// An OutOfRangeError reports a record too short to contain an
// attribute's column span.  The attribute's span is taken from the
// SEER data dictionary, so a short record means the input is not the
// extract the dictionary describes.
type OutOfRangeError struct {
	Attribute string
	Need      int
	RowWidth  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("attribute %s needs %d columns, record has %d",
		e.Attribute, e.Need, e.RowWidth)
}

// An Attribute describes one fixed-width column of a SEER record: the
// 1-based start position and width from the SEER data dictionary, a
// unique name, and the ARFF datatype it is declared with.
type Attribute struct {

	// Start is the 1-based column position, as printed in the data
	// dictionary.
	Start int

	// Length is the number of characters in the column span.
	Length int

	// Name is the unique attribute name used in the ARFF header.
	Name string

	// Datatype is the declared ARFF datatype.
	Datatype Datatype
}

// end returns the exclusive byte offset of the attribute's span.
func (a Attribute) end() int {
	return a.Start - 1 + a.Length
}

func (a Attribute) attrName() string {
	return a.Name
}

// RawSlice returns the attribute's span of row verbatim, with no
// missing-value normalization.
func (a Attribute) RawSlice(row string) (string, error) {
	if len(row) < a.end() {
		return "", &OutOfRangeError{Attribute: a.Name, Need: a.end(), RowWidth: len(row)}
	}
	return row[a.Start-1 : a.end()], nil
}

// Value returns the attribute's normalized value: the raw slice with
// the all-nines and blank unknown encodings collapsed to Missing.
func (a Attribute) Value(row string) (string, error) {
	raw, err := a.RawSlice(row)
	if err != nil {
		return "", err
	}
	return BlankToMissing(NinesToMissing(raw)), nil
}

// MetaString returns the @attribute declaration that precedes the data
// section of an ARFF file.
func (a Attribute) MetaString() string {
	return fmt.Sprintf("@attribute %s %s", a.Name, a.Datatype.arffTag())
}

// Matches reports whether the attribute's raw value in row equals
// code.  A record too short for the span never matches.
func (a Attribute) Matches(row, code string) bool {
	raw, err := a.RawSlice(row)
	if err != nil {
		return false
	}
	return raw == code
}

// NinesToMissing maps the SEER all-nines unknown encoding to the ARFF
// missing-value sentinel.  Any other value, including the empty
// string, is returned unchanged.
func NinesToMissing(value string) string {
	if len(value) == 0 {
		return value
	}
	for i := 0; i < len(value); i++ {
		if value[i] != '9' {
			return value
		}
	}
	return Missing
}

// BlankToMissing maps a value containing any blank character to the
// missing-value sentinel.  SEER leaves spans blank when a field was
// not collected for a case.  Kept separate from NinesToMissing so
// recodes that define their own unknown marker can apply only the
// blank rule.
func BlankToMissing(value string) string {
	if strings.ContainsRune(value, ' ') {
		return Missing
	}
	return value
}
