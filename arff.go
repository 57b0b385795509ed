package seer2arff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Counts summarizes one conversion scan.
type Counts struct {

	// Total is the number of records read.
	Total int

	// Selected is the number of records accepted by the filter and
	// written to the output.
	Selected int

	// OutOfRange is the number of records skipped because they were
	// shorter than the attribute set's required width.
	OutOfRange int
}

// A Pipeline drives one whole-file conversion: it writes the ARFF
// header for its attribute set, then streams records through the
// optional filter, rendering each selected record as one data line.
//
// Records shorter than the attribute set's width cannot be sliced and
// are skipped, counted in Counts.OutOfRange, and logged; they are
// never silently reported as all-missing.  On error, output already
// written is left in place.
type Pipeline struct {

	// Attrs is the ordered attribute set to convert with.
	Attrs *AttributeSet

	// Filter selects the records to emit; nil selects every record.
	Filter RowFilter

	// Log receives the scan summary and short-record warnings.  Nil
	// disables logging.
	Log *zap.Logger
}

// FormatInstance renders one ARFF data line: each attribute value in
// set order, comma separated, with no trailing separator.
func (p *Pipeline) FormatInstance(row string) (string, error) {
	values := make([]string, len(p.Attrs.converters))
	for i, c := range p.Attrs.converters {
		value, err := c.Value(row)
		if err != nil {
			return "", err
		}
		values[i] = value
	}
	return strings.Join(values, ","), nil
}

// WriteHeader writes the @relation line, one @attribute declaration
// per attribute in set order, and the @data marker.  The header is
// deterministic for a given attribute set.
func (p *Pipeline) WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "@relation %s\n", p.Attrs.relation); err != nil {
		return err
	}
	for _, c := range p.Attrs.converters {
		if _, err := io.WriteString(w, c.MetaString()+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n@data\n")
	return err
}

// ToARFF converts the records from r into a complete ARFF document on
// w.  The input is streamed one record at a time and never held in
// memory as a whole.  The returned counts are valid only when the
// error is nil.
func (p *Pipeline) ToARFF(r io.Reader, w io.Writer) (Counts, error) {

	var counts Counts

	bw := bufio.NewWriter(w)
	if err := p.WriteHeader(bw); err != nil {
		return counts, err
	}

	firstShort := 0
	scanner := newRecordScanner(r)
	for scanner.Scan() {
		row := scanner.Text()
		counts.Total++

		if len(row) < p.Attrs.width {
			counts.OutOfRange++
			if firstShort == 0 {
				firstShort = counts.Total
			}
			continue
		}

		if p.Filter != nil && !p.Filter(row) {
			continue
		}

		instance, err := p.FormatInstance(row)
		if err != nil {
			return counts, err
		}
		if _, err := io.WriteString(bw, instance+"\n"); err != nil {
			return counts, err
		}
		counts.Selected++
	}
	if err := scanner.Err(); err != nil {
		return counts, err
	}
	if err := bw.Flush(); err != nil {
		return counts, err
	}

	if p.Log != nil {
		p.Log.Info("conversion complete",
			zap.Int("total", counts.Total),
			zap.Int("selected", counts.Selected))
		if counts.OutOfRange > 0 {
			p.Log.Warn("skipped records shorter than the attribute set width",
				zap.Int("skipped", counts.OutOfRange),
				zap.Int("width", p.Attrs.width),
				zap.Int("firstLine", firstShort))
		}
	}

	return counts, nil
}

// CountMatches counts the records in r accepted by filter.
func CountMatches(r io.Reader, filter RowFilter) (int, error) {
	count := 0
	scanner := newRecordScanner(r)
	for scanner.Scan() {
		if filter(scanner.Text()) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// newRecordScanner returns a line scanner sized for SEER extracts,
// whose records run to a few thousand characters.
func newRecordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
