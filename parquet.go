package seer2arff

import (
	"fmt"
	"io"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"go.uber.org/zap"
)

// ToParquet converts the records from r into a parquet file at path,
// using the same attribute set and filter as the ARFF output.  Every
// column is written as an optional UTF8 string; missing values become
// parquet nulls rather than the ARFF sentinel.
func (p *Pipeline) ToParquet(r io.Reader, path string) (Counts, error) {

	var counts Counts

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return counts, fmt.Errorf("creating %s: %w", path, err)
	}
	defer fw.Close()

	md := make([]string, len(p.Attrs.converters))
	for i, c := range p.Attrs.converters {
		md[i] = fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL",
			parquetName(c.attrName()))
	}

	pw, err := writer.NewCSVWriter(md, fw, 4)
	if err != nil {
		return counts, fmt.Errorf("creating parquet writer: %w", err)
	}
	pw.RowGroupSize = 128 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

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

		rec := make([]*string, len(p.Attrs.converters))
		for i, c := range p.Attrs.converters {
			value, err := c.Value(row)
			if err != nil {
				return counts, err
			}
			if value != Missing {
				v := value
				rec[i] = &v
			}
		}
		if err := pw.WriteString(rec); err != nil {
			return counts, fmt.Errorf("writing record %d: %w", counts.Total, err)
		}
		counts.Selected++
	}
	if err := scanner.Err(); err != nil {
		return counts, err
	}

	if err := pw.WriteStop(); err != nil {
		return counts, fmt.Errorf("finishing %s: %w", path, err)
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

// parquetName maps an attribute name to a parquet column name.  The
// hyphenated SEER names are kept readable but made identifier-safe.
func parquetName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
