package seer2arff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstance(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())
	pipeline := &Pipeline{Attrs: attrs.AttributeSet}

	instance, err := pipeline.FormatInstance(stageIVDeceasedRow())
	require.NoError(t, err)

	// 48 months of survival is above the 12 month split, hence class 2.
	assert.Equal(t, "2,063,2004,2,015,1,1,1,2,4,1,1,1,42", instance)

	assert.Equal(t, attrs.Len()-1, strings.Count(instance, ","))
	assert.False(t, strings.HasPrefix(instance, ","))
	assert.False(t, strings.HasSuffix(instance, ","))
}

func TestFormatInstanceMissingFields(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())
	pipeline := &Pipeline{Attrs: attrs.AttributeSet}

	// Unset spans are blank in the record and must render as the
	// sentinel, never as empty fields.
	instance, err := pipeline.FormatInstance(seerRow(280, map[int]string{25: "063"}))
	require.NoError(t, err)

	fields := strings.Split(instance, ",")
	require.Len(t, fields, attrs.Len())
	assert.Equal(t, "063", fields[1])
	for i, f := range fields {
		if i == 1 {
			continue
		}
		assert.Equal(t, Missing, f, "field %d", i)
	}
}

func TestWriteHeader(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())
	pipeline := &Pipeline{Attrs: attrs.AttributeSet}

	var buf bytes.Buffer
	require.NoError(t, pipeline.WriteHeader(&buf))

	want := `@relation breast
@attribute marital-status-at-dx {1,2,3,4,5}
@attribute age-at-dx numeric
@attribute year-of-dx numeric
@attribute grade {1,2,3,4}
@attribute eod-tumor-size numeric
@attribute eod-lymph-node-involv {0,1,2,3,4,5,6,7,8}
@attribute reason-for-no-surgery {0,1,2,6,7,8}
@attribute race-recode {1,2,3,4,7}
@attribute survival-time-recode {1,2}
@attribute vital-status-recode numeric
@attribute seer-cause-specific-death-classification numeric
@attribute er-status-recode-breast-cancer {1,2,3}
@attribute pr-status-recode-breast-cancer {1,2,3}
@attribute ajcc-stage-3rd-edition numeric

@data
`
	assert.Equal(t, want, buf.String())
}

func TestWriteHeaderDeterministic(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())
	pipeline := &Pipeline{Attrs: attrs.AttributeSet}

	var first, second bytes.Buffer
	require.NoError(t, pipeline.WriteHeader(&first))
	require.NoError(t, pipeline.WriteHeader(&second))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestToARFFSelectsFilteredRecords(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())

	alive := seerRow(280, map[int]string{237: "42", 265: "1", 272: "1"})
	earlyStage := seerRow(280, map[int]string{237: "21", 265: "4", 272: "1"})
	input := strings.Join([]string{stageIVDeceasedRow(), alive, earlyStage}, "\n") + "\n"

	pipeline := &Pipeline{Attrs: attrs.AttributeSet, Filter: attrs.StageIVDeceased()}

	var out bytes.Buffer
	counts, err := pipeline.ToARFF(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, Counts{Total: 3, Selected: 1}, counts)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	dataAt := -1
	for i, line := range lines {
		if line == "@data" {
			dataAt = i
		}
	}
	require.NotEqual(t, -1, dataAt)
	require.Len(t, lines, dataAt+2, "exactly one data line")
	assert.Equal(t, "2,063,2004,2,015,1,1,1,2,4,1,1,1,42", lines[dataAt+1])
}

func TestToARFFWithoutFilterConvertsEverything(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())

	alive := seerRow(280, map[int]string{237: "42", 265: "1", 272: "1"})
	input := stageIVDeceasedRow() + "\n" + alive + "\n"

	pipeline := &Pipeline{Attrs: attrs.AttributeSet}

	var out bytes.Buffer
	counts, err := pipeline.ToARFF(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, Counts{Total: 2, Selected: 2}, counts)
}

func TestToARFFSkipsShortRecords(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())

	input := stageIVDeceasedRow() + "\ntruncated record\n"

	pipeline := &Pipeline{Attrs: attrs.AttributeSet, Filter: attrs.StageIVDeceased()}

	var out bytes.Buffer
	counts, err := pipeline.ToARFF(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, Counts{Total: 2, Selected: 1, OutOfRange: 1}, counts)
	assert.NotContains(t, out.String(), "truncated")
}

func TestCountMatches(t *testing.T) {

	attrs := BreastCancerAttributes(testConfig())

	alive := seerRow(280, map[int]string{237: "42", 265: "1", 272: "1"})
	input := strings.Join([]string{stageIVDeceasedRow(), alive, stageIVDeceasedRow()}, "\n") + "\n"

	n, err := CountMatches(strings.NewReader(input), AllOf(attrs.Stage.IsStageIV, attrs.Vital.IsDead))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountMatches(strings.NewReader(input), AllOf())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
