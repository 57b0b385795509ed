package seer2arff

// An AttributeSet is the ordered, immutable collection of column
// converters driving one conversion run.  The construction order
// fixes both the @attribute declarations and the field order of every
// data row.
type AttributeSet struct {
	relation   string
	converters []Converter
	width      int
}

// NewAttributeSet builds an attribute set with the given relation
// name and converters.  The converter order is preserved.
func NewAttributeSet(relation string, converters ...Converter) *AttributeSet {
	width := 0
	for _, c := range converters {
		if c.end() > width {
			width = c.end()
		}
	}
	return &AttributeSet{
		relation:   relation,
		converters: converters,
		width:      width,
	}
}

// Relation returns the ARFF relation name.
func (as *AttributeSet) Relation() string {
	return as.relation
}

// Len returns the number of attributes in the set.
func (as *AttributeSet) Len() int {
	return len(as.converters)
}

// Width returns the minimum record length able to hold every
// attribute's column span.  Shorter records are out of range for this
// set.
func (as *AttributeSet) Width() int {
	return as.width
}

// Names returns the attribute names in declaration order.
func (as *AttributeSet) Names() []string {
	names := make([]string, len(as.converters))
	for i, c := range as.converters {
		names[i] = c.attrName()
	}
	return names
}

// A BreastCancerSet is the stock breast cancer attribute table, with
// the typed columns the stock filters are built from.
type BreastCancerSet struct {
	*AttributeSet

	YearOfDx Attribute
	Survival SurvivalRecode
	Vital    VitalStatus
	Cause    CauseOfDeath
	Stage    StageCode
}

// BreastCancerAttributes builds the breast cancer attribute set from
// the SEER 1973-2009 data dictionary column positions.  The survival
// recode split is taken from cfg and fixed for the life of the set.
func BreastCancerAttributes(cfg Config) *BreastCancerSet {

	yearOfDx := Attribute{Start: 39, Length: 4, Name: "year-of-dx", Datatype: Numeric}
	survival := SurvivalRecode{
		Attribute:   Attribute{Start: 251, Length: 4, Name: "survival-time-recode", Datatype: Nominal("1", "2")},
		SplitMonths: cfg.SurvivalSplitMonths,
	}
	vital := VitalStatus{Attribute{Start: 265, Length: 1, Name: "vital-status-recode", Datatype: Numeric}}
	cause := CauseOfDeath{Attribute{Start: 272, Length: 1, Name: "seer-cause-specific-death-classification", Datatype: Numeric}}
	stage := StageCode{Attribute{Start: 237, Length: 2, Name: "ajcc-stage-3rd-edition", Datatype: Numeric}}

	attrs := NewAttributeSet(cfg.Relation,
		Attribute{Start: 19, Length: 1, Name: "marital-status-at-dx", Datatype: Nominal("1", "2", "3", "4", "5")},
		Attribute{Start: 25, Length: 3, Name: "age-at-dx", Datatype: Numeric},
		yearOfDx,
		Attribute{Start: 58, Length: 1, Name: "grade", Datatype: Nominal("1", "2", "3", "4")},
		Attribute{Start: 61, Length: 3, Name: "eod-tumor-size", Datatype: Numeric},
		Attribute{Start: 68, Length: 1, Name: "eod-lymph-node-involv", Datatype: Nominal("0", "1", "2", "3", "4", "5", "6", "7", "8")},
		Attribute{Start: 166, Length: 1, Name: "reason-for-no-surgery", Datatype: Nominal("0", "1", "2", "6", "7", "8")},
		Attribute{Start: 234, Length: 1, Name: "race-recode", Datatype: Nominal("1", "2", "3", "4", "7")},
		survival,
		vital,
		cause,
		StatusRecode{
			Attribute:   Attribute{Start: 278, Length: 1, Name: "er-status-recode-breast-cancer", Datatype: Nominal("1", "2", "3")},
			UnknownCode: "4",
		},
		StatusRecode{
			Attribute:   Attribute{Start: 279, Length: 1, Name: "pr-status-recode-breast-cancer", Datatype: Nominal("1", "2", "3")},
			UnknownCode: "4",
		},
		stage,
	)

	return &BreastCancerSet{
		AttributeSet: attrs,
		YearOfDx:     yearOfDx,
		Survival:     survival,
		Vital:        vital,
		Cause:        cause,
		Stage:        stage,
	}
}

// StageIVDeceased is the stock selection for the survival study:
// AJCC stage IV cases that are deceased and whose death is attributed
// to the diagnosed cancer.
func (b *BreastCancerSet) StageIVDeceased() RowFilter {
	return AllOf(b.Stage.IsStageIV, b.Cause.IsDeadFromCancer, b.Vital.IsDead)
}
