package catalog

// Field identifies one displayable attribute of a species record.
// The numeric order of fields is the display order.
type Field int

const (
	ChineseName Field = iota
	OtherName
	Traits
	Taxonomy
	DomesticDistribution
	InternationalDistribution
	RegionalDistribution
	Diseases
)

var fieldLabels = map[Field]string{
	ChineseName:               "物种中文名",
	OtherName:                 "物种别名",
	Traits:                    "鉴别特征",
	Taxonomy:                  "生物学分类",
	DomesticDistribution:      "国内分布",
	InternationalDistribution: "国际分布",
	RegionalDistribution:      "区域分布",
	Diseases:                  "携带疾病/病毒",
}

// Fields returns all fields in display order.
func Fields() []Field {
	return []Field{
		ChineseName,
		OtherName,
		Traits,
		Taxonomy,
		DomesticDistribution,
		InternationalDistribution,
		RegionalDistribution,
		Diseases,
	}
}

// Label returns the human-readable name of the field.
func (f Field) Label() string {
	return fieldLabels[f]
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return f.Label()
}

// Record is the aggregated, display-ready view of one species.
type Record struct {
	// ScientificName is the binomial the record was found by.
	ScientificName string `json:"scientificName"`

	ChineseName string `json:"chineseName,omitempty"`
	OtherName   string `json:"otherName,omitempty"`
	Traits      string `json:"traits,omitempty"`

	// Taxonomy is the rank chain, most specific first, joined with " - ".
	Taxonomy string `json:"taxonomy,omitempty"`

	// DomesticDistribution holds locations of type province.
	DomesticDistribution string `json:"domesticDistribution,omitempty"`
	// InternationalDistribution holds locations of type country.
	InternationalDistribution string `json:"internationalDistribution,omitempty"`
	// RegionalDistribution holds locations of any other type.
	RegionalDistribution string `json:"regionalDistribution,omitempty"`

	Diseases string `json:"diseases,omitempty"`
}

// Value returns the value of a field.
func (r *Record) Value(f Field) string {
	switch f {
	case ChineseName:
		return r.ChineseName
	case OtherName:
		return r.OtherName
	case Traits:
		return r.Traits
	case Taxonomy:
		return r.Taxonomy
	case DomesticDistribution:
		return r.DomesticDistribution
	case InternationalDistribution:
		return r.InternationalDistribution
	case RegionalDistribution:
		return r.RegionalDistribution
	case Diseases:
		return r.Diseases
	default:
		return ""
	}
}

// Labeled returns the record as a mapping from field labels to values.
func (r *Record) Labeled() map[string]string {
	res := make(map[string]string, len(fieldLabels))
	for _, f := range Fields() {
		res[f.Label()] = r.Value(f)
	}
	return res
}
