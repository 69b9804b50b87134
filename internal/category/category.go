// v1
// internal/category/category.go
// Package category holds the ordinal performance tier shared by the
// EN16798 calculator and the aggregation engine, together with the single
// authoritative mapping between continuous scores and tiers.
package category

// Category is the EN16798-style ordinal tier. I is best; IV is the
// default floor, not a passing tier.
type Category int

const (
	CategoryI   Category = 1
	CategoryII  Category = 2
	CategoryIII Category = 3
	CategoryIV  Category = 4
)

// All lists the tiers best-first.
var All = []Category{CategoryI, CategoryII, CategoryIII, CategoryIV}

// Evaluated lists the directly-evaluated tiers; IV is excluded because it
// has no pass bar of its own.
var Evaluated = []Category{CategoryI, CategoryII, CategoryIII}

func (c Category) String() string {
	switch c {
	case CategoryI:
		return "I"
	case CategoryII:
		return "II"
	case CategoryIII:
		return "III"
	case CategoryIV:
		return "IV"
	}
	return "unknown"
}

// Numeric returns the fixed I=1..IV=4 mapping; lower is better.
func (c Category) Numeric() int { return int(c) }

// FromNumeric clamps n into a valid Category.
func FromNumeric(n int) Category {
	if n < int(CategoryI) {
		return CategoryI
	}
	if n > int(CategoryIV) {
		return CategoryIV
	}
	return Category(n)
}

// Worst returns the numerically worst of a and b.
func Worst(a, b Category) Category {
	if b > a {
		return b
	}
	return a
}

// Thresholds are the descending score cut-offs between tiers, default
// 95/90/85 on a 0-100 scale.
type Thresholds struct {
	Cat1 float64 `yaml:"cat1" json:"cat1"`
	Cat2 float64 `yaml:"cat2" json:"cat2"`
	Cat3 float64 `yaml:"cat3" json:"cat3"`
}

// DefaultThresholds is the conventional 95/90/85 split.
var DefaultThresholds = Thresholds{Cat1: 95, Cat2: 90, Cat3: 85}

// Valid requires strictly descending, in-range cut-offs.
func (t Thresholds) Valid() bool {
	return t.Cat1 > t.Cat2 && t.Cat2 > t.Cat3 &&
		t.Cat1 <= 100 && t.Cat3 >= 0
}

// ScoreToCategory maps a continuous 0-100 score to a tier by the
// descending cut-offs. Every component presenting a score as a category
// must route through here.
func ScoreToCategory(score float64, t Thresholds) Category {
	switch {
	case score >= t.Cat1:
		return CategoryI
	case score >= t.Cat2:
		return CategoryII
	case score >= t.Cat3:
		return CategoryIII
	default:
		return CategoryIV
	}
}
