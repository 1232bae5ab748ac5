package model

// PeriodType identifies how the observation window is measured.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// periodFrequencies maps each period type to the number of periods
// in a calendar year.
var periodFrequencies = map[PeriodType]float64{
	PeriodDaily:   365,
	PeriodWeekly:  52,
	PeriodMonthly: 12,
	PeriodYearly:  1,
}

// Valid reports whether the period type is one of the supported values.
func (p PeriodType) Valid() bool {
	_, ok := periodFrequencies[p]
	return ok
}

// Frequency returns the number of periods per calendar year for the
// period type. Unknown period types return 0.
func (p PeriodType) Frequency() float64 {
	return periodFrequencies[p]
}

// InputState holds the three user-entered calculator inputs. It is the
// only mutable state in the system and is passed explicitly to the
// validator and the calculation service.
type InputState struct {
	TotalReturnPercent float64    `json:"totalReturnPercent"`
	Periods            float64    `json:"periods"`
	PeriodType         PeriodType `json:"periodType"`
}

// DefaultInputState returns the inputs a fresh session starts with.
func DefaultInputState() InputState {
	return InputState{
		TotalReturnPercent: 15,
		Periods:            12,
		PeriodType:         PeriodMonthly,
	}
}

// CalculationResult contains the derived rates for a set of inputs.
// When the total return is at or below -100% both formulas are
// mathematically undefined; the numeric fields then carry NaN and both
// validity flags are false. Consumers must check the flags before using
// the numbers.
type CalculationResult struct {
	AnnualizedReturn     float64
	LogReturn            float64
	AnnualizedLogReturn  float64
	IsValidAnnualized    bool
	IsValidLog           bool
	FrequencyDescription string
}

// ChartEntry is one bar of the comparison chart.
type ChartEntry struct {
	Label        string  `json:"label"`
	ShortLabel   string  `json:"shortLabel"`
	ValuePercent float64 `json:"valuePercent"`
	Description  string  `json:"description"`
}
