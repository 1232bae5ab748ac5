package validation

// Input bounds for the calculator form.
const (
	MinTotalReturnPercent = -99.99
	MaxTotalReturnPercent = 10000
	MaxPeriods            = 1000
)

// User-facing messages, kept verbatim from the interactive form.
const (
	MsgTotalReturnRange = "Total Return must be between -99.99% and 10,000%"
	MsgPeriodsRange     = "Number of periods must be between 1 and 1,000"
	MsgCompleteLoss     = "Total Return cannot be -100% or lower (complete loss)"
)

// ValidateInputs checks the calculator inputs and returns the user-facing
// error messages in evaluation order. An empty slice means the inputs are
// usable. Every check runs independently, so messages can co-occur.
//
// The range check and the complete-loss check overlap for total returns
// between -100 and -99.99: both fire and both messages are returned. The
// original form surfaces both simultaneously, so the duplication is kept
// as two separate rules rather than merged.
func ValidateInputs(totalReturnPercent, periods float64) []string {
	var errs []string

	if totalReturnPercent < MinTotalReturnPercent || totalReturnPercent > MaxTotalReturnPercent {
		errs = append(errs, MsgTotalReturnRange)
	}

	if periods <= 0 || periods > MaxPeriods {
		errs = append(errs, MsgPeriodsRange)
	}

	if totalReturnPercent <= -100 {
		errs = append(errs, MsgCompleteLoss)
	}

	return errs
}
