package calculation

import (
	"context"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// CalculationEngine runs the ROI and NPV calculators for one input set.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Analyze runs both calculators. The only error it returns is ctx.Err().
func (ce *CalculationEngine) Analyze(ctx context.Context, in domain.InputSet) (*domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	roi := CalculateROI(in)
	npv := CalculateNPV(in)

	ce.Logger.Debugf("analysis: investment=%s net=%s roi=%s%% npv=%s years=%d",
		roi.TotalInvestment.StringFixed(2), roi.AnnualNetIncome.StringFixed(2),
		roi.ROIPercent.StringFixed(2), npv.NetPresentValue.StringFixed(2), npv.HorizonYears)
	if roi.Payback.Never {
		ce.Logger.Debugf("analysis: property never pays back (net income %s)", roi.AnnualNetIncome.StringFixed(2))
	}

	return &domain.Analysis{Inputs: in, ROI: roi, NPV: npv}, nil
}
