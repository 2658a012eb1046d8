package output

import (
	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions of the default tables.
// Detailed outputs fall back to it when a result set carries none.
var DefaultAssumptions = calculation.NewEstimationEngine().Assumptions()

func assumptionsFor(results *domain.EstimateSet) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
