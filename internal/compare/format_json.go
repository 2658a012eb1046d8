package compare

import (
	"encoding/json"

	"github.com/rgehrsitz/hpgo/internal/params"
)

// JSONFormatter formats comparison results as a JSON document carrying the
// lead-parameter schema version and the engine assumptions behind the numbers.
type JSONFormatter struct {
	Pretty      bool
	Assumptions []string
}

type comparisonDocument struct {
	Schema string `json:"schema"`
	*ComparisonSet
	LowestNetCost string   `json:"lowestNetCost,omitempty"`
	Assumptions   []string `json:"assumptions,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := comparisonDocument{
		Schema:        params.SchemaVersion,
		ComparisonSet: compSet,
		LowestNetCost: lowestNetCost(compSet),
		Assumptions:   jf.Assumptions,
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// lowestNetCost names the cheapest scenario after subsidy; the base wins ties.
func lowestNetCost(compSet *ComparisonSet) string {
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if best == nil || alt.NetCost.LessThan(best.NetCost) {
			best = alt
		}
	}
	if best == nil {
		return ""
	}
	return best.ScenarioName
}
