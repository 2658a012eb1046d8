package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
	"gopkg.in/yaml.v3"
)

// JSONFormatter emits the full estimate set as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter emits the full estimate set as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	return yaml.Marshal(results)
}

// ParamsFormatter emits the outbound flat parameter set of each estimate as
// a query string. With more than one scenario each line is preceded by a
// "# name" comment.
type ParamsFormatter struct{}

func (p ParamsFormatter) Name() string { return "params" }

func (p ParamsFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range results.Reports {
		if len(results.Reports) > 1 {
			fmt.Fprintf(&buf, "# %s\n", r.Name)
		}
		buf.WriteString(params.NewLeadParams(r).Values().Encode())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
