package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"rate":    FormatRate,
	"payback": FormatPayback,
	"inc":     func(i int) int { return i + 1 },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.EstimateSet
		Recommendation Recommendation
		Assumptions    []string
	}{results, AnalyzeEstimates(results), assumptionsFor(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
