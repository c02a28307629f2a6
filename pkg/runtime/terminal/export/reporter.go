package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/heightweight/pkg/models/api"
	"github.com/de-tools/heightweight/pkg/models/domain"
)

type TableConfig struct {
	IndexWidth  int
	HeightWidth int
	WeightWidth int
	BMIWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IndexWidth:  5,
		HeightWidth: 12,
		WeightWidth: 12,
		BMIWidth:    8,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(index, height, weight, bmi string) string {
			return fmt.Sprintf("| %*s | %*s | %*s | %*s |",
				c.config.IndexWidth, index,
				c.config.HeightWidth, height,
				c.config.WeightWidth, weight,
				c.config.BMIWidth, bmi)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.IndexWidth+2),
				strings.Repeat("-", c.config.HeightWidth+2),
				strings.Repeat("-", c.config.WeightWidth+2),
				strings.Repeat("-", c.config.BMIWidth+2))
		},
		"itoa": func(i int) string { return fmt.Sprintf("%d", i+1) },
		"axis": func(d api.AxisDomain) string {
			return fmt.Sprintf("[%.2f, %.2f]", d.Min, d.Max)
		},
	}
}

const sampleTemplate = `
Sample {{.RunID}} ({{len .Observations}} observations)

{{separator}}
{{formatRow "#" "Height" "Weight" "BMI"}}
{{separator}}
{{range $i, $o := .Observations}}{{formatRow (itoa $i) $o.HeightFormatted $o.WeightFormatted $o.BMIFormatted}}
{{end}}{{separator}}
`

const regressionTemplate = `
Linear Regression Results ({{len .Observations}} observations)

Slope (m):     {{.Regression.SlopeFormatted}}
Intercept (b): {{.Regression.InterceptFormatted}}
Equation:      {{.Regression.Equation}}
{{if not .Regression.Fitted}}Status:        not fitted{{with .Regression.Error}} ({{.}}){{end}}
{{end}}
Height axis:   {{axis .DomainX}}
Weight axis:   {{axis .DomainY}}
`

const populationsTemplate = `
{{range .}}{{.Name}}: height N({{printf "%.2f" .Height.Mean}}, {{printf "%.2f" .Height.StdDev}}) cm, weight N({{printf "%.2f" .Weight.Mean}}, {{printf "%.2f" .Weight.StdDev}}) kg
{{end}}`

func (c *Reporter) execute(name, text string, data interface{}) error {
	t, err := template.New(name).Funcs(c.funcMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

// HandleSample prints every observation as a table row.
func (c *Reporter) HandleSample(snap api.Snapshot) error {
	return c.execute("sample", sampleTemplate, snap)
}

func (c *Reporter) HandleRegression(snap api.Snapshot) error {
	return c.execute("regression", regressionTemplate, snap)
}

func (c *Reporter) HandlePopulations(populations []domain.Population) error {
	return c.execute("populations", populationsTemplate, populations)
}
