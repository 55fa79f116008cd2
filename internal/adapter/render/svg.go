package render

import (
	"bytes"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"html"
	"io"
	"text/template"
)

type SVGOptions struct {
	Width      int
	Height     int
	Background string
	FontFamily string
	FontSize   int
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      600,
		Height:     420,
		Background: "lightgray",
		FontFamily: "Arial",
		FontSize:   14,
	}
}

const (
	svgMarginLeft = 100
	svgTop        = 40
	svgLineStep   = 30
)

type svgLine struct {
	X, Y int
	Bold bool
	Text string
}

var svgTemplate = template.Must(template.New("summary").Funcs(template.FuncMap{
	"esc": html.EscapeString,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Opts.Width}}" height="{{.Opts.Height}}" viewBox="0 0 {{.Opts.Width}} {{.Opts.Height}}">
<title>Daily Calorie Calculator Results</title>
<rect width="100%" height="100%" fill="{{esc .Opts.Background}}"/>
<g font-family="{{esc .Opts.FontFamily}}" font-size="{{.Opts.FontSize}}" fill="black">
{{- range .Lines}}
<text x="{{.X}}" y="{{.Y}}"{{if .Bold}} font-weight="bold"{{end}}>{{esc .Text}}</text>
{{- end}}
</g>
</svg>
`))

// SVG draws the plan summary as a labeled canvas.
func SVG(w io.Writer, plan *nutrition.Plan, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	p := plan.Profile
	entries := []struct {
		bold bool
		text string
	}{
		{true, "User Information:"},
		{false, "Gender: " + capitalize(p.Sex.String())},
		{false, fmt.Sprintf("Age: %d years", p.Age)},
		{false, "Weight: " + formatNumber(p.WeightKg) + " kg"},
		{false, "Height: " + formatNumber(p.HeightCm) + " cm"},
		{false, "Activity Level: " + p.ActivityLevel.Label()},
		{true, "Your estimated daily calorie requirement is:"},
		{false, plan.Calories.String() + " calories"},
		{true, "Macronutrient Distribution:"},
		{false, "Protein: " + formatGrams(plan.Macros.ProteinGrams) + " grams"},
		{false, "Fat: " + formatGrams(plan.Macros.FatGrams) + " grams"},
		{false, "Carbohydrates: " + formatGrams(plan.Macros.CarbGrams) + " grams"},
	}

	lines := make([]svgLine, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, svgLine{
			X:    svgMarginLeft,
			Y:    svgTop + i*svgLineStep,
			Bold: e.bold,
			Text: e.text,
		})
	}

	var buf bytes.Buffer
	err := svgTemplate.Execute(&buf, struct {
		Opts  SVGOptions
		Lines []svgLine
	}{Opts: opts, Lines: lines})
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
