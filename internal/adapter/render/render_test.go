package render_test

import (
	"bytes"
	"context"
	"encoding/xml"
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newPlan(t *testing.T) *nutrition.Plan {
	t.Helper()
	plan, err := nutrition.NewPlan("plan-1", nutrition.BiometricProfile{
		Age:           25,
		Sex:           nutrition.Male,
		WeightKg:      70,
		HeightCm:      175.5,
		ActivityLevel: nutrition.ModeratelyActive,
		Goal:          nutrition.GoalMaintain,
	})
	require.NoError(t, err)
	return plan
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(context.Background(), &buf, newPlan(t), render.TextOptions{}))

	out := buf.String()
	for _, want := range []string{
		"User Information:\n",
		"Gender: Male\n",
		"Age: 25 years\n",
		"Weight: 70 kg\n",
		"Height: 175.5 cm\n",
		"Activity Level: Moderately active\n",
		"Your estimated daily calorie requirement is: ",
		"Macronutrient Distribution:\n",
		"Protein: ",
		"Fat: ",
		"Carbohydrates: ",
	} {
		require.Contains(t, out, want)
	}
}

func TestText_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := render.Text(ctx, &buf, newPlan(t), render.TextOptions{LineDelay: time.Hour})
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, buf.String(), "Macronutrient Distribution:")
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, newPlan(t), render.DefaultSVGOptions()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<svg "))
	require.Contains(t, out, `fill="lightgray"`)
	require.Contains(t, out, `font-family="Arial"`)
	require.Contains(t, out, ">Macronutrient Distribution:</text>")
	require.Equal(t, 12, strings.Count(out, "<text "))
	require.Equal(t, 3, strings.Count(out, `font-weight="bold"`))

	var doc struct {
		XMLName xml.Name `xml:"svg"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
}

func TestSVG_EscapesOptions(t *testing.T) {
	opts := render.DefaultSVGOptions()
	opts.FontFamily = `Comic "Sans" <b>`

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, newPlan(t), opts))
	require.NotContains(t, buf.String(), "<b>")
}

func TestSVG_InvalidCanvas(t *testing.T) {
	opts := render.DefaultSVGOptions()
	opts.Width = 0

	var buf bytes.Buffer
	require.Error(t, render.SVG(&buf, newPlan(t), opts))
	require.Zero(t, buf.Len())
}
