package metrics

import (
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nutrition"

// Collector turns plan events into Prometheus series.
type Collector struct {
	calculated *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	calories   prometheus.Histogram
}

func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		calculated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_calculated_total",
			Help:      "Number of calculated plans by goal and activity level.",
		}, []string{"goal", "activity_level"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_rejected_total",
			Help:      "Number of rejected profiles by reason.",
		}, []string{"reason"}),
		calories: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "daily_calories",
			Help:      "Distribution of estimated daily calorie targets.",
			Buckets:   prometheus.LinearBuckets(1000, 500, 8),
		}),
	}

	for _, col := range []prometheus.Collector{c.calculated, c.rejected, c.calories} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) HandlePlanCalculated(event domain.Event) error {
	e, ok := event.(nutrition.PlanCalculated)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, nutrition.EventPlanCalculated)
	}
	c.calculated.WithLabelValues(e.Goal.String(), e.ActivityLevel.String()).Inc()
	c.calories.Observe(float64(e.Calories))
	return nil
}

func (c *Collector) HandlePlanRejected(event domain.Event) error {
	e, ok := event.(nutrition.PlanRejected)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, nutrition.EventPlanRejected)
	}
	c.rejected.WithLabelValues(e.Reason).Inc()
	return nil
}
