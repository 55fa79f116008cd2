package planner

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/google/uuid"
	"github.com/r3labs/diff"
	"github.com/samber/lo"
	"log/slog"
)

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

type Service struct {
	logger *slog.Logger
	bus    MessageBus
	newID  func() string
}

func New(logger *slog.Logger, bus MessageBus) *Service {
	return &Service{
		logger: logger,
		bus:    bus,
		newID:  uuid.NewString,
	}
}

func (s *Service) Calculate(ctx context.Context, profile nutrition.BiometricProfile) (*nutrition.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan, err := nutrition.NewPlan(s.newID(), profile)
	if err != nil {
		reason := nutrition.RejectReason(err)
		s.logger.InfoContext(ctx, "profile rejected", "reason", reason, "error", err)
		s.publish(ctx, nutrition.PlanRejected{
			BaseEvent: domain.NewBaseEvent(nutrition.EventPlanRejected),
			Reason:    reason,
		})
		return nil, err
	}

	s.logger.DebugContext(ctx, "plan calculated",
		"plan_id", plan.PlanID,
		"calories", plan.Calories.String(),
		"goal", profile.Goal.String(),
		"activity_level", profile.ActivityLevel.String(),
	)
	s.publish(ctx, plan.PopEvents()...)
	return plan, nil
}

func (s *Service) publish(ctx context.Context, events ...domain.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishEvents(events...); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish events", "error", err)
	}
}

type snapshot struct {
	BMR          float64 `diff:"bmr"`
	Calories     float64 `diff:"calories"`
	ProteinGrams float64 `diff:"protein_grams"`
	FatGrams     float64 `diff:"fat_grams"`
	CarbGrams    float64 `diff:"carb_grams"`
}

func snapshotOf(p *nutrition.Plan) snapshot {
	return snapshot{
		BMR:          p.BMR,
		Calories:     float64(p.Calories),
		ProteinGrams: p.Macros.ProteinGrams,
		FatGrams:     p.Macros.FatGrams,
		CarbGrams:    p.Macros.CarbGrams,
	}
}

type Change struct {
	Field string  `json:"field"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Delta float64 `json:"delta"`
}

type Comparison struct {
	Base      *nutrition.Plan
	Candidate *nutrition.Plan
	Changes   []Change
}

// Compare calculates plans for both profiles and lists the figures that differ.
func (s *Service) Compare(
	ctx context.Context,
	base nutrition.BiometricProfile,
	candidate nutrition.BiometricProfile,
) (*Comparison, error) {
	basePlan, err := s.Calculate(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("base profile: %w", err)
	}
	candidatePlan, err := s.Calculate(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("candidate profile: %w", err)
	}

	changelog, err := diff.Diff(snapshotOf(basePlan), snapshotOf(candidatePlan))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to compare plans"), err)
	}

	return &Comparison{
		Base:      basePlan,
		Candidate: candidatePlan,
		Changes: lo.Map(changelog, func(c diff.Change, _ int) Change {
			from, _ := c.From.(float64)
			to, _ := c.To.(float64)
			return Change{
				Field: c.Path[len(c.Path)-1],
				From:  from,
				To:    to,
				Delta: nutrition.Round2(to - from),
			}
		}),
	}, nil
}
