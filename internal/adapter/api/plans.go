package api

import (
	"bytes"
	"errors"
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/app/planner"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"time"
)

func (s *Server) MountPlans() {
	s.handler.POST("/plans", s.CreatePlan)
	s.handler.POST("/plans/compare", s.ComparePlans)
	s.handler.POST("/plans/summary.svg", s.PlanSummary)
	s.handler.GET("/plans/options", s.PlanOptions)
}

type ProfileRequest struct {
	Age           int     `json:"age" validate:"required,gt=0"`
	Sex           string  `json:"sex" validate:"required"`
	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" validate:"required"`
	Goal          string  `json:"goal" validate:"required"`
}

func (r ProfileRequest) Profile() (nutrition.BiometricProfile, error) {
	sex, sexErr := nutrition.ParseSex(r.Sex)
	level, levelErr := nutrition.ParseActivityLevel(r.ActivityLevel)
	goal, goalErr := nutrition.ParseGoal(r.Goal)
	if err := errors.Join(sexErr, levelErr, goalErr); err != nil {
		return nutrition.BiometricProfile{}, err
	}
	return nutrition.NewBiometricProfile(r.Age, sex, r.WeightKg, r.HeightCm, level, goal)
}

type Macros struct {
	ProteinGrams float64 `json:"protein_grams"`
	FatGrams     float64 `json:"fat_grams"`
	CarbGrams    float64 `json:"carb_grams"`
}

type PlanResponse struct {
	PlanID        string                     `json:"plan_id"`
	Profile       nutrition.BiometricProfile `json:"profile"`
	BMR           float64                    `json:"bmr"`
	DailyCalories float64                    `json:"daily_calories"`
	Macros        Macros                     `json:"macros"`
	CreatedAt     time.Time                  `json:"created_at"`
}

func planResponse(p *nutrition.Plan) PlanResponse {
	return PlanResponse{
		PlanID:        p.PlanID,
		Profile:       p.Profile,
		BMR:           p.BMR,
		DailyCalories: float64(p.Calories),
		Macros: Macros{
			ProteinGrams: p.Macros.ProteinGrams,
			FatGrams:     p.Macros.FatGrams,
			CarbGrams:    p.Macros.CarbGrams,
		},
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) calculate(c echo.Context) (*nutrition.Plan, error) {
	var req ProfileRequest
	if err := s.bind(c, &req); err != nil {
		return nil, JsonError(c, http.StatusBadRequest, err)
	}

	profile, err := req.Profile()
	if err != nil {
		return nil, PlanError(c, err)
	}

	client := clientOf(c)
	s.logger.InfoContext(c.Request().Context(), "plan requested",
		"browser", client.Name,
		"os", client.OS,
		"bot", client.Bot,
	)

	plan, err := s.plannerService.Calculate(c.Request().Context(), profile)
	if err != nil {
		return nil, PlanError(c, err)
	}
	return plan, nil
}

func (s *Server) CreatePlan(c echo.Context) error {
	plan, err := s.calculate(c)
	if plan == nil {
		return err
	}
	return c.JSON(http.StatusCreated, planResponse(plan))
}

func (s *Server) PlanSummary(c echo.Context) error {
	plan, err := s.calculate(c)
	if plan == nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, plan, s.svgOptions); err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

type ComparePlansRequest struct {
	Base      ProfileRequest `json:"base"`
	Candidate ProfileRequest `json:"candidate"`
}

type ComparePlansResponse struct {
	Base      PlanResponse     `json:"base"`
	Candidate PlanResponse     `json:"candidate"`
	Changes   []planner.Change `json:"changes"`
}

func (s *Server) ComparePlans(c echo.Context) error {
	var req ComparePlansRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	base, err := req.Base.Profile()
	if err != nil {
		return PlanError(c, err)
	}
	candidate, err := req.Candidate.Profile()
	if err != nil {
		return PlanError(c, err)
	}

	cmp, err := s.plannerService.Compare(c.Request().Context(), base, candidate)
	if err != nil {
		return PlanError(c, err)
	}

	return c.JSON(http.StatusOK, ComparePlansResponse{
		Base:      planResponse(cmp.Base),
		Candidate: planResponse(cmp.Candidate),
		Changes:   lo.Ternary(cmp.Changes == nil, []planner.Change{}, cmp.Changes),
	})
}

type ActivityLevelOption struct {
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type GoalOption struct {
	Name  string               `json:"name"`
	Ratio nutrition.MacroRatio `json:"ratio"`
}

type PlanOptionsResponse struct {
	Sexes          []string              `json:"sexes"`
	ActivityLevels []ActivityLevelOption `json:"activity_levels"`
	Goals          []GoalOption          `json:"goals"`
}

func (s *Server) PlanOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, PlanOptionsResponse{
		Sexes: lo.Map(nutrition.Sexes(), func(sex nutrition.Sex, _ int) string {
			return sex.String()
		}),
		ActivityLevels: lo.Map(nutrition.ActivityLevels(), func(level nutrition.ActivityLevel, _ int) ActivityLevelOption {
			multiplier, _ := nutrition.ActivityMultiplier(level)
			return ActivityLevelOption{
				Name:       level.String(),
				Label:      level.Label(),
				Multiplier: multiplier,
			}
		}),
		Goals: lo.Map(nutrition.Goals(), func(goal nutrition.Goal, _ int) GoalOption {
			ratio, _ := nutrition.RatioFor(goal)
			return GoalOption{Name: goal.String(), Ratio: ratio}
		}),
	})
}
