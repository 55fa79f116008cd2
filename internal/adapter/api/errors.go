package api

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/labstack/echo/v4"
	"net/http"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

// PlanError maps pipeline failures to a response.
func PlanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, nutrition.ErrInvalidProfile),
		errors.Is(err, nutrition.ErrInvalidSex),
		errors.Is(err, nutrition.ErrInvalidActivityLevel),
		errors.Is(err, nutrition.ErrInvalidGoal):
		return JsonError(c, http.StatusBadRequest, err)
	default:
		return JsonError(c, http.StatusInternalServerError, err)
	}
}
