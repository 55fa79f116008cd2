package api

import (
	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"
)

const KeyClient = "client"

// ClientInfo parses the User-Agent header once per request.
func ClientInfo() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(KeyClient, useragent.Parse(c.Request().UserAgent()))
			return next(c)
		}
	}
}

func clientOf(c echo.Context) useragent.UserAgent {
	ua, _ := c.Get(KeyClient).(useragent.UserAgent)
	return ua
}
