package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouteSkipper returns a skipper that matches the given route paths.
func RouteSkipper(routes ...string) middleware.Skipper {
	routesMap := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		routesMap[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := routesMap[ec.Path()]
		return ok
	}
}
