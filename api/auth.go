package api

import (
	"errors"

	"github.com/carelink-org/rpm/authz"
	internalErrs "github.com/carelink-org/rpm/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type AuthzMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthzMiddleware(authorizer authz.RequestAuthorizer, opts AuthzMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			err := authorizer.Authorize(c.Request().Context(), c.Request(), c.Param("clinicId"))
			if err != nil {
				if errors.Is(err, authz.ErrUnauthorized) {
					return internalErrs.NotAuthorized
				}
				return err
			}

			return next(c)
		}
	}
}
