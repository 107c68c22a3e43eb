package http

import (
	"net/http"
	"strings"

	"tracking/internal/auth"
	"tracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the Authorization bearer token into a
// Principal and stores it on the request context. Requests without a valid
// token are rejected with 401 before any handler runs.
func PrincipalMiddleware(verifier *auth.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom returns the Principal stored by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (kernel.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(kernel.Principal)
	return principal, ok
}
