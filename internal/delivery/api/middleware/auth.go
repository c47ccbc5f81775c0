package middleware

import (
	"slices"
	"strings"

	"drinkpos/internal/delivery/api/response"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// accessTokenQueryParam carries the token for EventSource clients, which cannot set headers.
const accessTokenQueryParam = "access_token"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserUC       usecase.UserUsecase
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
	}
}

// Authenticate validates the access token and re-checks the account, so a locked or deleted
// user is rejected even while their token is still valid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userUC.Authorize(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole checks the authenticated user's role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
			}

			if !slices.Contains(roles, user.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require "+joinRoles(roles)+" role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		token := c.QueryParam(accessTokenQueryParam)

		return token, token != ""
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

func joinRoles(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	return strings.Join(names, "/")
}
