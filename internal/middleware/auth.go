package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RiegL/ostia-visitas-report/internal/handler"
	"github.com/RiegL/ostia-visitas-report/internal/model"
	authsvc "github.com/RiegL/ostia-visitas-report/internal/service/auth"
	pkgauth "github.com/RiegL/ostia-visitas-report/pkg/auth"
)

const contextSessionKey = "session"

type AuthMiddleware struct {
	authService authsvc.AuthService
	tokens      pkgauth.TokenService
}

func NewAuthMiddleware(authService authsvc.AuthService, tokens pkgauth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		tokens:      tokens,
	}
}

// Authenticate validates the bearer token and loads the persisted session
// into the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid token"))
			return
		}

		sess, err := m.authService.CurrentSession(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to load session"))
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("session expired"))
			return
		}

		c.Set(contextSessionKey, sess)
		c.Next()
	}
}

// RequirePermission gates privileged routes. The persisted session is a
// hint only: the minister is re-read from the database here and the session
// invalidated if the account is gone or deactivated.
func (m *AuthMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
			return
		}

		sess, err := m.authService.Revalidate(c.Request.Context(), sess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("session no longer valid"))
			return
		}

		if !sess.HasPermission(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, handler.NewErrorResponse("permission denied"))
			return
		}

		c.Set(contextSessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the authenticated session, or nil when the
// request is anonymous.
func SessionFromContext(c *gin.Context) *model.Session {
	if v, exists := c.Get(contextSessionKey); exists {
		if sess, ok := v.(*model.Session); ok {
			return sess
		}
	}
	return nil
}
