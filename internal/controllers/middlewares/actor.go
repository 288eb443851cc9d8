package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/fsdevblog/bulkmeta/internal/tokens"
	"github.com/gin-gonic/gin"
)

const (
	ActorKey        = "actor"
	ActorCookieName = "bulkmeta_token"
)

var ErrUnauthorized = errors.New("unauthorized")

// ActorMiddleware аутентифицирует пользователя админки по JWT из заголовка Authorization
// (схема Bearer) либо из куки ActorCookieName. Без валидного токена запрос прерывается с 401.
func ActorMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request)
		if raw == "" {
			if cookie, err := c.Request.Cookie(ActorCookieName); err == nil {
				raw = cookie.Value
			}
		}
		if raw == "" {
			abortUnauthorized(c, ErrUnauthorized)
			return
		}

		claims, err := tokens.ValidateActorJWT(raw, jwtSecret)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		role, ok := services.ParseRole(claims.Role)
		if !ok {
			abortUnauthorized(c, fmt.Errorf("unknown role `%s`: %w", claims.Role, ErrUnauthorized))
			return
		}

		c.Set(ActorKey, services.Actor{ID: claims.UserID, Role: role})
		c.Next()
	}
}

// ActorFromContext возвращает пользователя, установленного ActorMiddleware.
func ActorFromContext(c *gin.Context) (services.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return services.Actor{}, false
	}
	actor, ok := v.(services.Actor)
	return actor, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < len("Bearer ") || !strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

func abortUnauthorized(c *gin.Context, err error) {
	_ = c.Error(fmt.Errorf("actor middleware: %w", err))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
}
