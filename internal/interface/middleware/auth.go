package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/policy"
	"github.com/taskhive/taskhive/pkg/helpers"
	"github.com/taskhive/taskhive/pkg/response"
)

// Context keys set by Auth and read by handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
	CtxUsernameKey = "userName"
)

// Auth validates the access token cookie and ensures a live session exists
// in Redis with a matching session id. On success it sets userID, userRole
// and userName in the Gin context; anything missing is a 401.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set(CtxUserRoleKey, data["role"])
		c.Set(CtxUsernameKey, data["username"])
		c.Next()
	}
}

// ActorFrom rebuilds the policy actor from the context values Auth set.
func ActorFrom(c *gin.Context) policy.Actor {
	return policy.Actor{
		ID:   c.GetString(CtxUserIDKey),
		Role: entity.Role(c.GetString(CtxUserRoleKey)),
	}
}
