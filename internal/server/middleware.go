package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/harborline/seaquote/internal/auth/domain"
)

const contextUserKey = "current_user"

func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.Authenticate(c.Request.Context(), sid)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func (s *Server) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		AbortWithError(c, ErrForbidden)
	}
}

// QuoteRateLimit throttles the free-text endpoint per user.
func (s *Server) QuoteRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		caller := c.ClientIP()
		if user != nil {
			caller = user.Username
		}

		allowed, retryAfter := s.quoteLimiter.Allow(c.Request.Context(), caller)
		if !allowed {
			if retryAfter > 0 {
				c.Header("Retry-After", retryAfter.String())
			}
			AbortWithError(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
