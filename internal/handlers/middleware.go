package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/cart"
	"github.com/als344572-ai/Rahal-store/internal/i18n"
	"github.com/als344572-ai/Rahal-store/internal/models"
)

const (
	ctxLocale      = "locale"
	ctxUser        = "user"
	ctxCartSession = "cartSession"

	// Set by the identity layer in front of this service.
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// RequestLogger logs one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns panics into a 500 and logs them.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
	})
}

// Locale resolves the request locale from the query, cookie and Accept-Language.
func Locale(def models.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(i18n.Cookie)
		l := i18n.Resolve(c.Query("locale"), cookie, c.GetHeader("Accept-Language"), def)
		c.Set(ctxLocale, l)
		c.Header("Content-Language", string(l))
		c.Next()
	}
}

// LocaleFrom returns the locale resolved for the request.
func LocaleFrom(c *gin.Context) models.Locale {
	if v, ok := c.Get(ctxLocale); ok {
		if l, ok := v.(models.Locale); ok {
			return l
		}
	}
	return models.DefaultLocale
}

// CurrentUser reads the caller from the identity headers. Requests without
// an email are anonymous.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email != "" {
			role := models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
			if role == "" {
				role = models.RoleCustomer
			}
			c.Set(ctxUser, &models.User{Email: email, Role: role})
		}
		c.Next()
	}
}

// UserFrom returns the caller, or nil for anonymous requests.
func UserFrom(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !UserFrom(c).IsAdmin() {
			abortWithNotice(c, http.StatusForbidden, i18n.AdminOnly)
			return
		}
		c.Next()
	}
}

// CartSession makes sure the request carries a cart session cookie and
// pushes its expiry forward on every request.
func CartSession(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cart.SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = cart.NewSessionID()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cart.SessionCookie, id, int(ttl.Seconds()), "/", "", false, true)
		c.Set(ctxCartSession, id)
		c.Next()
	}
}

func cartSessionFrom(c *gin.Context) string {
	return c.GetString(ctxCartSession)
}
