package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/als344572-ai/Rahal-store/internal/i18n"
	"github.com/als344572-ai/Rahal-store/internal/models"
)

const localeCookieMaxAge = 365 * 24 * time.Hour

type LocaleHandler struct{}

func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

type LocaleRequest struct {
	Locale string `json:"locale" binding:"required"`
}

type LocaleResponse struct {
	Locale models.Locale `json:"locale"`
	Dir    string        `json:"dir"`
}

func newLocaleResponse(l models.Locale) LocaleResponse {
	return LocaleResponse{Locale: l, Dir: l.Dir()}
}

func setLocaleCookie(c *gin.Context, l models.Locale) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.Cookie, string(l), int(localeCookieMaxAge.Seconds()), "/", "", false, false)
	c.Set(ctxLocale, l)
	c.Header("Content-Language", string(l))
}

// GET /v1/locale
func (h *LocaleHandler) GetLocale(c *gin.Context) {
	c.JSON(http.StatusOK, newLocaleResponse(LocaleFrom(c)))
}

// PUT /v1/locale
func (h *LocaleHandler) SetLocale(c *gin.Context) {
	var req LocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithNotice(c, http.StatusBadRequest, i18n.InvalidLocale)
		return
	}
	l, ok := models.ParseLocale(req.Locale)
	if !ok {
		abortWithNotice(c, http.StatusBadRequest, i18n.InvalidLocale)
		return
	}
	setLocaleCookie(c, l)
	c.JSON(http.StatusOK, newLocaleResponse(l))
}

// POST /v1/locale/toggle
func (h *LocaleHandler) ToggleLocale(c *gin.Context) {
	l := LocaleFrom(c).Other()
	setLocaleCookie(c, l)
	c.JSON(http.StatusOK, newLocaleResponse(l))
}

// GET /v1/translations
func (h *LocaleHandler) Translations(c *gin.Context) {
	l := LocaleFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"locale":   l,
		"dir":      l.Dir(),
		"messages": i18n.Table(l),
	})
}

// Health answers liveness checks.
func Health(backend bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
	}
}
