package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/als344572-ai/Rahal-store/internal/i18n"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 100
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// ValidationError is a rejected request field. Key names the localized notice.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// abortWithNotice answers with the localized text for key.
func abortWithNotice(c *gin.Context, status int, key string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: i18n.T(LocaleFrom(c), key), Code: key})
}

func abortWithValidation(c *gin.Context, err *ValidationError) {
	key := err.Key
	if key == "" {
		key = i18n.InvalidRequest
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: i18n.T(LocaleFrom(c), key) + ": " + err.Field,
		Code:  key,
	})
}

// getPaginationParams reads page and page_size, replacing invalid values with defaults.
func getPaginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// paginate returns the bounds of page within n items.
func paginate(n, page, pageSize int) (start, end int) {
	start = min((page-1)*pageSize, n)
	end = min(start+pageSize, n)
	return start, end
}
