package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/catalog"
	"github.com/als344572-ai/Rahal-store/internal/i18n"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
	"github.com/als344572-ai/Rahal-store/internal/repository"
)

const (
	maxUploadSize       = 5 << 20
	defaultBookingLimit = 50
	maxBookingLimit     = 200
)

// BookingLister reads confirmed bookings.
type BookingLister interface {
	FindRecent(ctx context.Context, limit int) ([]models.Booking, error)
	Stats(ctx context.Context, today string) (models.BookingStats, error)
}

// MediaStore keeps uploaded product images.
type MediaStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Open(ctx context.Context, id string) (*repository.Media, error)
}

// AdminHandler serves catalog provisioning. Nil stores mean no backend is configured.
type AdminHandler struct {
	products ProductStore
	bookings BookingLister
	media    MediaStore
	details  *catalog.Details
	now      func() time.Time
	log      *zap.Logger
}

func NewAdminHandler(products ProductStore, bookings BookingLister, media MediaStore, details *catalog.Details, log *zap.Logger) *AdminHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminHandler{products: products, bookings: bookings, media: media, details: details, now: time.Now, log: log}
}

type UploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type StatsResponse struct {
	Revenue       string `json:"revenue"`
	Currency      string `json:"currency"`
	TotalBookings int    `json:"total_bookings"`
	ActiveRentals int    `json:"active_rentals"`
}

// POST /v1/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	if h.products == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	var np models.NewProduct
	if err := c.ShouldBindJSON(&np); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: i18n.InvalidRequest})
		return
	}
	if verr := validateProduct(&np); verr != nil {
		abortWithValidation(c, verr)
		return
	}

	detail, err := h.products.Create(c.Request.Context(), np)
	if err != nil {
		h.log.Error("create product failed", zap.String("name", np.NameEN), zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	h.details.Remember(detail)

	h.log.Info("product published",
		zap.String("id", detail.ID),
		zap.String("category", detail.Category),
		zap.String("by", UserFrom(c).Email))

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(LocaleFrom(c), i18n.ProductPublished),
		"product": detail,
	})
}

// PATCH /v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	if h.products == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	id := c.Param("id")
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: i18n.InvalidRequest})
		return
	}
	if verr := validateUpdate(update); verr != nil {
		abortWithValidation(c, verr)
		return
	}

	detail, err := h.products.Update(c.Request.Context(), id, update)
	switch {
	case errors.Is(err, repository.ErrNoChanges):
		abortWithNotice(c, http.StatusBadRequest, i18n.NoChanges)
		return
	case errors.Is(err, repository.ErrNotFound):
		abortWithNotice(c, http.StatusNotFound, i18n.ProductNotFound)
		return
	case err != nil:
		h.log.Error("update product failed", zap.String("id", id), zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	h.details.Remember(detail)

	h.log.Info("product updated", zap.String("id", id), zap.String("by", UserFrom(c).Email))
	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(LocaleFrom(c), i18n.ProductUpdated),
		"product": detail,
	})
}

// DELETE /v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if h.products == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	id := c.Param("id")
	err := h.products.SoftDelete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		abortWithNotice(c, http.StatusNotFound, i18n.ProductNotFound)
		return
	}
	if err != nil {
		h.log.Error("delete product failed", zap.String("id", id), zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	h.details.Forget(id)

	h.log.Info("product deleted", zap.String("id", id), zap.String("by", UserFrom(c).Email))
	c.JSON(http.StatusOK, SuccessResponse{Message: i18n.T(LocaleFrom(c), i18n.ProductDeleted)})
}

// POST /v1/admin/media
func (h *AdminHandler) UploadMedia(c *gin.Context) {
	if h.media == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required", Code: i18n.InvalidRequest})
		return
	}
	if file.Size > maxUploadSize {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "image is larger than 5MB", Code: i18n.InvalidRequest})
		return
	}

	src, err := file.Open()
	if err != nil {
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	defer src.Close()

	// The client's Content-Type is ignored; the bytes decide.
	mtype, err := mimetype.DetectReader(src)
	if err == nil {
		_, err = src.Seek(0, io.SeekStart)
	}
	if err != nil {
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	contentType := mtype.String()
	if !strings.HasPrefix(contentType, "image/") {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "only images can be uploaded", Code: i18n.InvalidRequest})
		return
	}

	id, err := h.media.Upload(c.Request.Context(), file.Filename, contentType, src)
	if err != nil {
		h.log.Error("media upload failed", zap.String("filename", file.Filename), zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{ID: id, URL: "/v1/media/" + id})
}

// GET /v1/admin/bookings
func (h *AdminHandler) ListBookings(c *gin.Context) {
	if h.bookings == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultBookingLimit)))
	if err != nil || limit < 1 || limit > maxBookingLimit {
		limit = defaultBookingLimit
	}

	bookings, err := h.bookings.FindRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("list bookings failed", zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GET /v1/admin/families
func (h *AdminHandler) ListFamilies(c *gin.Context) {
	l := LocaleFrom(c)
	families := make([]CategoryView, 0, len(catalog.AdminFamilies))
	for _, f := range catalog.AdminFamilies {
		families = append(families, CategoryView{ID: f.ID, Label: f.Label(l)})
	}
	c.JSON(http.StatusOK, gin.H{"families": families})
}

// GET /v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	if h.bookings == nil {
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.BackendUnavailable)
		return
	}

	stats, err := h.bookings.Stats(c.Request.Context(), h.now().Format(time.DateOnly))
	if err != nil {
		h.log.Error("booking stats failed", zap.Error(err))
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		Revenue:       pricing.Format(stats.Revenue),
		Currency:      i18n.T(LocaleFrom(c), "currency"),
		TotalBookings: stats.TotalBookings,
		ActiveRentals: stats.ActiveRentals,
	})
}

// validateProduct checks what binding tags cannot express.
func validateProduct(np *models.NewProduct) *ValidationError {
	if np.BasePrice.IsNegative() {
		return &ValidationError{Field: "base_price", Key: i18n.NegativePrice, Message: "price cannot be negative"}
	}
	for _, s := range np.Sizes {
		if s.PriceModifier.IsNegative() {
			return &ValidationError{Field: "sizes.price_modifier", Key: i18n.NegativePrice, Message: "price modifier cannot be negative"}
		}
	}
	switch np.ListingType {
	case "":
		np.ListingType = models.ListingRental
	case models.ListingRental, models.ListingSales:
	default:
		return &ValidationError{Field: "listingType", Message: "listingType must be rental or sales"}
	}
	if np.ImageURL == "" {
		if len(np.Gallery) == 0 || np.Gallery[0] == "" {
			return &ValidationError{Field: "image_url", Key: i18n.ImageRequired, Message: "image_url or gallery is required"}
		}
		np.ImageURL = np.Gallery[0]
	}
	return nil
}

// validateUpdate applies the create rules to the fields being changed.
func validateUpdate(u models.ProductUpdate) *ValidationError {
	if u.BasePrice != nil && u.BasePrice.IsNegative() {
		return &ValidationError{Field: "base_price", Key: i18n.NegativePrice, Message: "price cannot be negative"}
	}
	if u.ListingType != nil && !u.ListingType.Valid() {
		return &ValidationError{Field: "listingType", Message: "listingType must be rental or sales"}
	}
	return nil
}

// MediaHandler streams stored images.
type MediaHandler struct {
	media MediaStore
}

func NewMediaHandler(media MediaStore) *MediaHandler {
	return &MediaHandler{media: media}
}

// GET /v1/media/:id
func (h *MediaHandler) ServeMedia(c *gin.Context) {
	if h.media == nil {
		abortWithNotice(c, http.StatusNotFound, i18n.MediaNotFound)
		return
	}

	m, err := h.media.Open(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		abortWithNotice(c, http.StatusNotFound, i18n.MediaNotFound)
		return
	}
	if err != nil {
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	defer m.Close()

	c.DataFromReader(http.StatusOK, m.Length, m.ContentType, m, map[string]string{
		"Cache-Control": "public, max-age=86400",
	})
}
