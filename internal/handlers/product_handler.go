package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/als344572-ai/Rahal-store/internal/catalog"
	"github.com/als344572-ai/Rahal-store/internal/i18n"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
)

//go:generate mockgen -destination=../mocks/mock_stores.go -package=mocks . ProductStore,BookingLister,MediaStore

// ProductStore reads and writes products in the hosted store.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (models.ProductDetail, error)
	Create(ctx context.Context, np models.NewProduct) (models.ProductDetail, error)
	Update(ctx context.Context, id string, u models.ProductUpdate) (models.ProductDetail, error)
	SoftDelete(ctx context.Context, id string) error
}

type ProductHandler struct {
	loader   *catalog.Loader
	details  *catalog.Details
	maxPrice decimal.Decimal
}

func NewProductHandler(loader *catalog.Loader, details *catalog.Details, maxPrice decimal.Decimal) *ProductHandler {
	return &ProductHandler{loader: loader, details: details, maxPrice: maxPrice}
}

// ProductView is a product with its display fields resolved for one locale.
type ProductView struct {
	models.Product
	Name          string   `json:"name"`
	CategoryLabel string   `json:"category_label"`
	Images        []string `json:"images"`
}

func newProductView(p models.Product, l models.Locale) ProductView {
	return ProductView{
		Product:       p,
		Name:          p.Name(l),
		CategoryLabel: catalog.CategoryLabel(p.Category, l),
		Images:        p.Images(),
	}
}

type ProductListResponse struct {
	Locale     models.Locale `json:"locale"`
	Dir        string        `json:"dir"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
	Products   []ProductView `json:"products"`
}

type ProductDetailResponse struct {
	ProductView
	Description  string                `json:"description"`
	Sizes        []models.SizeVariant  `json:"sizes"`
	Colors       []models.ColorVariant `json:"colors"`
	SelectedSize *models.SizeVariant   `json:"selected_size,omitempty"`
	LineTotal    string                `json:"line_total"`
	Locale       models.Locale         `json:"locale"`
	Dir          string                `json:"dir"`
}

type CategoryView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	l := LocaleFrom(c)
	q, verr := h.buildQuery(c, l)
	if verr != nil {
		abortWithValidation(c, verr)
		return
	}
	page, pageSize := getPaginationParams(c)

	products := catalog.Filter(h.loader.Load(c.Request.Context()), q)
	start, end := paginate(len(products), page, pageSize)

	views := make([]ProductView, 0, end-start)
	for _, p := range products[start:end] {
		views = append(views, newProductView(p, l))
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Locale:     l,
		Dir:        l.Dir(),
		Page:       page,
		PageSize:   pageSize,
		Total:      len(products),
		TotalPages: (len(products) + pageSize - 1) / pageSize,
		Products:   views,
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	l := LocaleFrom(c)
	detail, err := h.details.Find(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		abortWithNotice(c, http.StatusNotFound, i18n.ProductNotFound)
		return
	}
	if err != nil {
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}

	size, ok := detail.Size(c.Query("size"))
	if !ok {
		abortWithNotice(c, http.StatusBadRequest, i18n.UnknownSize)
		return
	}
	total, err := pricing.LineTotal(detail.Product, size)
	if err != nil {
		abortWithNotice(c, http.StatusUnprocessableEntity, i18n.NegativePrice)
		return
	}

	c.JSON(http.StatusOK, ProductDetailResponse{
		ProductView:  newProductView(detail.Product, l),
		Description:  detail.Description(l),
		Sizes:        detail.Sizes,
		Colors:       detail.Colors,
		SelectedSize: size,
		LineTotal:    pricing.Format(total),
		Locale:       l,
		Dir:          l.Dir(),
	})
}

// GET /v1/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	l := LocaleFrom(c)
	categories := catalog.Categories()

	views := make([]CategoryView, 0, len(categories)+1)
	views = append(views, CategoryView{ID: catalog.CategoryAll, Label: i18n.T(l, "allProducts")})
	for _, cat := range categories {
		views = append(views, CategoryView{ID: cat.ID, Label: cat.Label(l)})
	}
	c.JSON(http.StatusOK, gin.H{"locale": l, "categories": views})
}

// buildQuery reads the filter from the query string.
func (h *ProductHandler) buildQuery(c *gin.Context, l models.Locale) (catalog.Query, *ValidationError) {
	q := catalog.DefaultQuery(l)
	if h.maxPrice.IsPositive() {
		q.MaxPrice = h.maxPrice
	}
	q.Text = c.Query("q")
	q.Category = c.DefaultQuery("category", catalog.CategoryAll)

	var err *ValidationError
	if q.MinPrice, err = priceParam(c, "min_price", q.MinPrice); err != nil {
		return q, err
	}
	if q.MaxPrice, err = priceParam(c, "max_price", q.MaxPrice); err != nil {
		return q, err
	}

	switch t := models.ListingType(c.DefaultQuery("type", string(catalog.ListingAll))); t {
	case catalog.ListingAll, models.ListingRental, models.ListingSales:
		q.ListingType = t
	default:
		return q, &ValidationError{Field: "type", Message: "type must be all, rental or sales"}
	}
	return q, nil
}

func priceParam(c *gin.Context, name string, fallback decimal.Decimal) (decimal.Decimal, *ValidationError) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback, &ValidationError{Field: name, Message: name + " must be a number"}
	}
	return d, nil
}
