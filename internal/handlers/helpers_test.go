package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/cache"
	"github.com/als344572-ai/Rahal-store/internal/cart"
	"github.com/als344572-ai/Rahal-store/internal/catalog"
	"github.com/als344572-ai/Rahal-store/internal/checkout"
	"github.com/als344572-ai/Rahal-store/internal/handlers"
	"github.com/als344572-ai/Rahal-store/internal/mocks"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
	"github.com/als344572-ai/Rahal-store/internal/routes"
)

type fixture struct {
	router   *gin.Engine
	store    *mocks.MockProductStore
	bookings *mocks.MockBookingLister
	media    *mocks.MockMediaStore
	details  *catalog.Details
	carts    *cart.Store
	cookies  []*http.Cookie
}

// newFixture wires the full router. With backend false every store is absent
// and only the built-in catalog is served.
func newFixture(t *testing.T, backend bool) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	kv := cache.New(time.Minute, 0)
	t.Cleanup(kv.Close)

	f := &fixture{}
	var (
		details  catalog.DetailSource
		products handlers.ProductStore
		lister   handlers.BookingLister
		media    handlers.MediaStore
	)
	if backend {
		f.store = mocks.NewMockProductStore(ctrl)
		f.bookings = mocks.NewMockBookingLister(ctrl)
		f.media = mocks.NewMockMediaStore(ctrl)
		details, products, lister, media = f.store, f.store, f.bookings, f.media
	}

	loader := catalog.NewLoader(nil, time.Second, zap.NewNop())
	resolver := catalog.NewDetails(details, kv, time.Minute, time.Second, zap.NewNop())
	f.details = resolver
	f.carts = cart.NewStore(kv, time.Hour)
	svc := checkout.NewService(checkout.NewSimulatedGateway("pk_test"), nil, pricing.DefaultTaxRate, zap.NewNop())

	f.router = gin.New()
	f.router.Use(handlers.Recovery(zap.NewNop()))
	routes.RegisterRoutes(f.router, routes.Dependencies{
		Products:      handlers.NewProductHandler(loader, resolver, decimal.NewFromInt(500)),
		Cart:          handlers.NewCartHandler(f.carts, resolver, svc, pricing.DefaultTaxRate),
		Admin:         handlers.NewAdminHandler(products, lister, media, resolver, zap.NewNop()),
		Media:         handlers.NewMediaHandler(media),
		Locale:        handlers.NewLocaleHandler(),
		DefaultLocale: models.LocaleAR,
		CartTTL:       time.Hour,
		HasBackend:    backend,
	})
	return f
}

// serve runs req and keeps any cookies the response sets for later requests.
func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	for _, set := range w.Result().Cookies() {
		replaced := false
		for i, c := range f.cookies {
			if c.Name == set.Name {
				f.cookies[i] = set
				replaced = true
			}
		}
		if !replaced {
			f.cookies = append(f.cookies, set)
		}
	}
	return w
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func (f *fixture) sendJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.serve(newJSONRequest(t, method, path, body))
}

func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func asAdmin(req *http.Request) *http.Request {
	req.Header.Set(handlers.HeaderUserEmail, "admin@rahaltent.com")
	req.Header.Set(handlers.HeaderUserRole, "admin")
	return req
}
