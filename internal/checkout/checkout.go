// Package checkout turns a cart into confirmed bookings through a payment gateway.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/cart"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
)

//go:generate mockgen -destination=../mocks/mock_booking_recorder.go -package=mocks . BookingRecorder

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCard        = errors.New("invalid card details")
	ErrCardExpired        = errors.New("card has expired")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrInProgress         = errors.New("checkout already in progress")
)

// Currency is the storefront currency.
const Currency = "KWD"

// BookingRecorder persists confirmed bookings.
type BookingRecorder interface {
	InsertMany(ctx context.Context, bookings []models.Booking) error
}

// Snapshot is the cart as it was charged.
type Snapshot struct {
	Items      []models.CartLineItem  `json:"items"`
	Summary    pricing.Summary        `json:"-"`
	Display    pricing.DisplaySummary `json:"summary"`
	CapturedAt time.Time              `json:"captured_at"`
}

// Receipt describes a completed checkout.
type Receipt struct {
	Reference string           `json:"reference"`
	Snapshot  Snapshot         `json:"snapshot"`
	Bookings  []models.Booking `json:"bookings"`
}

// Service runs checkouts.
type Service struct {
	gateway  Gateway
	bookings BookingRecorder
	taxRate  decimal.Decimal
	validate *validator.Validate
	now      func() time.Time
	log      *zap.Logger
}

// NewService creates a checkout service. bookings may be nil when no store is configured.
func NewService(gateway Gateway, bookings BookingRecorder, taxRate decimal.Decimal, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		gateway:  gateway,
		bookings: bookings,
		taxRate:  taxRate,
		validate: newValidator(),
		now:      time.Now,
		log:      log,
	}
}

// Checkout charges the cart total. The items are claimed for the whole
// checkout, so a concurrent checkout of the same cart fails with ErrInProgress.
// The charged items leave the cart only after an approved charge; any failure
// leaves it untouched.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, card CardDetails, user *models.User) (Receipt, error) {
	items, err := c.Claim()
	switch {
	case errors.Is(err, cart.ErrEmpty):
		return Receipt{}, ErrEmptyCart
	case err != nil:
		return Receipt{}, ErrInProgress
	}
	settled := false
	defer func() {
		if !settled {
			c.Release()
		}
	}()

	if err := s.validate.Struct(card); err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	now := s.now()
	if expired(card.Expiry, now) {
		return Receipt{}, ErrCardExpired
	}

	if err := s.gateway.Ready(ctx); err != nil {
		s.log.Warn("payment gateway not ready", zap.Error(err))
		return Receipt{}, ErrGatewayUnavailable
	}

	summary := pricing.Summarize(items, s.taxRate)
	snap := Snapshot{
		Items:      items,
		Summary:    summary,
		Display:    summary.Display(),
		CapturedAt: now,
	}

	result, err := s.gateway.Charge(ctx, Charge{
		Amount:      summary.Total.Round(3),
		Currency:    Currency,
		CardNumber:  digitsOnly(card.Number),
		Description: fmt.Sprintf("%d booking(s)", len(items)),
	})
	if errors.Is(err, ErrPaymentDeclined) {
		return Receipt{}, ErrPaymentDeclined
	}
	if err != nil {
		s.log.Error("payment charge failed", zap.Error(err))
		return Receipt{}, ErrGatewayUnavailable
	}

	c.Settle(items)
	settled = true

	receipt := Receipt{
		Reference: result.Reference,
		Snapshot:  snap,
		Bookings:  bookingsFor(items, user, result.Reference, now),
	}

	if s.bookings != nil {
		if err := s.bookings.InsertMany(ctx, receipt.Bookings); err != nil {
			// The charge already went through, so the items stay out of the cart.
			s.log.Error("failed to record bookings",
				zap.String("reference", result.Reference),
				zap.Int("items", len(items)),
				zap.Error(err))
		}
	}

	s.log.Info("checkout completed",
		zap.String("reference", result.Reference),
		zap.String("total", pricing.Format(summary.Total)))
	return receipt, nil
}

func bookingsFor(items []models.CartLineItem, user *models.User, reference string, now time.Time) []models.Booking {
	email := ""
	if user != nil {
		email = user.Email
	}
	out := make([]models.Booking, len(items))
	for i, item := range items {
		out[i] = models.Booking{
			CartLineItem: item,
			UserEmail:    email,
			Reference:    reference,
			Status:       models.BookingConfirmed,
			CreatedAt:    now,
		}
	}
	return out
}
