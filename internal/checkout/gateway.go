package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../mocks/mock_gateway.go -package=mocks . Gateway

// Gateway takes payments.
type Gateway interface {
	// Ready fails when the gateway cannot take payments.
	Ready(ctx context.Context) error
	Charge(ctx context.Context, c Charge) (Result, error)
}

// Charge is one payment attempt.
type Charge struct {
	Amount      decimal.Decimal
	Currency    string
	CardNumber  string
	Description string
}

// Result is the gateway's answer to an approved charge.
type Result struct {
	Reference string
}

var errNoPublishableKey = errors.New("payment gateway publishable key is not configured")

// SimulatedGateway approves every charge except those on declined card numbers.
// No money moves.
type SimulatedGateway struct {
	publishableKey string
	declined       map[string]struct{}
}

// DeclineTestCard is always declined by SimulatedGateway.
const DeclineTestCard = "4000000000000002"

// NewSimulatedGateway creates a gateway. An empty key makes it unavailable.
func NewSimulatedGateway(publishableKey string, declinedCards ...string) *SimulatedGateway {
	declined := map[string]struct{}{DeclineTestCard: {}}
	for _, n := range declinedCards {
		declined[digitsOnly(n)] = struct{}{}
	}
	return &SimulatedGateway{publishableKey: publishableKey, declined: declined}
}

func (g *SimulatedGateway) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.publishableKey == "" {
		return errNoPublishableKey
	}
	return nil
}

func (g *SimulatedGateway) Charge(ctx context.Context, c Charge) (Result, error) {
	if err := g.Ready(ctx); err != nil {
		return Result{}, err
	}
	if _, ok := g.declined[digitsOnly(c.CardNumber)]; ok {
		return Result{}, ErrPaymentDeclined
	}
	return Result{Reference: "sim_" + uuid.NewString()}, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
