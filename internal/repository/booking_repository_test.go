package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

func TestBookingRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("InsertMany", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.InsertMany(context.Background(), []models.Booking{{
			CartLineItem: models.CartLineItem{ID: "b1", ProductID: "tent", TotalPrice: decimal.NewFromInt(45)},
			Reference:    "sim_1",
			Status:       models.BookingConfirmed,
			CreatedAt:    created,
		}})
		assert.NoError(mt, err)
	})

	mt.Run("InsertMany with nothing to insert", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		assert.NoError(mt, repo.InsertMany(context.Background(), nil))
	})

	mt.Run("FindRecent", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "rahalStore.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "b2"},
				{Key: "product_id", Value: "chair"},
				{Key: "start_date", Value: "2025-03-01"},
				{Key: "end_date", Value: "2025-03-02"},
				{Key: "total_price", Value: 2.0},
				{Key: "user_email", Value: "guest@example.com"},
				{Key: "reference", Value: "sim_2"},
				{Key: "status", Value: "confirmed"},
				{Key: "created_at", Value: created},
			},
		))

		bookings, err := repo.FindRecent(context.Background(), 20)
		require.NoError(mt, err)
		require.Len(mt, bookings, 1)
		b := bookings[0]
		assert.Equal(mt, "b2", b.ID)
		assert.Equal(mt, models.BookingConfirmed, b.Status)
		assert.True(mt, b.TotalPrice.Equal(decimal.NewFromInt(2)))
		assert.Equal(mt, "guest@example.com", b.UserEmail)
	})

	mt.Run("Stats", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "rahalStore.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: nil},
				{Key: "revenue", Value: primitiveAmount(mt, "12450.5")},
				{Key: "bookings", Value: int32(142)},
				{Key: "active", Value: int32(18)},
			},
		))

		stats, err := repo.Stats(context.Background(), "2026-10-18")
		require.NoError(mt, err)
		assert.True(mt, stats.Revenue.Equal(decimal.RequireFromString("12450.5")))
		assert.Equal(mt, 142, stats.TotalBookings)
		assert.Equal(mt, 18, stats.ActiveRentals)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "aggregate", evt.CommandName)
	})

	mt.Run("Stats without bookings", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "rahalStore.bookings", mtest.FirstBatch))

		stats, err := repo.Stats(context.Background(), "2026-10-18")
		require.NoError(mt, err)
		assert.True(mt, stats.Revenue.IsZero())
		assert.Zero(mt, stats.TotalBookings)
	})

	mt.Run("FindRecent error", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "boom", Name: "InternalError"}))

		_, err := repo.FindRecent(context.Background(), 20)
		assert.Error(mt, err)
	})
}

func TestMediaStoreOpenRejectsMalformedID(t *testing.T) {
	s := NewMediaStore(nil, "products")
	_, err := s.Open(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
