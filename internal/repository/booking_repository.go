package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection(BookingsCollection)}
}

// InsertMany stores confirmed bookings.
func (r *BookingRepository) InsertMany(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, len(bookings))
	for i, b := range bookings {
		docs[i] = bookingRowFrom(b)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return errors.Wrap(err, "insert bookings")
}

// FindRecent returns up to limit bookings, newest first.
func (r *BookingRepository) FindRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find bookings")
	}
	defer cursor.Close(ctx)

	var rows []bookingRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode bookings")
	}

	bookings := make([]models.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.toModel()
	}
	return bookings, nil
}

// Stats totals revenue over bookings that were not cancelled and counts
// active rentals: confirmed bookings ending on or after today (YYYY-MM-DD).
func (r *BookingRepository) Stats(ctx context.Context, today string) (models.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	notCancelled := bson.D{{Key: "$ne", Value: bson.A{"$status", string(models.BookingCancelled)}}}
	active := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$status", string(models.BookingConfirmed)}}},
		bson.D{{Key: "$gte", Value: bson.A{"$end_date", today}}},
	}}}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{notCancelled, "$total_price", 0}}}}}},
			{Key: "bookings", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "active", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{active, 1, 0}}}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.BookingStats{}, errors.Wrap(err, "aggregate bookings")
	}
	defer cursor.Close(ctx)

	var rows []statsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return models.BookingStats{}, errors.Wrap(err, "decode booking stats")
	}
	if len(rows) == 0 {
		return models.BookingStats{Revenue: decimal.Zero}, nil
	}
	return rows[0].toModel(), nil
}
