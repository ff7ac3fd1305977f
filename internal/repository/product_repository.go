// Package repository reads and writes the storefront's hosted collections.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

// Collection names in the hosted database.
const (
	ProductsCollection = "products"
	SizesCollection    = "product_sizes"
	ColorsCollection   = "product_colors"
	BookingsCollection = "bookings"
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoChanges is returned by Update when no field is set.
	ErrNoChanges = errors.New("no fields to update")
)

type ProductRepository struct {
	products *mongo.Collection
	sizes    *mongo.Collection
	colors   *mongo.Collection
	// parallelism caps the concurrent queries issued by one call.
	parallelism int
	now         func() time.Time
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		products:    db.Collection(ProductsCollection),
		sizes:       db.Collection(SizesCollection),
		colors:      db.Collection(ColorsCollection),
		parallelism: 3,
		now:         time.Now,
	}
}

// FindRecent lists every product that is not deleted, newest first.
func (r *ProductRepository) FindRecent(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.products.Find(ctx, bson.M{"deleted_at": notDeleted}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var rows []productRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]models.Product, len(rows))
	for i, row := range rows {
		products[i] = row.toModel()
	}
	return products, nil
}

// FindByID loads a product with its sizes and colors.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.ProductDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		row    productRow
		sizes  []sizeRow
		colors []colorRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	g.Go(func() error {
		err := r.products.FindOne(gctx, live(id)).Decode(&row)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return errors.Wrapf(err, "find product %s", id)
	})
	g.Go(func() error {
		return findVariants(gctx, r.sizes, id, &sizes)
	})
	g.Go(func() error {
		return findVariants(gctx, r.colors, id, &colors)
	})
	if err := g.Wait(); err != nil {
		return models.ProductDetail{}, err
	}

	detail := models.ProductDetail{
		Product: row.toModel(),
		Sizes:   make([]models.SizeVariant, len(sizes)),
		Colors:  make([]models.ColorVariant, len(colors)),
	}
	for i, s := range sizes {
		detail.Sizes[i] = s.toModel()
	}
	for i, c := range colors {
		detail.Colors[i] = c.toModel()
	}
	return detail, nil
}

func findVariants(ctx context.Context, coll *mongo.Collection, productID string, out any) error {
	cursor, err := coll.Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return errors.Wrapf(err, "find %s", coll.Name())
	}
	defer cursor.Close(ctx)
	return errors.Wrapf(cursor.All(ctx, out), "decode %s", coll.Name())
}

// Create inserts a product and its variants and returns what was stored.
func (r *ProductRepository) Create(ctx context.Context, np models.NewProduct) (models.ProductDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := productRow{
		ID:            uuid.NewString(),
		NameAR:        np.NameAR,
		NameEN:        np.NameEN,
		DescriptionAR: np.DescriptionAR,
		DescriptionEN: np.DescriptionEN,
		Category:      np.Category,
		BasePrice:     money(np.BasePrice),
		ImageURL:      np.ImageURL,
		Gallery:       np.Gallery,
		ListingType:   string(np.ListingType),
		CreatedAt:     r.now().UTC(),
	}
	if !np.Specs.IsZero() {
		row.Specs = models.EncodeSpecs(models.DecodeSpecs(np.Category, &np.Specs))
	}

	if _, err := r.products.InsertOne(ctx, row); err != nil {
		return models.ProductDetail{}, errors.Wrap(err, "insert product")
	}

	sizes := make([]any, len(np.Sizes))
	detail := models.ProductDetail{
		Product: row.toModel(),
		Sizes:   make([]models.SizeVariant, len(np.Sizes)),
		Colors:  make([]models.ColorVariant, len(np.Colors)),
	}
	for i, s := range np.Sizes {
		sr := sizeRow{
			ID:            uuid.NewString(),
			ProductID:     row.ID,
			NameAR:        s.NameAR,
			NameEN:        s.NameEN,
			PriceModifier: money(s.PriceModifier),
		}
		sizes[i] = sr
		detail.Sizes[i] = sr.toModel()
	}
	colors := make([]any, len(np.Colors))
	for i, c := range np.Colors {
		cr := colorRow{
			ID:        uuid.NewString(),
			ProductID: row.ID,
			NameAR:    c.NameAR,
			NameEN:    c.NameEN,
			HexCode:   c.HexCode,
		}
		colors[i] = cr
		detail.Colors[i] = cr.toModel()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	if len(sizes) > 0 {
		g.Go(func() error {
			_, err := r.sizes.InsertMany(gctx, sizes)
			return errors.Wrap(err, "insert sizes")
		})
	}
	if len(colors) > 0 {
		g.Go(func() error {
			_, err := r.colors.InsertMany(gctx, colors)
			return errors.Wrap(err, "insert colors")
		})
	}
	if err := g.Wait(); err != nil {
		r.discard(ctx, row.ID)
		return models.ProductDetail{}, err
	}
	return detail, nil
}

// discard removes a partly created product so it never shows up in listings.
func (r *ProductRepository) discard(ctx context.Context, id string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
	defer cancel()

	_, _ = r.products.DeleteOne(ctx, bson.M{"_id": id})
	_, _ = r.sizes.DeleteMany(ctx, bson.M{"product_id": id})
	_, _ = r.colors.DeleteMany(ctx, bson.M{"product_id": id})
}

// Update applies the non-nil fields of u and returns the stored product.
func (r *ProductRepository) Update(ctx context.Context, id string, u models.ProductUpdate) (models.ProductDetail, error) {
	set := updateFields(u)
	if len(set) == 0 {
		return models.ProductDetail{}, ErrNoChanges
	}
	set["updated_at"] = r.now().UTC()

	uctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.products.UpdateOne(uctx, live(id), bson.M{"$set": set})
	if err != nil {
		return models.ProductDetail{}, errors.Wrapf(err, "update product %s", id)
	}
	if result.MatchedCount == 0 {
		return models.ProductDetail{}, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func updateFields(u models.ProductUpdate) bson.M {
	set := bson.M{}
	if u.NameAR != nil {
		set["name_ar"] = *u.NameAR
	}
	if u.NameEN != nil {
		set["name_en"] = *u.NameEN
	}
	if u.DescriptionAR != nil {
		set["description_ar"] = *u.DescriptionAR
	}
	if u.DescriptionEN != nil {
		set["description_en"] = *u.DescriptionEN
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.BasePrice != nil {
		set["base_price"] = money(*u.BasePrice)
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.Gallery != nil {
		set["gallery"] = u.Gallery
	}
	if u.ListingType != nil {
		set["listingType"] = string(*u.ListingType)
	}
	return set
}

// SoftDelete hides a product from listings and detail lookups.
func (r *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := r.now().UTC()
	result, err := r.products.UpdateOne(ctx, live(id), bson.M{
		"$set": bson.M{"deleted_at": now, "updated_at": now},
	})
	if err != nil {
		return errors.Wrapf(err, "delete product %s", id)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// notDeleted matches products that were never soft deleted.
var notDeleted = bson.M{"$exists": false}

func live(id string) bson.M {
	return bson.M{"_id": id, "deleted_at": notDeleted}
}
