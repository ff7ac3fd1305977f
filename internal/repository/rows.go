package repository

import (
	"time"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

type productRow struct {
	ID            string              `bson:"_id"`
	NameAR        string              `bson:"name_ar"`
	NameEN        string              `bson:"name_en"`
	DescriptionAR string              `bson:"description_ar,omitempty"`
	DescriptionEN string              `bson:"description_en,omitempty"`
	Category      string              `bson:"category"`
	BasePrice     money               `bson:"base_price"`
	ImageURL      string              `bson:"image_url"`
	Gallery       []string            `bson:"gallery,omitempty"`
	Specs         *models.SpecsRecord `bson:"specs,omitempty"`
	ListingType   string              `bson:"listingType,omitempty"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     *time.Time          `bson:"updated_at,omitempty"`
	DeletedAt     *time.Time          `bson:"deleted_at,omitempty"`
}

func (r productRow) toModel() models.Product {
	return models.Product{
		ID:            r.ID,
		NameAR:        r.NameAR,
		NameEN:        r.NameEN,
		DescriptionAR: r.DescriptionAR,
		DescriptionEN: r.DescriptionEN,
		Category:      r.Category,
		BasePrice:     r.BasePrice.Decimal(),
		ImageURL:      r.ImageURL,
		Gallery:       r.Gallery,
		Specs:         models.DecodeSpecs(r.Category, r.Specs),
		ListingType:   models.ListingType(r.ListingType),
		CreatedAt:     r.CreatedAt,
	}.Normalize()
}

type sizeRow struct {
	ID            string `bson:"_id"`
	ProductID     string `bson:"product_id"`
	NameAR        string `bson:"name_ar"`
	NameEN        string `bson:"name_en"`
	PriceModifier money  `bson:"price_modifier"`
}

func (r sizeRow) toModel() models.SizeVariant {
	return models.SizeVariant{
		ID:            r.ID,
		ProductID:     r.ProductID,
		NameAR:        r.NameAR,
		NameEN:        r.NameEN,
		PriceModifier: r.PriceModifier.Decimal(),
	}
}

type colorRow struct {
	ID        string `bson:"_id"`
	ProductID string `bson:"product_id"`
	NameAR    string `bson:"name_ar"`
	NameEN    string `bson:"name_en"`
	HexCode   string `bson:"hex_code,omitempty"`
}

func (r colorRow) toModel() models.ColorVariant {
	return models.ColorVariant{
		ID:        r.ID,
		ProductID: r.ProductID,
		NameAR:    r.NameAR,
		NameEN:    r.NameEN,
		HexCode:   r.HexCode,
	}
}

type bookingRow struct {
	ID            string    `bson:"_id"`
	ProductID     string    `bson:"product_id"`
	ProductNameAR string    `bson:"product_name_ar,omitempty"`
	ProductNameEN string    `bson:"product_name_en,omitempty"`
	ProductImage  string    `bson:"product_image,omitempty"`
	SizeName      string    `bson:"size_name,omitempty"`
	Color         string    `bson:"color,omitempty"`
	StartDate     string    `bson:"start_date"`
	EndDate       string    `bson:"end_date"`
	TotalPrice    money     `bson:"total_price"`
	UserEmail     string    `bson:"user_email,omitempty"`
	Reference     string    `bson:"reference"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
}

func bookingRowFrom(b models.Booking) bookingRow {
	return bookingRow{
		ID:            b.ID,
		ProductID:     b.ProductID,
		ProductNameAR: b.ProductNameAR,
		ProductNameEN: b.ProductNameEN,
		ProductImage:  b.ProductImage,
		SizeName:      b.SizeName,
		Color:         b.Color,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalPrice:    money(b.TotalPrice),
		UserEmail:     b.UserEmail,
		Reference:     b.Reference,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func (r bookingRow) toModel() models.Booking {
	return models.Booking{
		CartLineItem: models.CartLineItem{
			ID:            r.ID,
			ProductID:     r.ProductID,
			ProductNameAR: r.ProductNameAR,
			ProductNameEN: r.ProductNameEN,
			ProductImage:  r.ProductImage,
			SizeName:      r.SizeName,
			Color:         r.Color,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			TotalPrice:    r.TotalPrice.Decimal(),
		},
		UserEmail: r.UserEmail,
		Reference: r.Reference,
		Status:    models.BookingStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

type statsRow struct {
	Revenue  money `bson:"revenue"`
	Bookings int   `bson:"bookings"`
	Active   int   `bson:"active"`
}

func (r statsRow) toModel() models.BookingStats {
	return models.BookingStats{
		Revenue:       r.Revenue.Decimal(),
		TotalBookings: r.Bookings,
		ActiveRentals: r.Active,
	}
}
