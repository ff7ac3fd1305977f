package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineItem is a product booked for a date range. TotalPrice is fixed when the item is added.
type CartLineItem struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductNameAR string          `json:"product_name_ar,omitempty"`
	ProductNameEN string          `json:"product_name_en,omitempty"`
	ProductImage  string          `json:"product_image,omitempty"`
	SizeName      string          `json:"size_name,omitempty"`
	Color         string          `json:"color,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// BookingStatus tracks a booking after checkout.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a paid cart line item.
type Booking struct {
	CartLineItem
	UserEmail string        `json:"user_email,omitempty"`
	Reference string        `json:"reference"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// BookingStats summarizes stored bookings for the admin dashboard.
type BookingStats struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalBookings int             `json:"total_bookings"`
	ActiveRentals int             `json:"active_rentals"`
}
