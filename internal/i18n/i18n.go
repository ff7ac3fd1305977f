// Package i18n holds the storefront's static translations and locale negotiation.
package i18n

import (
	"maps"

	"golang.org/x/text/language"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

// Cookie stores the shopper's chosen locale.
const Cookie = "rahal-locale"

// Notice keys returned in API errors.
const (
	SelectDates        = "selectDates"
	UnknownSize        = "unknownSize"
	NegativePrice      = "negativePrice"
	EmptyCart          = "emptyCart"
	ItemNotFound       = "itemNotFound"
	InvalidCard        = "invalidCard"
	CardExpired        = "cardExpired"
	PaymentUnavailable = "paymentUnavailable"
	PaymentDeclined    = "paymentDeclined"
	PaymentSuccessful  = "paymentSuccessful"
	ProductNotFound    = "productNotFound"
	ProductPublished   = "productPublished"
	ProductUpdated     = "productUpdated"
	ProductDeleted     = "productDeleted"
	NoChanges          = "noChanges"
	ImageRequired      = "imageRequired"
	CheckoutInProgress = "checkoutInProgress"
	MediaNotFound      = "mediaNotFound"
	BackendUnavailable = "backendUnavailable"
	AdminOnly          = "adminOnly"
	InvalidRequest     = "invalidRequest"
	InvalidLocale      = "invalidLocale"
	InternalError      = "internalError"
)

var tables = map[models.Locale]map[string]string{
	models.LocaleAR: {
		"home":           "الرئيسية",
		"shop":           "المتجر",
		"about":          "من نحن",
		"contact":        "اتصل بنا",
		"login":          "تسجيل الدخول",
		"dashboard":      "لوحة التحكم",
		"categories":     "الأقسام",
		"allProducts":    "جميع المنتجات",
		"filter":         "تصفية",
		"currency":       "د.ك",
		"rental":         "تأجير",
		"sales":          "بيع",
		"specifications": "المواصفات",
		"selectSize":     "اختر المقاس",
		"selectColor":    "اختر اللون",
		"startDate":      "تاريخ البداية",
		"endDate":        "تاريخ النهاية",
		"totalPrice":     "السعر الإجمالي",
		"subtotal":       "المجموع الفرعي",
		"tax":            "الضريبة",
		"total":          "الإجمالي",
		"confirmPayment": "تأكيد الدفع",
		"manageProducts": "إدارة المنتجات",
		"manageBookings": "إدارة الحجوزات",
		"slogan":         "رحال للخيام، فخامة التراث لمناسباتكم",
		"featuredTitle":  "منتجات مميزة",
		"featuredSub":    "اختيارات مختارة لمناسبتك القادمة",

		SelectDates:        "يرجى اختيار التواريخ",
		UnknownSize:        "المقاس المختار غير متوفر",
		NegativePrice:      "لا يمكن أن يكون السعر سالباً",
		EmptyCart:          "سلة التسوق فارغة",
		ItemNotFound:       "العنصر غير موجود في السلة",
		InvalidCard:        "بيانات البطاقة غير صحيحة",
		CardExpired:        "انتهت صلاحية البطاقة",
		PaymentUnavailable: "تعذر تهيئة بوابة الدفع، يرجى المحاولة لاحقاً",
		PaymentDeclined:    "تم رفض عملية الدفع",
		PaymentSuccessful:  "تم الدفع بنجاح",
		ProductNotFound:    "المنتج غير موجود",
		ProductPublished:   "تم نشر المنتج بنجاح",
		ProductUpdated:     "تم تحديث المنتج",
		ProductDeleted:     "تم حذف المنتج",
		NoChanges:          "لا توجد حقول للتحديث",
		ImageRequired:      "يرجى إضافة صورة للمنتج",
		CheckoutInProgress: "عملية الدفع جارية بالفعل",
		MediaNotFound:      "الصورة غير موجودة",
		BackendUnavailable: "قاعدة البيانات غير متصلة",
		AdminOnly:          "هذه الصفحة للمسؤولين فقط",
		InvalidRequest:     "طلب غير صالح",
		InvalidLocale:      "اللغة غير مدعومة",
		InternalError:      "حدث خطأ غير متوقع",
	},
	models.LocaleEN: {
		"home":           "Home",
		"shop":           "Shop",
		"about":          "About",
		"contact":        "Contact",
		"login":          "Login",
		"dashboard":      "Dashboard",
		"categories":     "Categories",
		"allProducts":    "All Products",
		"filter":         "Filter",
		"currency":       "KWD",
		"rental":         "Rental",
		"sales":          "Sale",
		"specifications": "Specifications",
		"selectSize":     "Select Size",
		"selectColor":    "Select Color",
		"startDate":      "Start Date",
		"endDate":        "End Date",
		"totalPrice":     "Total Price",
		"subtotal":       "Subtotal",
		"tax":            "Tax",
		"total":          "Total",
		"confirmPayment": "Confirm Payment",
		"manageProducts": "Manage Products",
		"manageBookings": "Manage Bookings",
		"slogan":         "Rahal Tent, heritage luxury for your events",
		"featuredTitle":  "Featured Products",
		"featuredSub":    "Handpicked for your next occasion",

		SelectDates:        "Please select dates",
		UnknownSize:        "The selected size is not available",
		NegativePrice:      "Price cannot be negative",
		EmptyCart:          "Your cart is empty",
		ItemNotFound:       "Item not found in cart",
		InvalidCard:        "Invalid card details",
		CardExpired:        "Card has expired",
		PaymentUnavailable: "Payment gateway failed to initialize, please try again later",
		PaymentDeclined:    "Payment was declined",
		PaymentSuccessful:  "Payment successful",
		ProductNotFound:    "Product not found",
		ProductPublished:   "Product published successfully",
		ProductUpdated:     "Product updated",
		ProductDeleted:     "Product deleted",
		NoChanges:          "No fields to update",
		ImageRequired:      "Please add a product image",
		CheckoutInProgress: "Checkout is already in progress",
		MediaNotFound:      "Image not found",
		BackendUnavailable: "Database not connected",
		AdminOnly:          "Administrators only",
		InvalidRequest:     "Invalid request",
		InvalidLocale:      "Unsupported locale",
		InternalError:      "Something went wrong",
	},
}

// T returns the text for key in locale l, or key itself when there is none.
func T(l models.Locale, key string) string {
	table, ok := tables[l]
	if !ok {
		table = tables[models.DefaultLocale]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Table returns a copy of every translation for l.
func Table(l models.Locale) map[string]string {
	table, ok := tables[l]
	if !ok {
		table = tables[models.DefaultLocale]
	}
	return maps.Clone(table)
}

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// Resolve picks the request locale: an explicit query value, then the cookie,
// then the Accept-Language header, then def.
func Resolve(query, cookie, acceptLanguage string, def models.Locale) models.Locale {
	if l, ok := models.ParseLocale(query); ok {
		return l
	}
	if l, ok := models.ParseLocale(cookie); ok {
		return l
	}
	if l, ok := fromAcceptLanguage(acceptLanguage); ok {
		return l
	}
	return def
}

func fromAcceptLanguage(header string) (models.Locale, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := tag.Base()
	return models.ParseLocale(base.String())
}
