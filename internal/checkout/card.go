package checkout

import (
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// CardDetails is what the shopper types into the payment form.
type CardDetails struct {
	Number string `json:"number" validate:"required,credit_card"`
	Expiry string `json:"expiry" validate:"required,card_expiry"`
	CVC    string `json:"cvc" validate:"required,numeric,min=3,max=4"`
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// expired reports whether an MM/YY expiry lies before the month of now.
func expired(expiry string, now time.Time) bool {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return true
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000

	y, mo, _ := now.Date()
	return year < y || (year == y && month < int(mo))
}
