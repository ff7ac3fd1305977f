package repository

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// money is an amount stored as BSON Decimal128. Rows written as doubles or
// integers are still readable.
type money decimal.Decimal

func (m money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

func (m money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d := decimal.Decimal(m)
	d128, ok := primitive.ParseDecimal128FromBigInt(d.Coefficient(), int(d.Exponent()))
	if !ok {
		return 0, nil, errors.Errorf("amount %s does not fit decimal128", d)
	}
	return bson.TypeDecimal128, bsoncore.AppendDecimal128(nil, d128), nil
}

func (m *money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		coef, exp, err := rv.Decimal128().BigInt()
		if err != nil {
			return errors.Wrap(err, "decode amount")
		}
		*m = money(decimal.NewFromBigInt(coef, int32(exp)))
	case bson.TypeDouble:
		*m = money(decimal.NewFromFloat(rv.Double()))
	case bson.TypeInt32:
		*m = money(decimal.NewFromInt32(rv.Int32()))
	case bson.TypeInt64:
		*m = money(decimal.NewFromInt(rv.Int64()))
	case bson.TypeNull:
		*m = money(decimal.Zero)
	default:
		return errors.Errorf("cannot decode %s as an amount", t)
	}
	return nil
}
