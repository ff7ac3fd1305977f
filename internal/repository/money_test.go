package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type priced struct {
	Price money `bson:"price"`
}

func TestMoneyStoresDecimal128(t *testing.T) {
	for _, amount := range []string{"0", "18", "12.5", "0.1", "1234567.891", "-3.25"} {
		data, err := bson.Marshal(priced{Price: money(decimal.RequireFromString(amount))})
		require.NoError(t, err)

		raw := bson.Raw(data).Lookup("price")
		assert.Equal(t, bson.TypeDecimal128, raw.Type, amount)

		var out priced
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.True(t, out.Price.Decimal().Equal(decimal.RequireFromString(amount)), amount)
	}
}

func TestMoneyReadsLegacyNumbers(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: 2.5, want: "2.5"},
		{value: int32(7), want: "7"},
		{value: int64(45), want: "45"},
	}
	for _, tt := range tests {
		data, err := bson.Marshal(bson.D{{Key: "price", Value: tt.value}})
		require.NoError(t, err)

		var out priced
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.True(t, out.Price.Decimal().Equal(decimal.RequireFromString(tt.want)), "%v", tt.value)
	}

	data, err := bson.Marshal(bson.D{{Key: "price", Value: "ten"}})
	require.NoError(t, err)
	var out priced
	assert.Error(t, bson.Unmarshal(data, &out))
}
