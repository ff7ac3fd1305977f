package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, expired("03/25", now))
	assert.False(t, expired("04/25", now))
	assert.False(t, expired("01/26", now))
	assert.True(t, expired("02/25", now))
	assert.True(t, expired("12/24", now))
	assert.True(t, expired("garbage", now))
}
