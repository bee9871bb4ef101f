package room

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-desk/service-booking/internal/domain"
)

func TestNewRoom(t *testing.T) {
	r, err := NewRoom(1, 2, " 203A ", 2, 100)
	require.NoError(t, err)
	assert.Equal(t, "203A", r.Number)
	assert.True(t, r.BelongsTo(2))

	_, err = NewRoom(1, 2, "101", 0, 100)
	assert.True(t, errors.Is(err, domain.ErrInvalidCapacity))

	_, err = NewRoom(1, 2, "101", 2, -5)
	assert.True(t, errors.Is(err, domain.ErrInvalidPrice))

	_, err = NewRoom(1, 2, "", 2, 100)
	assert.True(t, errors.Is(err, domain.ErrEmptyField))
}

func TestTotalCapacity(t *testing.T) {
	assert.Equal(t, 0, TotalCapacity(nil))
	assert.Equal(t, 5, TotalCapacity([]Room{{Capacity: 2}, {Capacity: 3}}))
}
