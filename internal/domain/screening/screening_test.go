package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPrices(t *testing.T) {
	tests := []struct {
		name     string
		s        Screening
		price    float64
		ageLabel string
	}{
		{
			"premiere",
			NewPremiere("A01", "Avengers", 140, "18:00", 1, 69, "Spanish", "4K"),
			10, "15+",
		},
		{
			"classic with special price",
			NewClassic("B01", "The Godfather", 175, "16:00", 2, 1972, true, 6),
			6, "All ages",
		},
		{
			"classic without special price",
			NewClassic("B02", "Casablanca", 102, "14:00", 2, 1942, false, 0),
			5, "All ages",
		},
		{
			"documentary",
			NewDocumentary("C01", "Planet Earth", 90, "10:00", 3, "Nature", false, true),
			7, "8+",
		},
		{
			"special event",
			NewSpecialEvent("D01", "Concert", 110, "22:00", 4, "Music", false, 20),
			15, "18+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.price, tt.s.TicketPrice(), 1e-9)
			assert.Equal(t, tt.ageLabel, tt.s.AgeRestriction())
		})
	}
}

func TestSell(t *testing.T) {
	t.Run("accumulates seats and revenue", func(t *testing.T) {
		s := NewPremiere("A01", "Avengers", 140, "18:00", 1, 69, "Spanish", "4K")

		require.NoError(t, s.Sell(3))
		assert.Equal(t, 3, s.SeatsSold())
		assert.InDelta(t, 30, s.Revenue(), 1e-9)

		require.NoError(t, s.Sell(2))
		assert.Equal(t, 5, s.SeatsSold())
		assert.InDelta(t, 50, s.Revenue(), 1e-9)
	})

	t.Run("fails without mutation when capacity exceeded", func(t *testing.T) {
		s := NewDocumentary("C01", "Planet Earth", 90, "10:00", 3, "Nature", false, true)
		require.NoError(t, s.Sell(80))

		err := s.Sell(30)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, 80, s.SeatsSold())
		assert.InDelta(t, 560, s.Revenue(), 1e-9)
	})

	t.Run("can sell out exactly to capacity", func(t *testing.T) {
		s := NewSpecialEvent("D01", "Concert", 110, "22:00", 4, "Music", false, 20)

		require.NoError(t, s.Sell(Capacity))
		assert.Equal(t, Capacity, s.SeatsSold())
		assert.ErrorIs(t, s.Sell(1), ErrCapacityExceeded)
	})

	t.Run("seats sold never exceed capacity", func(t *testing.T) {
		s := NewClassic("B02", "Casablanca", 102, "14:00", 2, 1942, false, 0)
		for _, q := range []int{40, 40, 40, 15, 5, 1} {
			s.Sell(q)
			assert.LessOrEqual(t, s.SeatsSold(), Capacity)
		}
	})

	t.Run("classic revenue uses its special price", func(t *testing.T) {
		s := NewClassic("B01", "The Godfather", 175, "16:00", 2, 1972, true, 6)
		require.NoError(t, s.Sell(10))
		assert.InDelta(t, 60, s.Revenue(), 1e-9)
	})
}

func TestOccupancy(t *testing.T) {
	s := NewPremiere("A02", "Dune 2", 155, "20:00", 1, 69, "English", "3D")
	assert.InDelta(t, 0, s.Occupancy(), 1e-9)

	require.NoError(t, s.Sell(25))
	assert.InDelta(t, 25, s.Occupancy(), 1e-9)
}
