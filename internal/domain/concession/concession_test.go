package concession

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductStock(t *testing.T) {
	t.Run("deducts available stock", func(t *testing.T) {
		p := NewPopcorn("P01", "Popcorn S", 8000, 20, "S", true, true)

		require.NoError(t, p.DeductStock(5))
		assert.Equal(t, 15, p.Stock())
	})

	t.Run("fails without mutation when stock is short", func(t *testing.T) {
		d := NewCandy("D02", "Nordic Chocolate", 8000, 10, "bar", 50, true)

		err := d.DeductStock(11)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 10, d.Stock())
	})

	t.Run("can deduct down to zero", func(t *testing.T) {
		b := NewDrink("B02", "Water 600ml", 4000, 30, "Brisa", false, false)

		require.NoError(t, b.DeductStock(30))
		assert.Equal(t, 0, b.Stock())
		assert.ErrorIs(t, b.DeductStock(1), ErrInsufficientStock)
	})
}

func TestCombo_UnitPrice(t *testing.T) {
	popM := NewPopcorn("P02", "Popcorn M", 10000, 20, "M", true, true)
	soda := NewDrink("B01", "Soda 500ml", 6000, 30, "Coca-Cola", true, true)

	combo := NewCombo("C01", "Popcorn + Soda Combo", 10, []Item{popM, soda}, 0.15)

	// (10000 + 6000) * 0.85
	assert.InDelta(t, 13600, combo.UnitPrice(), 1e-9)
	assert.Len(t, combo.Items(), 2)
}

func TestCombo_StockIndependentOfComponents(t *testing.T) {
	popM := NewPopcorn("P02", "Popcorn M", 10000, 20, "M", true, true)
	soda := NewDrink("B01", "Soda 500ml", 6000, 30, "Coca-Cola", true, true)
	combo := NewCombo("C01", "Popcorn + Soda Combo", 2, []Item{popM, soda}, 0.15)

	require.NoError(t, combo.DeductStock(2))
	assert.Equal(t, 0, combo.Stock())
	assert.Equal(t, 20, popM.Stock())
	assert.Equal(t, 30, soda.Stock())
}

func TestDescribe(t *testing.T) {
	p := NewPopcorn("P01", "Popcorn S", 8000, 20, "S", true, true)
	assert.Equal(t, "[P01] Popcorn S - $8000.00 (stock: 20)", p.Describe())

	combo := NewCombo("C01", "Popcorn + Soda Combo", 10,
		[]Item{NewPopcorn("P02", "Popcorn M", 10000, 20, "M", true, true)}, 0.15)
	assert.Contains(t, combo.Describe(), "[C01] Popcorn + Soda Combo")
	assert.Contains(t, combo.Describe(), "15% off")
}
