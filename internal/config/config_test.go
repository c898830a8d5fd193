package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.InDelta(t, 100, cfg.Cinema.BaseTicketPrice, 1e-9)
	assert.InDelta(t, 20, cfg.Cinema.ComboBasePrice, 1e-9)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_TICKET_PRICE", "150")
	t.Setenv("COMBO_BASE_PRICE", "25.5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.InDelta(t, 150, cfg.Cinema.BaseTicketPrice, 1e-9)
	assert.InDelta(t, 25.5, cfg.Cinema.ComboBasePrice, 1e-9)
}

func TestLoad_InvalidFloatFallsBack(t *testing.T) {
	t.Setenv("BASE_TICKET_PRICE", "not-a-number")

	cfg := Load()

	assert.InDelta(t, 100, cfg.Cinema.BaseTicketPrice, 1e-9)
}
