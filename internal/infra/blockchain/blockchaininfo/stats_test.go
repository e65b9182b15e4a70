package blockchaininfo

import (
	"net/http"
	"testing"

	"github.com/gabapcia/btcanalyser/internal/explorer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MarketPrice(t *testing.T) {
	t.Run("reads market_price_usd", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /stats": respond(http.StatusOK, `{"market_price_usd": 67012.34, "n_tx": 400000}`),
		})

		price, err := c.MarketPrice(t.Context())

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("67012.34").Equal(price), "got %s", price)
	})

	t.Run("fails when market_price_usd is missing", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /stats": respond(http.StatusOK, `{"n_tx": 400000}`),
		})

		_, err := c.MarketPrice(t.Context())

		assert.ErrorIs(t, err, explorer.ErrDecode)
	})

	t.Run("fails on a body that is not JSON", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /stats": respond(http.StatusOK, `market closed`),
		})

		_, err := c.MarketPrice(t.Context())

		assert.ErrorIs(t, err, explorer.ErrDecode)
	})
}
