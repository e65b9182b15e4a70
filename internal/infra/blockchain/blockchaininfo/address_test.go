package blockchaininfo

import (
	"net/http"
	"testing"

	"github.com/gabapcia/btcanalyser/internal/explorer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestClient_AddressSummary(t *testing.T) {
	t.Run("decodes the address totals", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /rawaddr/{address}": func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, genesisAddress, r.PathValue("address"))
				assert.Equal(t, "0", r.URL.Query().Get("limit"))
				respond(http.StatusOK, `{
					"address": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
					"n_tx": 3,
					"total_received": 300000000,
					"total_sent": 100000000,
					"final_balance": 200000000,
					"txs": []
				}`)(w, r)
			},
		})

		summary, err := c.AddressSummary(t.Context(), genesisAddress)

		require.NoError(t, err)
		assert.Equal(t, explorer.AddressSummary{
			TransactionCount: 3,
			TotalReceived:    300_000_000,
			TotalSent:        100_000_000,
			FinalBalance:     200_000_000,
		}, summary)
	})

	t.Run("reports an address the API rejects as not found", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /rawaddr/{address}": respond(http.StatusBadRequest, `{"error":"not-found-or-invalid-arg"}`),
		})

		_, err := c.AddressSummary(t.Context(), genesisAddress)

		assert.ErrorIs(t, err, explorer.ErrNotFound)
	})

	t.Run("reports rate limiting as unavailable", func(t *testing.T) {
		c := newTestClient(t, map[string]http.HandlerFunc{
			"GET /rawaddr/{address}": respond(http.StatusTooManyRequests, ``),
		})

		_, err := c.AddressSummary(t.Context(), genesisAddress)

		assert.ErrorIs(t, err, explorer.ErrUnavailable)
	})
}
