package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"liquid_relay/internal/models"
)

func TestGetQuotes(t *testing.T) {
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/dxsca-web/marketdata", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]any{"events": []map[string]any{
			{"type": "Quote", "symbol": "BTC$", "bid": 100.5, "ask": 101.5, "time": "2023-10-25T12:00:00Z"},
			{"type": "Quote", "symbol": "ETH$", "bid": 10.5, "ask": 11.5, "time": "2023-10-25T12:00:00Z"},
		}})
	})

	quotes, err := c.GetQuotes(context.Background(), []models.Symbol{"BTC$", "ETH$"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// порядок ответа сохраняется
	require.Equal(t, models.Symbol("BTC$"), quotes[0].Symbol)
	require.Equal(t, 100.5, quotes[0].Bid)
	require.Equal(t, 101.5, quotes[0].Ask)
	require.Equal(t, models.Symbol("ETH$"), quotes[1].Symbol)

	require.Equal(t, []any{"BTC$", "ETH$"}, gotBody["symbols"])
	require.Equal(t, []any{map[string]any{"type": "Quote"}}, gotBody["eventTypes"])
}

func TestGetQuotesMissingEvents(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"not_events": []any{}})
	})

	_, err := c.GetQuotes(context.Background(), []models.Symbol{"BTC$"})
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, "'BTC$' quotes not received", respErr.Message)
}

func TestGetQuotesCountMismatch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"events": []map[string]any{
			{"type": "Quote", "symbol": "BTC$", "bid": 100.5, "ask": 101.5, "time": "2023-10-25T12:00:00Z"},
		}})
	})

	_, err := c.GetQuotes(context.Background(), []models.Symbol{"BTC$", "ETH$"})
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, "All of 'BTC$,ETH$' quotes not received", respErr.Message)
}

func TestGetQuotesUnexpectedEventType(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"events": []map[string]any{
			{"type": "Candle", "symbol": "BTC$"},
		}})
	})

	_, err := c.GetQuotes(context.Background(), []models.Symbol{"BTC$"})
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Contains(t, respErr.Message, "want Quote")
}
