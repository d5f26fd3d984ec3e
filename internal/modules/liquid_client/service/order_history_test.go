package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"liquid_relay/internal/models"
)

func historicalOrderPayload() map[string]any {
	return map[string]any{"orders": []map[string]any{
		{
			"account":    "default:888",
			"orderId":    12345,
			"orderCode":  "abc1234",
			"type":       "MARKET",
			"instrument": "BTC$",
			"status":     "COMPLETED",
			"side":       "BUY",
			"tif":        "GTC",
			"legs": []map[string]any{
				{"instrument": "BTC$", "positionEffect": "OPEN", "quantity": 1.0, "filledQuantity": 1.0},
			},
			"executions": []map[string]any{
				{"orderCode": "abc1234", "status": "COMPLETED", "lastPrice": 100.5, "transactionTime": "2023-10-25T12:00:00Z"},
			},
			"cashTransactions": []map[string]any{
				{"orderCode": "abc1234", "type": "COMMISSION", "value": -0.5, "currency": "USD$"},
			},
		},
	}}
}

func TestGetOrderHistory(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/dxsca-web/accounts/default%3A888/orders/history", r.URL.EscapedPath())
		gotQuery = r.URL.Query()
		writeJSON(t, w, historicalOrderPayload())
	})

	orders, err := c.GetOrderHistory(context.Background(), "BTC$", "12345")
	require.NoError(t, err)
	require.Equal(t, "BTC$", gotQuery.Get("for-instrument"))
	require.Equal(t, "12345", gotQuery.Get("with-order-id"))

	require.Len(t, orders, 1)
	order := orders[0]
	require.Equal(t, int64(12345), order.OrderID)
	require.Equal(t, models.OrderMarket, order.Type)
	require.Equal(t, models.Symbol("BTC$"), order.Instrument)
	require.Equal(t, models.StatusCompleted, order.Status)
	require.Equal(t, models.TifGTC, order.TIF)

	require.Len(t, order.Legs, 1)
	require.Equal(t, models.EffectOpen, order.Legs[0].PositionEffect)
	require.Len(t, order.Executions, 1)
	require.Equal(t, 100.5, order.Executions[0].LastPrice)
	require.Len(t, order.CashTransactions, 1)
	require.Equal(t, models.TxCommission, order.CashTransactions[0].Type)
	// хвостовой "$" у валюты проводки срезается
	require.Equal(t, models.Currency("USD"), order.CashTransactions[0].Currency)
}

func TestGetOrderHistoryOmitsEmptyFilters(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(t, w, map[string]any{"orders": []any{}})
	})

	orders, err := c.GetOrderHistory(context.Background(), "BTC$", "")
	require.NoError(t, err)
	require.Empty(t, orders)
	require.Equal(t, "BTC$", gotQuery.Get("for-instrument"))
	require.NotContains(t, gotQuery, "with-order-id")
}

func TestGetOrderHistoryMissingOrdersBySymbol(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"error": "not found"})
	})

	_, err := c.GetOrderHistory(context.Background(), "BTC$", "")
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, "'BTC$' order history not received", respErr.Message)
}

func TestGetOrderHistoryMissingOrdersByID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"error": "not found"})
	})

	// без тикера сообщение подписывается идентификатором ордера
	_, err := c.GetOrderHistory(context.Background(), "", "42")
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, "'42' order history not received", respErr.Message)
}

func TestGetOrderHistoryUnknownStatus(t *testing.T) {
	payload := historicalOrderPayload()
	payload["orders"].([]map[string]any)[0]["status"] = "TELEPORTED"
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, payload)
	})

	_, err := c.GetOrderHistory(context.Background(), "BTC$", "")
	require.Error(t, err)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Contains(t, respErr.Message, "unsupported order status")
}
