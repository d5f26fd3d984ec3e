package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

// GetOrderHistory отдаёт историю ордеров. Оба фильтра опциональны:
// пустые значения не попадают в query-параметры.
func (c *Client) GetOrderHistory(
	ctx context.Context,
	symbol models.Symbol,
	orderID string,
) ([]models.HistoricalOrder, error) {
	logger.Info("fetching order history (symbol: %s, order_id: %s)", symbol, orderID)
	params := url.Values{}
	if symbol != "" {
		params.Set("for-instrument", string(symbol))
	}
	if orderID != "" {
		params.Set("with-order-id", orderID)
	}

	resp, err := c.query(ctx, http.MethodGet, "accounts/"+c.accountCode+"/orders/history", nil, params, 0)
	if err != nil {
		return nil, err
	}

	subject := string(symbol)
	if subject == "" {
		subject = orderID
	}
	var payload struct {
		Orders []historicalOrderDto `json:"orders"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.Orders == nil {
		logger.Error("failed to receive order history: %s", string(resp.body))
		return nil, responseErrorf(resp.body, "'%s' order history not received", subject)
	}

	orders := make([]models.HistoricalOrder, 0, len(payload.Orders))
	for _, dto := range payload.Orders {
		order, mErr := dto.toDomain()
		if mErr != nil {
			return nil, mErr
		}
		orders = append(orders, order)
	}
	logger.Debug("successfully parsed %d historical orders", len(orders))
	return orders, nil
}
