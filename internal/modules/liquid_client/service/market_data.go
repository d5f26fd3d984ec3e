package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

const wireTimeLayout = "2006-01-02T15:04:05Z"

// GetMarketData запрашивает свечи по одному тикеру за интервал времени.
// Диапазон проверяется до любого сетевого вызова.
func (c *Client) GetMarketData(
	ctx context.Context,
	symbol models.Symbol,
	interval models.CandleInterval,
	fromTime time.Time,
	toTime time.Time,
) ([]models.Candle, error) {
	if !fromTime.Before(toTime) {
		logger.Error("invalid time range: from_time (%s) >= to_time (%s)", fromTime, toTime)
		return nil, &ValidationError{Message: "'from_time' must be a date-time before 'to_time'"}
	}
	logger.Info("fetching market data for %s (interval: %s) from %s to %s",
		symbol, interval, fromTime, toTime)

	resp, err := c.query(ctx, http.MethodPost, "marketdata", map[string]any{
		"symbols": []models.Symbol{symbol},
		"eventTypes": []map[string]any{{
			"type":       "Candle",
			"candleType": interval,
			"fromTime":   fromTime.UTC().Format(wireTimeLayout),
			"toTime":     toTime.UTC().Format(wireTimeLayout),
		}},
	}, nil, 0)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Events []candleDto `json:"events"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.Events == nil {
		logger.Error("failed to receive market data for %s: %s", symbol, string(resp.body))
		return nil, responseErrorf(resp.body, "'%s' at '%s' market data not received",
			symbol, fromTime.UTC().Format(wireTimeLayout))
	}

	candles := make([]models.Candle, 0, len(payload.Events))
	for _, dto := range payload.Events {
		candle, mErr := dto.toDomain()
		if mErr != nil {
			return nil, mErr
		}
		candles = append(candles, candle)
	}
	logger.Debug("retrieved %d candles for %s", len(candles), symbol)
	return candles, nil
}
