package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

// GetQuotes запрашивает пачку котировок. Ответ обязан содержать ровно
// по событию на каждый запрошенный тикер.
func (c *Client) GetQuotes(ctx context.Context, symbols []models.Symbol) ([]models.Quote, error) {
	joined := joinSymbols(symbols)
	resp, err := c.query(ctx, http.MethodPost, "marketdata", map[string]any{
		"symbols":    symbols,
		"eventTypes": []map[string]any{{"type": "Quote"}},
	}, nil, 0)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Events []json.RawMessage `json:"events"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.Events == nil {
		logger.Error("failed to receive quotes for %s: %s", joined, string(resp.body))
		return nil, responseErrorf(resp.body, "'%s' quotes not received", joined)
	}
	if len(payload.Events) != len(symbols) {
		logger.Error("failed to receive all quotes for %s: %s", joined, string(resp.body))
		return nil, responseErrorf(resp.body, "All of '%s' quotes not received", joined)
	}

	quotes := make([]models.Quote, 0, len(payload.Events))
	for _, raw := range payload.Events {
		var dto quoteDto
		if uErr := json.Unmarshal(raw, &dto); uErr != nil {
			return nil, responseErrorf(resp.body, "'%s' quotes not received", joined)
		}
		quote, qErr := dto.toDomain()
		if qErr != nil {
			return nil, qErr
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func joinSymbols(symbols []models.Symbol) string {
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}
