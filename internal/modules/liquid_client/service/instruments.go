package service

import (
	"context"
	"encoding/json"
	"net/http"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

// GetInstruments отдаёт все инструменты площадки.
func (c *Client) GetInstruments(ctx context.Context) ([]models.Instrument, error) {
	logger.Info("fetching instruments")
	resp, err := c.query(ctx, http.MethodGet, "instruments/query", nil, nil, 0)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Instruments []json.RawMessage `json:"instruments"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.Instruments == nil {
		logger.Error("invalid instruments response: %s", string(resp.body))
		return nil, responseErrorf(resp.body, "instruments not received")
	}

	result := make([]models.Instrument, 0, len(payload.Instruments))
	for _, raw := range payload.Instruments {
		instrument, mErr := decodeInstrument(raw)
		if mErr != nil {
			return nil, mErr
		}
		result = append(result, instrument)
	}
	logger.Debug("successfully parsed %d instruments", len(result))
	return result, nil
}
