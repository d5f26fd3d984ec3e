package service

import (
	"context"
	"encoding/json"
	"net/http"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

// GetOpenPositions отдаёт открытые позиции счёта.
func (c *Client) GetOpenPositions(ctx context.Context) ([]models.Position, error) {
	logger.Info("fetching open positions")
	resp, err := c.query(ctx, http.MethodGet, "accounts/"+c.accountCode+"/positions", nil, nil, 0)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Positions []positionDto `json:"positions"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.Positions == nil {
		logger.Error("failed to receive positions: %s", string(resp.body))
		return nil, responseErrorf(resp.body, "positions not received")
	}

	positions := make([]models.Position, 0, len(payload.Positions))
	for _, dto := range payload.Positions {
		position, mErr := dto.toDomain()
		if mErr != nil {
			return nil, mErr
		}
		positions = append(positions, position)
	}
	logger.Debug("successfully parsed %d open positions", len(positions))
	return positions, nil
}
