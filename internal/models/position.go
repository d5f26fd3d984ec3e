package models

import "time"

// Position — открытая позиция на счёте.
type Position struct {
	Account          string
	Version          int
	PositionCode     string
	Symbol           Symbol
	Quantity         float64
	Side             TradeSide
	QuantityNotional float64
	OpenTime         time.Time
	OpenPrice        float64
	LastUpdateTime   time.Time
	MarginRate       float64
}
