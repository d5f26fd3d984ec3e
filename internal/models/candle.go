package models

import "time"

// Candle — OHLCV-свеча с интервалом не длиннее недели.
type Candle struct {
	Symbol   Symbol
	Interval CandleInterval
	Open     float64
	Close    float64
	High     float64
	Low      float64
	Volume   float64
	Time     time.Time
}
