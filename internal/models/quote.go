package models

import "time"

// Quote — котировка bid/ask на момент времени.
type Quote struct {
	Symbol Symbol
	Bid    float64
	Ask    float64
	Time   time.Time
}
