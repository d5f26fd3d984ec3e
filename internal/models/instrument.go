package models

import "time"

// Instrument — инструмент после маппинга из провода. Иммутабелен.
type Instrument struct {
	Symbol   Symbol
	Currency Currency // пустая, если вариант инструмента не несёт валюту
	// TradingHours == nil, если площадка не прислала расписание
	TradingHours []TradingHour
}

// Sessions возвращает торговые окна инструмента относительно focal.
func (i Instrument) Sessions(focal time.Time) ([]Session, error) {
	if len(i.TradingHours) == 0 {
		return nil, nil
	}
	return BuildSessions(i.TradingHours, focal)
}
