package service

import (
	"encoding/json"
	"time"

	"liquid_relay/internal/models"
)

// Проводные формы ответов. Значения вне закрытых перечислений — это
// нарушение формы (ResponseError); нарушение бизнес-правила на валидной
// форме (месячная свеча, кривой weekDay) — models.RuleError.

type tradingHourDto struct {
	WeekDay   string `json:"weekDay"`
	EventType string `json:"eventType"`
}

func (d tradingHourDto) toDomain() (models.TradingHour, error) {
	event := models.EventType(d.EventType)
	if !event.Valid() {
		return models.TradingHour{}, responseErrorf(nil, "unsupported trading hour event type %q", d.EventType)
	}
	return models.ParseTradingHour(d.WeekDay, event)
}

// Инструменты приходят полиморфным списком: вариант выбирается
// по дискриминатору type до разбора остальных полей.
type instrumentBaseDto struct {
	Symbol         string           `json:"symbol"`
	Version        int              `json:"version"`
	Description    string           `json:"description"`
	PriceIncrement float64          `json:"priceIncrement"`
	PipSize        float64          `json:"pipSize"`
	LotSize        float64          `json:"lotSize"`
	Multiplier     float64          `json:"multiplier"`
	TradingHours   []tradingHourDto `json:"tradingHours"`
}

type productDto struct {
	instrumentBaseDto
}

type currencyDto struct {
	instrumentBaseDto
	CurrencyType string `json:"currencyType"`
}

type forexDto struct {
	instrumentBaseDto
	Currency      string `json:"currency"`
	FirstCurrency string `json:"firstCurrency"`
	AssetClass    string `json:"assetClass"`
}

type cfdDto struct {
	instrumentBaseDto
	Currency   string `json:"currency"`
	AssetClass string `json:"assetClass"`
}

type cfdStockDto struct {
	instrumentBaseDto
	Currency   string `json:"currency"`
	AssetClass string `json:"assetClass"`
}

func (d instrumentBaseDto) toDomain(currency models.Currency) (models.Instrument, error) {
	symbol := models.Symbol(d.Symbol)
	if !symbol.Valid() {
		return models.Instrument{}, responseErrorf(nil, "unsupported symbol %q", d.Symbol)
	}
	var hours []models.TradingHour
	if len(d.TradingHours) > 0 {
		hours = make([]models.TradingHour, 0, len(d.TradingHours))
		for _, th := range d.TradingHours {
			parsed, err := th.toDomain()
			if err != nil {
				return models.Instrument{}, err
			}
			hours = append(hours, parsed)
		}
	}
	return models.Instrument{Symbol: symbol, Currency: currency, TradingHours: hours}, nil
}

func checkCurrency(raw string) (models.Currency, error) {
	currency := models.Currency(raw)
	if !currency.Valid() {
		return "", responseErrorf(nil, "unsupported currency %q", raw)
	}
	return currency, nil
}

// decodeInstrument разбирает один элемент списка instruments.
// Валюта доезжает до домена только у FOREX и CFD.
func decodeInstrument(raw json.RawMessage) (models.Instrument, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return models.Instrument{}, responseErrorf(raw, "instrument is not an object")
	}
	switch head.Type {
	case "PRODUCT":
		var dto productDto
		if err := json.Unmarshal(raw, &dto); err != nil {
			return models.Instrument{}, responseErrorf(raw, "malformed PRODUCT instrument")
		}
		return dto.toDomain("")
	case "CURRENCY":
		var dto currencyDto
		if err := json.Unmarshal(raw, &dto); err != nil {
			return models.Instrument{}, responseErrorf(raw, "malformed CURRENCY instrument")
		}
		return dto.toDomain("")
	case "FOREX":
		var dto forexDto
		if err := json.Unmarshal(raw, &dto); err != nil {
			return models.Instrument{}, responseErrorf(raw, "malformed FOREX instrument")
		}
		currency, cErr := checkCurrency(dto.Currency)
		if cErr != nil {
			return models.Instrument{}, cErr
		}
		return dto.toDomain(currency)
	case "CFD":
		var dto cfdDto
		if err := json.Unmarshal(raw, &dto); err != nil {
			return models.Instrument{}, responseErrorf(raw, "malformed CFD instrument")
		}
		currency, cErr := checkCurrency(dto.Currency)
		if cErr != nil {
			return models.Instrument{}, cErr
		}
		return dto.toDomain(currency)
	case "CFD_STOCK":
		var dto cfdStockDto
		if err := json.Unmarshal(raw, &dto); err != nil {
			return models.Instrument{}, responseErrorf(raw, "malformed CFD_STOCK instrument")
		}
		if _, cErr := checkCurrency(dto.Currency); cErr != nil {
			return models.Instrument{}, cErr
		}
		return dto.toDomain("")
	default:
		return models.Instrument{}, responseErrorf(raw, "unsupported instrument type %q", head.Type)
	}
}

type quoteDto struct {
	Type   string    `json:"type"`
	Symbol string    `json:"symbol"`
	Bid    float64   `json:"bid"`
	Ask    float64   `json:"ask"`
	Time   time.Time `json:"time"`
}

func (d quoteDto) toDomain() (models.Quote, error) {
	if d.Type != "Quote" {
		return models.Quote{}, responseErrorf(nil, "unexpected event type %q, want Quote", d.Type)
	}
	symbol := models.Symbol(d.Symbol)
	if !symbol.Valid() {
		return models.Quote{}, responseErrorf(nil, "unsupported symbol %q", d.Symbol)
	}
	return models.Quote{Symbol: symbol, Bid: d.Bid, Ask: d.Ask, Time: d.Time}, nil
}

type candleDto struct {
	Type       string    `json:"type"`
	Symbol     string    `json:"symbol"`
	CandleType string    `json:"candleType"`
	Open       float64   `json:"open"`
	Close      float64   `json:"close"`
	High       float64   `json:"high"`
	Low        float64   `json:"low"`
	Volume     float64   `json:"volume"`
	Time       time.Time `json:"time"`
}

func (d candleDto) toDomain() (models.Candle, error) {
	if d.Type != "Candle" {
		return models.Candle{}, responseErrorf(nil, "unexpected event type %q, want Candle", d.Type)
	}
	symbol := models.Symbol(d.Symbol)
	if !symbol.Valid() {
		return models.Candle{}, responseErrorf(nil, "unsupported symbol %q", d.Symbol)
	}
	interval := models.CandleInterval(d.CandleType)
	if !interval.Valid() {
		return models.Candle{}, responseErrorf(nil, "unsupported candle interval %q", d.CandleType)
	}
	// месячный интервал валиден на проводе, но не в домене
	if interval == models.IntervalMonth {
		return models.Candle{}, &models.RuleError{
			Message: "'" + d.Symbol + "' must have up to a 1-week interval",
		}
	}
	return models.Candle{
		Symbol:   symbol,
		Interval: interval,
		Open:     d.Open,
		Close:    d.Close,
		High:     d.High,
		Low:      d.Low,
		Volume:   d.Volume,
		Time:     d.Time,
	}, nil
}

type positionDto struct {
	Account          string    `json:"account"`
	Version          int       `json:"version"`
	PositionCode     string    `json:"positionCode"`
	Symbol           string    `json:"symbol"`
	Quantity         float64   `json:"quantity"`
	Side             string    `json:"side"`
	QuantityNotional float64   `json:"quantityNotional"`
	OpenTime         time.Time `json:"openTime"`
	OpenPrice        float64   `json:"openPrice"`
	LastUpdateTime   time.Time `json:"lastUpdateTime"`
	MarginRate       float64   `json:"marginRate"`
}

func (d positionDto) toDomain() (models.Position, error) {
	symbol := models.Symbol(d.Symbol)
	if !symbol.Valid() {
		return models.Position{}, responseErrorf(nil, "unsupported symbol %q", d.Symbol)
	}
	side := models.TradeSide(d.Side)
	if !side.Valid() {
		return models.Position{}, responseErrorf(nil, "unsupported trade side %q", d.Side)
	}
	return models.Position{
		Account:          d.Account,
		Version:          d.Version,
		PositionCode:     d.PositionCode,
		Symbol:           symbol,
		Quantity:         d.Quantity,
		Side:             side,
		QuantityNotional: d.QuantityNotional,
		OpenTime:         d.OpenTime,
		OpenPrice:        d.OpenPrice,
		LastUpdateTime:   d.LastUpdateTime,
		MarginRate:       d.MarginRate,
	}, nil
}

type orderLegDto struct {
	Instrument        string  `json:"instrument"`
	PositionEffect    string  `json:"positionEffect"`
	PositionCode      string  `json:"positionCode"`
	LegRatio          float64 `json:"legRatio"`
	Quantity          float64 `json:"quantity"`
	FilledQuantity    float64 `json:"filledQuantity"`
	RemainingQuantity float64 `json:"remainingQuantity"`
	AveragePrice      float64 `json:"averagePrice"`
}

func (d orderLegDto) toDomain() (models.OrderLeg, error) {
	symbol := models.Symbol(d.Instrument)
	if !symbol.Valid() {
		return models.OrderLeg{}, responseErrorf(nil, "unsupported symbol %q", d.Instrument)
	}
	effect := models.PositionEffect(d.PositionEffect)
	if !effect.Valid() {
		return models.OrderLeg{}, responseErrorf(nil, "unsupported position effect %q", d.PositionEffect)
	}
	return models.OrderLeg{
		Instrument:        symbol,
		PositionEffect:    effect,
		PositionCode:      d.PositionCode,
		LegRatio:          d.LegRatio,
		Quantity:          d.Quantity,
		FilledQuantity:    d.FilledQuantity,
		RemainingQuantity: d.RemainingQuantity,
		AveragePrice:      d.AveragePrice,
	}, nil
}

type executionDto struct {
	Account                string    `json:"account"`
	ExecutionCode          string    `json:"executionCode"`
	OrderCode              string    `json:"orderCode"`
	UpdateOrderID          int64     `json:"updateOrderId"`
	Version                int       `json:"version"`
	ClientOrderID          string    `json:"clientOrderId"`
	ActionCode             string    `json:"actionCode"`
	Instrument             string    `json:"instrument"`
	Status                 string    `json:"status"`
	FinalStatus            bool      `json:"finalStatus"`
	FilledQuantity         float64   `json:"filledQuantity"`
	LastQuantity           float64   `json:"lastQuantity"`
	FilledQuantityNotional float64   `json:"filledQuantityNotional"`
	LastQuantityNotional   float64   `json:"lastQuantityNotional"`
	RemainingQuantity      float64   `json:"remainingQuantity"`
	LastPrice              float64   `json:"lastPrice"`
	AveragePrice           float64   `json:"averagePrice"`
	TransactionTime        time.Time `json:"transactionTime"`
}

func (d executionDto) toDomain() (models.Execution, error) {
	var symbol models.Symbol
	if d.Instrument != "" {
		symbol = models.Symbol(d.Instrument)
		if !symbol.Valid() {
			return models.Execution{}, responseErrorf(nil, "unsupported symbol %q", d.Instrument)
		}
	}
	status := models.OrderStatus(d.Status)
	if !status.Valid() {
		return models.Execution{}, responseErrorf(nil, "unsupported order status %q", d.Status)
	}
	return models.Execution{
		Account:                d.Account,
		ExecutionCode:          d.ExecutionCode,
		OrderCode:              d.OrderCode,
		UpdateOrderID:          d.UpdateOrderID,
		Version:                d.Version,
		ClientOrderID:          d.ClientOrderID,
		ActionCode:             d.ActionCode,
		Instrument:             symbol,
		Status:                 status,
		FinalStatus:            d.FinalStatus,
		FilledQuantity:         d.FilledQuantity,
		LastQuantity:           d.LastQuantity,
		FilledQuantityNotional: d.FilledQuantityNotional,
		LastQuantityNotional:   d.LastQuantityNotional,
		RemainingQuantity:      d.RemainingQuantity,
		LastPrice:              d.LastPrice,
		AveragePrice:           d.AveragePrice,
		TransactionTime:        d.TransactionTime,
	}, nil
}

type cashTransactionDto struct {
	Account         string    `json:"account"`
	TransactionCode string    `json:"transactionCode"`
	OrderCode       string    `json:"orderCode"`
	TradeCode       string    `json:"tradeCode"`
	Version         int       `json:"version"`
	ClientOrderID   string    `json:"clientOrderId"`
	Type            string    `json:"type"`
	Value           float64   `json:"value"`
	Currency        string    `json:"currency"`
	TransactionTime time.Time `json:"transactionTime"`
}

func (d cashTransactionDto) toDomain() (models.CashTransaction, error) {
	txType := models.CashTransactionType(d.Type)
	if !txType.Valid() {
		return models.CashTransaction{}, responseErrorf(nil, "unsupported cash transaction type %q", d.Type)
	}
	// валюта проводки приходит с хвостовым "$"
	currency := models.CleanCurrency(d.Currency)
	if !currency.Valid() {
		return models.CashTransaction{}, responseErrorf(nil, "unsupported currency %q", d.Currency)
	}
	return models.CashTransaction{
		Account:         d.Account,
		TransactionCode: d.TransactionCode,
		OrderCode:       d.OrderCode,
		TradeCode:       d.TradeCode,
		Version:         d.Version,
		ClientOrderID:   d.ClientOrderID,
		Type:            txType,
		Value:           d.Value,
		Currency:        currency,
		TransactionTime: d.TransactionTime,
	}, nil
}

type historicalOrderDto struct {
	Account          string               `json:"account"`
	Version          int                  `json:"version"`
	OrderID          int64                `json:"orderId"`
	OrderCode        string               `json:"orderCode"`
	ClientOrderID    string               `json:"clientOrderId"`
	ActionCode       string               `json:"actionCode"`
	LegCount         int                  `json:"legCount"`
	Type             string               `json:"type"`
	Instrument       string               `json:"instrument"`
	Status           string               `json:"status"`
	FinalStatus      bool                 `json:"finalStatus"`
	Legs             []orderLegDto        `json:"legs"`
	Side             string               `json:"side"`
	TIF              string               `json:"tif"`
	IssueTime        time.Time            `json:"issueTime"`
	TransactionTime  time.Time            `json:"transactionTime"`
	Executions       []executionDto       `json:"executions"`
	CashTransactions []cashTransactionDto `json:"cashTransactions"`
}

func (d historicalOrderDto) toDomain() (models.HistoricalOrder, error) {
	orderType := models.OrderType(d.Type)
	if !orderType.Valid() {
		return models.HistoricalOrder{}, responseErrorf(nil, "unsupported order type %q", d.Type)
	}
	symbol := models.Symbol(d.Instrument)
	if !symbol.Valid() {
		return models.HistoricalOrder{}, responseErrorf(nil, "unsupported symbol %q", d.Instrument)
	}
	status := models.OrderStatus(d.Status)
	if !status.Valid() {
		return models.HistoricalOrder{}, responseErrorf(nil, "unsupported order status %q", d.Status)
	}
	side := models.TradeSide(d.Side)
	if !side.Valid() {
		return models.HistoricalOrder{}, responseErrorf(nil, "unsupported trade side %q", d.Side)
	}
	tif := models.TimeInForce(d.TIF)
	if !tif.Valid() {
		return models.HistoricalOrder{}, responseErrorf(nil, "unsupported time-in-force %q", d.TIF)
	}

	legs := make([]models.OrderLeg, 0, len(d.Legs))
	for _, legDto := range d.Legs {
		leg, err := legDto.toDomain()
		if err != nil {
			return models.HistoricalOrder{}, err
		}
		legs = append(legs, leg)
	}
	executions := make([]models.Execution, 0, len(d.Executions))
	for _, execDto := range d.Executions {
		exec, err := execDto.toDomain()
		if err != nil {
			return models.HistoricalOrder{}, err
		}
		executions = append(executions, exec)
	}
	transactions := make([]models.CashTransaction, 0, len(d.CashTransactions))
	for _, txDto := range d.CashTransactions {
		tx, err := txDto.toDomain()
		if err != nil {
			return models.HistoricalOrder{}, err
		}
		transactions = append(transactions, tx)
	}

	return models.HistoricalOrder{
		Account:          d.Account,
		Version:          d.Version,
		OrderID:          d.OrderID,
		OrderCode:        d.OrderCode,
		ClientOrderID:    d.ClientOrderID,
		ActionCode:       d.ActionCode,
		LegCount:         d.LegCount,
		Type:             orderType,
		Instrument:       symbol,
		Status:           status,
		FinalStatus:      d.FinalStatus,
		Legs:             legs,
		Side:             side,
		TIF:              tif,
		IssueTime:        d.IssueTime,
		TransactionTime:  d.TransactionTime,
		Executions:       executions,
		CashTransactions: transactions,
	}, nil
}
