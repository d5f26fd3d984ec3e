package models

import "time"

// OrderLeg — нога ордера.
type OrderLeg struct {
	Instrument        Symbol
	PositionEffect    PositionEffect
	PositionCode      string
	LegRatio          float64
	Quantity          float64
	FilledQuantity    float64
	RemainingQuantity float64
	AveragePrice      float64
}

// Execution — исполнение по ордеру.
type Execution struct {
	Account                string
	ExecutionCode          string
	OrderCode              string
	UpdateOrderID          int64
	Version                int
	ClientOrderID          string
	ActionCode             string
	Instrument             Symbol // пустой, если биржа не прислала
	Status                 OrderStatus
	FinalStatus            bool
	FilledQuantity         float64
	LastQuantity           float64
	FilledQuantityNotional float64
	LastQuantityNotional   float64
	RemainingQuantity      float64
	LastPrice              float64
	AveragePrice           float64
	TransactionTime        time.Time
}

// CashTransaction — денежная проводка по ордеру (комиссия, финансирование и т.п.).
type CashTransaction struct {
	Account         string
	TransactionCode string
	OrderCode       string
	TradeCode       string
	Version         int
	ClientOrderID   string
	Type            CashTransactionType
	Value           float64
	Currency        Currency
	TransactionTime time.Time
}

// HistoricalOrder — ордер из истории со всеми ногами, исполнениями
// и денежными проводками.
type HistoricalOrder struct {
	Account          string
	Version          int
	OrderID          int64
	OrderCode        string
	ClientOrderID    string
	ActionCode       string
	LegCount         int
	Type             OrderType
	Instrument       Symbol
	Status           OrderStatus
	FinalStatus      bool
	Legs             []OrderLeg
	Side             TradeSide
	TIF              TimeInForce
	IssueTime        time.Time
	TransactionTime  time.Time
	Executions       []Execution
	CashTransactions []CashTransaction
}
