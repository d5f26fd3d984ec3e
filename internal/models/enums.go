package models

// TradeSide — направление сделки.
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

func (s TradeSide) Valid() bool { return s == SideBuy || s == SideSell }

// PositionEffect — что делает ордер с позицией.
type PositionEffect string

const (
	EffectOpen  PositionEffect = "OPEN"
	EffectClose PositionEffect = "CLOSE"
)

func (e PositionEffect) Valid() bool { return e == EffectOpen || e == EffectClose }

// OrderType — тип ордера.
type OrderType string

const (
	OrderMarket OrderType = "MARKET"
	OrderLimit  OrderType = "LIMIT"
	OrderStop   OrderType = "STOP"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderMarket, OrderLimit, OrderStop:
		return true
	}
	return false
}

// OrderStatus — статус ордера на стороне брокера.
type OrderStatus string

const (
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusWorking   OrderStatus = "WORKING"
	StatusCanceled  OrderStatus = "CANCELED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusExpired   OrderStatus = "EXPIRED"
	StatusRejected  OrderStatus = "REJECTED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusAccepted, StatusWorking, StatusCanceled, StatusCompleted, StatusExpired, StatusRejected:
		return true
	}
	return false
}

// TimeInForce — срок жизни ордера.
type TimeInForce string

const (
	TifGTC TimeInForce = "GTC"
	TifDay TimeInForce = "DAY"
	TifGTD TimeInForce = "GTD"
)

func (t TimeInForce) Valid() bool {
	switch t {
	case TifGTC, TifDay, TifGTD:
		return true
	}
	return false
}

// CashTransactionType — тип денежной проводки по ордеру.
type CashTransactionType string

const (
	TxCommission                CashTransactionType = "COMMISSION"
	TxFinancing                 CashTransactionType = "FINANCING"
	TxDeposit                   CashTransactionType = "DEPOSIT"
	TxWithdrawal                CashTransactionType = "WITHDRAWAL"
	TxSettlement                CashTransactionType = "SETTLEMENT"
	TxCost                      CashTransactionType = "COST"
	TxExDividend                CashTransactionType = "EX_DIVIDEND"
	TxRebate                    CashTransactionType = "REBATE"
	TxNegativeBalanceCorrection CashTransactionType = "NEGATIVE_BALANCE_CORRECTION"
	TxBust                      CashTransactionType = "BUST"
)

func (t CashTransactionType) Valid() bool {
	switch t {
	case TxCommission, TxFinancing, TxDeposit, TxWithdrawal, TxSettlement,
		TxCost, TxExDividend, TxRebate, TxNegativeBalanceCorrection, TxBust:
		return true
	}
	return false
}

// EventType — вид события торгового расписания.
type EventType string

const (
	SessionOpen  EventType = "SESSION_OPEN"
	SessionClose EventType = "SESSION_CLOSE"
)

func (e EventType) Valid() bool { return e == SessionOpen || e == SessionClose }

// CandleInterval — интервал свечи, как его понимает провод.
// Месячный интервал валиден на проводе, но отклоняется при маппинге в домен.
type CandleInterval string

const (
	IntervalMinute    CandleInterval = "m"
	Interval5Minutes  CandleInterval = "5m"
	Interval15Minutes CandleInterval = "15m"
	Interval30Minutes CandleInterval = "30m"
	IntervalHour      CandleInterval = "h"
	Interval2Hours    CandleInterval = "2h"
	Interval4Hours    CandleInterval = "4h"
	IntervalDay       CandleInterval = "d"
	IntervalWeek      CandleInterval = "w"
	IntervalMonth     CandleInterval = "mo"
)

func (i CandleInterval) Valid() bool {
	switch i {
	case IntervalMinute, Interval5Minutes, Interval15Minutes, Interval30Minutes,
		IntervalHour, Interval2Hours, Interval4Hours, IntervalDay, IntervalWeek, IntervalMonth:
		return true
	}
	return false
}
