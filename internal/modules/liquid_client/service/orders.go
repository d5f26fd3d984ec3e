package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"

	"liquid_relay/internal/models"
	"liquid_relay/pkg/logger"
)

const (
	orderCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeLength   = 7
)

// OrderRequest — параметры выставляемого ордера. Необязательные поля
// не попадают в тело запроса, если не заданы (именно опускаются, не null).
type OrderRequest struct {
	Symbol   models.Symbol
	Type     models.OrderType
	Side     models.TradeSide
	Effect   models.PositionEffect
	Quantity float64

	PositionCode string
	LimitPrice   *float64
	StopPrice    *float64
}

// PlaceOrder выставляет ордер. Клиентский orderCode генерируется на каждый
// вызов, tif всегда GTC. Возвращает пару серверных идентификаторов.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (string, string, error) {
	orderCode := randomOrderCode()
	logger.Info("placing %s %s order for %s (qty: %f, effect: %s, code: %s)",
		order.Side, order.Type, order.Symbol, order.Quantity, order.Effect, orderCode)

	data := map[string]any{
		"orderCode":      orderCode,
		"type":           order.Type,
		"instrument":     order.Symbol,
		"quantity":       order.Quantity,
		"side":           order.Side,
		"positionEffect": order.Effect,
		"tif":            "GTC",
	}
	if order.PositionCode != "" {
		data["positionCode"] = order.PositionCode
	}
	if order.LimitPrice != nil {
		data["limitPrice"] = *order.LimitPrice
	}
	if order.StopPrice != nil {
		data["stopPrice"] = *order.StopPrice
	}

	resp, err := c.query(ctx, http.MethodPost, "accounts/"+c.accountCode+"/orders", data, nil, 0)
	if err != nil {
		return "", "", err
	}

	dec := json.NewDecoder(bytes.NewReader(resp.body))
	dec.UseNumber()
	var payload map[string]any
	_ = dec.Decode(&payload)
	if _, ok := payload["orderId"]; !ok {
		logger.Error("order placement failed for %s: %s", orderCode, string(resp.body))
		return "", "", responseErrorf(resp.body,
			"'%s' '%s' '%s' order to '%s' amount '%v' not successful",
			order.Symbol, order.Type, order.Side, order.Effect, order.Quantity)
	}

	orderID := stringifyID(payload["orderId"])
	updateOrderID := stringifyID(payload["updateOrderId"])
	logger.Info("order successfully placed. orderId: %s, updateOrderId: %s", orderID, updateOrderID)
	if c.n != nil {
		c.n.Sendf("liquid: %s %s %s qty=%v orderId=%s",
			order.Side, order.Type, order.Symbol, order.Quantity, orderID)
	}
	return orderID, updateOrderID, nil
}

// идентификаторы для нас непрозрачны: сервер может прислать строку или число
func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func randomOrderCode() string {
	code := make([]byte, orderCodeLength)
	for i := range code {
		code[i] = orderCodeAlphabet[rand.Intn(len(orderCodeAlphabet))]
	}
	return string(code)
}
