package models

import "strings"

// Currency — код валюты из закрытого набора.
type Currency string

func (c Currency) String() string { return string(c) }

func (c Currency) Valid() bool {
	_, ok := validCurrencies[c]
	return ok
}

// CleanCurrency нормализует валюту из провода: провайдер присылает коды
// с хвостовым маркером "$" (например "USD$"), убираем его и пробелы.
func CleanCurrency(raw string) Currency {
	return Currency(strings.TrimSpace(strings.ReplaceAll(raw, "$", "")))
}

var validCurrencies = map[Currency]struct{}{
	"CNH":  {},
	"ILS":  {},
	"MXN":  {},
	"THB":  {},
	"CZK":  {},
	"HKD":  {},
	"HUF":  {},
	"PLN":  {},
	"TRY":  {},
	"ZAR":  {},
	"DKK":  {},
	"NOK":  {},
	"SGD":  {},
	"GBP":  {},
	"SEK":  {},
	"NZD":  {},
	"AUD":  {},
	"CAD":  {},
	"CHF":  {},
	"JPY":  {},
	"EUR":  {},
	"USD":  {},
	"USDT": {},
}
