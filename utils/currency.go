// utils/currency.go - Currency symbols and price formatting
package utils

import (
	"fmt"
	"strings"
)

var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "AU$",
	"CHF": "CHF",
	"CNY": "¥",
	"ARS": "ARS$",
	"MXN": "MX$",
	"CLP": "CLP$",
}

var currencyNames = map[string]string{
	"BRL": "Real Brasileiro",
	"USD": "Dólar Americano",
	"EUR": "Euro",
	"GBP": "Libra Esterlina",
	"JPY": "Iene Japonês",
	"CAD": "Dólar Canadense",
	"AUD": "Dólar Australiano",
	"CHF": "Franco Suíço",
	"CNY": "Yuan Chinês",
	"ARS": "Peso Argentino",
	"MXN": "Peso Mexicano",
	"CLP": "Peso Chileno",
}

// CurrencySymbol returns the display symbol for a currency code. Unknown
// codes come back unchanged so callers never have to handle a miss.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return symbol
	}
	return code
}

// CurrencyName returns the full currency name, falling back to the code.
func CurrencyName(code string) string {
	if name, ok := currencyNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// FormatPrice renders a price as "{symbol} {value}" with two decimal places.
// No locale-aware thousands separators.
func FormatPrice(value float64, code string) string {
	return fmt.Sprintf("%s %.2f", CurrencySymbol(code), value)
}

// CurrencyCodes returns the known currency codes, for dropdowns and
// validation. Order is not guaranteed.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(currencySymbols))
	for code := range currencySymbols {
		codes = append(codes, code)
	}
	return codes
}
