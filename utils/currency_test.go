package utils

import (
	"testing"
)

func TestCurrencySymbolKnownCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"BRL", "R$"},
		{"brl", "R$"},
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"CAD", "CA$"},
		{"CHF", "CHF"},
	}

	for _, tt := range tests {
		if got := CurrencySymbol(tt.code); got != tt.want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCurrencySymbolUnknownCodePassesThrough(t *testing.T) {
	if got := CurrencySymbol("XYZ"); got != "XYZ" {
		t.Errorf("CurrencySymbol(XYZ) = %q, want XYZ", got)
	}
}

func TestCurrencySymbolsNonEmptyForAllCodes(t *testing.T) {
	for _, code := range CurrencyCodes() {
		if CurrencySymbol(code) == "" {
			t.Errorf("empty symbol for %q", code)
		}
		if CurrencyName(code) == "" {
			t.Errorf("empty name for %q", code)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		value float64
		code  string
		want  string
	}{
		{99.9, "BRL", "R$ 99.90"},
		{100, "USD", "$ 100.00"},
		{0, "BRL", "R$ 0.00"},
		{1234.567, "EUR", "€ 1234.57"},
		{50, "XYZ", "XYZ 50.00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.value, tt.code); got != tt.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.value, tt.code, got, tt.want)
		}
	}
}
