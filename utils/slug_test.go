package utils

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smartphone X", "smartphone-x"},
		{"Eletrônicos e Informática", "eletronicos-e-informatica"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"UPPER_case_ok", "upper_case_ok"},
		{"promoção!!! 50% OFF", "promocao-50-off"},
		{"", "item"},
		{"!!!", "item"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
