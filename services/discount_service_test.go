package services

import (
	"testing"

	"offer-management-api/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyDiscountPercentage(t *testing.T) {
	tests := []struct {
		name   string
		coupon models.Coupon
		price  float64
		want   float64
	}{
		{
			name:   "plain percentage",
			coupon: models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: floatPtr(10)},
			price:  200,
			want:   180,
		},
		{
			name: "percentage under cap",
			coupon: models.Coupon{
				DiscountType:     models.DiscountPercentage,
				DiscountValue:    floatPtr(10),
				MaxDiscountValue: floatPtr(70),
			},
			price: 500,
			want:  450,
		},
		{
			name: "percentage clamped by cap",
			coupon: models.Coupon{
				DiscountType:     models.DiscountPercentage,
				DiscountValue:    floatPtr(10),
				MaxDiscountValue: floatPtr(70),
			},
			price: 1000,
			want:  930,
		},
		{
			name:   "full percentage never goes negative",
			coupon: models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: floatPtr(150)},
			price:  100,
			want:   0,
		},
		{
			name:   "zero discount value",
			coupon: models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: floatPtr(0)},
			price:  99.9,
			want:   99.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(&tt.coupon, tt.price)
			if got != tt.want {
				t.Errorf("ApplyDiscount(%s, %.2f) = %.2f, want %.2f", tt.name, tt.price, got, tt.want)
			}
		})
	}
}

func TestApplyDiscountFixed(t *testing.T) {
	coupon := models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: floatPtr(50)}

	if got := ApplyDiscount(&coupon, 120); got != 70 {
		t.Errorf("fixed discount: got %.2f, want 70.00", got)
	}

	// Fixed discount larger than the price clamps at zero.
	if got := ApplyDiscount(&coupon, 30); got != 0 {
		t.Errorf("fixed discount above price: got %.2f, want 0.00", got)
	}

	// max_discount_value is ignored for fixed discounts.
	coupon.MaxDiscountValue = floatPtr(10)
	if got := ApplyDiscount(&coupon, 120); got != 70 {
		t.Errorf("fixed discount with cap set: got %.2f, want 70.00", got)
	}
}

func TestApplyDiscountMinPurchase(t *testing.T) {
	coupon := models.Coupon{
		DiscountType:     models.DiscountFixed,
		DiscountValue:    floatPtr(50),
		MinPurchaseValue: floatPtr(100),
	}

	// Below the minimum the coupon silently does not apply.
	if got := ApplyDiscount(&coupon, 80); got != 80 {
		t.Errorf("below minimum: got %.2f, want 80.00", got)
	}

	// The boundary is inclusive: an exact match applies.
	if got := ApplyDiscount(&coupon, 100); got != 50 {
		t.Errorf("at minimum: got %.2f, want 50.00", got)
	}
}

func TestApplyDiscountDegradesSilently(t *testing.T) {
	if got := ApplyDiscount(nil, 123.45); got != 123.45 {
		t.Errorf("nil coupon: got %.2f, want 123.45", got)
	}

	// No discount value configured.
	coupon := models.Coupon{DiscountType: models.DiscountPercentage}
	if got := ApplyDiscount(&coupon, 123.45); got != 123.45 {
		t.Errorf("missing discount value: got %.2f, want 123.45", got)
	}
}

func TestDiscountAmount(t *testing.T) {
	coupon := models.Coupon{
		DiscountType:     models.DiscountPercentage,
		DiscountValue:    floatPtr(10),
		MaxDiscountValue: floatPtr(70),
	}

	if got := DiscountAmount(&coupon, 500); got != 50 {
		t.Errorf("raw amount under cap: got %.2f, want 50.00", got)
	}
	if got := DiscountAmount(&coupon, 1000); got != 70 {
		t.Errorf("raw amount at cap: got %.2f, want 70.00", got)
	}
	if got := DiscountAmount(nil, 1000); got != 0 {
		t.Errorf("nil coupon amount: got %.2f, want 0.00", got)
	}
}
