package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestBuildCaptionWithNetworkDecoration(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .offers. WHERE offer_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(1)},
			columns: []string{"offer_id", "product_id", "vendor_name", "price", "currency"},
			rows:    [][]driver.Value{{int64(1), int64(2), "Loja X", float64(500), "BRL"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .products. WHERE product_id = \?`),
			args:    []driver.Value{int64(2)},
			columns: []string{"product_id", "name", "slug"},
			rows:    [][]driver.Value{{int64(2), "Smartphone X", "smartphone-x"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT n\.name AS name, v\.value AS value FROM offer_namespace_values`),
			args:    []driver.Value{int64(1)},
			columns: []string{"name", "value"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .templates. WHERE template_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(3)},
			columns: []string{"template_id", "body"},
			rows:    [][]driver.Value{{int64(3), "Price: {price}, Code: {coupon_code}"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .template_social_network_custom. WHERE template_id = \? AND social_network = \?`),
			args:    []driver.Value{int64(3), "whatsapp"},
			columns: []string{"id", "template_id", "social_network", "custom_body"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .social_network_configs. WHERE network = \?`),
			args:    []driver.Value{"whatsapp"},
			columns: []string{"config_id", "network", "prefix_text", "suffix_text", "active"},
			rows:    [][]driver.Value{{int64(1), "whatsapp", "💰 ", " 🔥", int64(1)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewShareService(db)

	breakdown, err := svc.BuildCaption(BuildCaptionInput{
		OfferID:    1,
		TemplateID: 3,
		Network:    "WhatsApp",
	}, time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildCaption returned error: %v", err)
	}

	want := "💰 Price: R$ 500.00, Code: {coupon_code} 🔥"
	if breakdown.Caption != want {
		t.Fatalf("caption = %q, want %q", breakdown.Caption, want)
	}
	if breakdown.UsedOverride {
		t.Fatal("expected no override to be used")
	}
	if breakdown.OriginalPrice != 500 || breakdown.FinalPrice != 500 || breakdown.DiscountAmount != 0 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}
	if breakdown.Network != "whatsapp" {
		t.Fatalf("network = %q, want whatsapp", breakdown.Network)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBuildCaptionWithCouponBreakdown(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .offers. WHERE offer_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(1)},
			columns: []string{"offer_id", "product_id", "vendor_name", "price", "currency"},
			rows:    [][]driver.Value{{int64(1), int64(2), "Loja X", float64(500), "BRL"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .products. WHERE product_id = \?`),
			args:    []driver.Value{int64(2)},
			columns: []string{"product_id", "name", "slug"},
			rows:    [][]driver.Value{{int64(2), "Smartphone X", "smartphone-x"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT n\.name AS name, v\.value AS value FROM offer_namespace_values`),
			args:    []driver.Value{int64(1)},
			columns: []string{"name", "value"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .templates. WHERE template_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(3)},
			columns: []string{"template_id", "body"},
			rows:    [][]driver.Value{{int64(3), "Use {coupon_code}: {discounted_price}"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .coupons. WHERE coupon_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(9)},
			columns: []string{"coupon_id", "seller_id", "code", "active", "discount_type", "discount_value"},
			rows:    [][]driver.Value{{int64(9), int64(4), "PROMO10", int64(1), "percentage", float64(10)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .sellers. WHERE seller_id = \?`),
			args:    []driver.Value{int64(4)},
			columns: []string{"seller_id", "name", "slug"},
			rows:    [][]driver.Value{{int64(4), "Mercado Livre", "mercado-livre"}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewShareService(db)
	couponID := 9

	breakdown, err := svc.BuildCaption(BuildCaptionInput{
		OfferID:    1,
		TemplateID: 3,
		CouponID:   &couponID,
	}, time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildCaption returned error: %v", err)
	}

	if breakdown.Caption != "Use PROMO10: R$ 450.00" {
		t.Fatalf("caption = %q", breakdown.Caption)
	}
	if breakdown.DiscountAmount != 50 || breakdown.FinalPrice != 450 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A deactivated or expired coupon must not discount the caption; the build
// fails instead of silently applying a coupon members can no longer redeem.
func TestBuildCaptionRejectsUnavailableCoupon(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	expired := now.Add(-24 * time.Hour)

	cases := []struct {
		name      string
		active    int64
		expiresAt driver.Value
	}{
		{"inactive", 0, nil},
		{"expired", 1, expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps := []*queryStep{
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT \* FROM .offers. WHERE offer_id = \? AND delete_at IS NULL`),
					args:    []driver.Value{int64(1)},
					columns: []string{"offer_id", "product_id", "vendor_name", "price", "currency"},
					rows:    [][]driver.Value{{int64(1), int64(2), "Loja X", float64(500), "BRL"}},
				},
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT \* FROM .products. WHERE product_id = \?`),
					args:    []driver.Value{int64(2)},
					columns: []string{"product_id", "name", "slug"},
					rows:    [][]driver.Value{{int64(2), "Smartphone X", "smartphone-x"}},
				},
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT n\.name AS name, v\.value AS value FROM offer_namespace_values`),
					args:    []driver.Value{int64(1)},
					columns: []string{"name", "value"},
					rows:    [][]driver.Value{},
				},
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT \* FROM .templates. WHERE template_id = \? AND delete_at IS NULL`),
					args:    []driver.Value{int64(3)},
					columns: []string{"template_id", "body"},
					rows:    [][]driver.Value{{int64(3), "Use {coupon_code}: {discounted_price}"}},
				},
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT \* FROM .coupons. WHERE coupon_id = \? AND delete_at IS NULL`),
					args:    []driver.Value{int64(9)},
					columns: []string{"coupon_id", "seller_id", "code", "active", "discount_type", "discount_value", "expires_at"},
					rows:    [][]driver.Value{{int64(9), int64(4), "PROMO10", tc.active, "percentage", float64(10), tc.expiresAt}},
				},
			}

			db, state, cleanup := newScriptedGormDB(t, steps)
			defer cleanup()

			svc := NewShareService(db)
			couponID := 9

			_, err := svc.BuildCaption(BuildCaptionInput{
				OfferID:    1,
				TemplateID: 3,
				CouponID:   &couponID,
			}, now)
			if !errors.Is(err, ErrCouponUnavailable) {
				t.Fatalf("expected ErrCouponUnavailable, got %v", err)
			}

			if err := state.verifyComplete(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestBuildCaptionOfferNotFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .offers. WHERE offer_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{int64(42)},
			columns: []string{"offer_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewShareService(db)

	_, err := svc.BuildCaption(BuildCaptionInput{OfferID: 42, TemplateID: 1}, time.Now())
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
