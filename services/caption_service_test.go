package services

import (
	"testing"
	"time"

	"offer-management-api/models"
)

func strPtr(s string) *string { return &s }

func testOffer() *models.Offer {
	return &models.Offer{
		OfferID:    1,
		VendorName: "Loja Exemplo",
		Price:      99.9,
		Currency:   "BRL",
		Product: models.Product{
			ProductID: 1,
			Name:      "Smartphone X",
			Slug:      "smartphone-x",
		},
	}
}

func renderAt() time.Time {
	return time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
}

func TestRenderCaptionLeavesUnknownPlaceholdersLiteral(t *testing.T) {
	template := &models.Template{Body: "Price: {price}, Code: {coupon_code}"}

	got := RenderCaption(CaptionInput{
		Template: template,
		Offer:    testOffer(),
		Now:      renderAt(),
	})

	want := "Price: R$ 99.90, Code: {coupon_code}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCaptionOverrideAndDecoration(t *testing.T) {
	template := &models.Template{TemplateID: 7, Body: "{product_name} por {price}"}
	override := &models.TemplateSocialNetwork{
		TemplateID:    7,
		SocialNetwork: "whatsapp",
		CustomBody:    "*{product_name}*",
	}
	network := &models.SocialNetworkConfig{
		Network:    "whatsapp",
		PrefixText: strPtr("💰 "),
		SuffixText: strPtr(" 🔥"),
		Active:     true,
	}

	got := RenderCaption(CaptionInput{
		Template: template,
		Override: override,
		Network:  network,
		Offer:    testOffer(),
		Now:      renderAt(),
	})

	want := "💰 *Smartphone X* 🔥"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCaptionInactiveNetworkSkipsDecoration(t *testing.T) {
	template := &models.Template{Body: "{product_name}"}
	network := &models.SocialNetworkConfig{
		Network:    "telegram",
		PrefixText: strPtr(">> "),
		Active:     false,
	}

	got := RenderCaption(CaptionInput{
		Template: template,
		Network:  network,
		Offer:    testOffer(),
		Now:      renderAt(),
	})

	if got != "Smartphone X" {
		t.Errorf("got %q, want %q", got, "Smartphone X")
	}
}

func TestRenderCaptionCouponPlaceholders(t *testing.T) {
	template := &models.Template{
		Body: "Use {coupon_code} na {seller}: {price} -> {discounted_price} ({discount} off)",
	}
	coupon := &models.Coupon{
		Code:          "PROMO10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: floatPtr(10),
		Seller:        models.Seller{Name: "Mercado Livre"},
	}
	offer := testOffer()
	offer.Price = 500

	got := RenderCaption(CaptionInput{
		Template: template,
		Offer:    offer,
		Coupon:   coupon,
		Now:      renderAt(),
	})

	want := "Use PROMO10 na Mercado Livre: R$ 500.00 -> R$ 450.00 (10% off)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCaptionFixedCouponDiscountAsCurrency(t *testing.T) {
	template := &models.Template{Body: "{discount} de desconto"}
	coupon := &models.Coupon{
		Code:          "MENOS50",
		DiscountType:  models.DiscountFixed,
		DiscountValue: floatPtr(50),
	}

	got := RenderCaption(CaptionInput{
		Template: template,
		Offer:    testOffer(),
		Coupon:   coupon,
		Now:      renderAt(),
	})

	if got != "R$ 50.00 de desconto" {
		t.Errorf("got %q, want %q", got, "R$ 50.00 de desconto")
	}
}

func TestRenderCaptionInjectedClock(t *testing.T) {
	template := &models.Template{Body: "{today} {time}"}

	got := RenderCaption(CaptionInput{
		Template: template,
		Now:      renderAt(),
	})

	if got != "15/03/2025 14:30" {
		t.Errorf("got %q, want %q", got, "15/03/2025 14:30")
	}
}

func TestRenderCaptionIdempotent(t *testing.T) {
	template := &models.Template{Body: "{product_name}: {price} em {today}"}
	input := CaptionInput{
		Template: template,
		Offer:    testOffer(),
		Now:      renderAt(),
	}

	first := RenderCaption(input)
	second := RenderCaption(input)
	if first != second {
		t.Errorf("render not idempotent: %q vs %q", first, second)
	}
}

func TestRenderCaptionOfferValueOverridesRegistry(t *testing.T) {
	template := &models.Template{Body: "{product_name}"}

	got := RenderCaption(CaptionInput{
		Template:    template,
		Offer:       testOffer(),
		OfferValues: map[string]string{"product_name": "Nome Customizado"},
		Now:         renderAt(),
	})

	if got != "Nome Customizado" {
		t.Errorf("got %q, want %q", got, "Nome Customizado")
	}
}

func TestRenderCaptionUserAliases(t *testing.T) {
	template := &models.Template{Body: "Siga {instagram} | {user_instagram}"}
	user := &models.User{DisplayName: "Ana", Instagram: strPtr("@ana")}

	got := RenderCaption(CaptionInput{
		Template: template,
		User:     user,
		Now:      renderAt(),
	})

	if got != "Siga @ana | @ana" {
		t.Errorf("got %q, want %q", got, "Siga @ana | @ana")
	}
}

func TestRenderCaptionOldPriceFallbackDiscount(t *testing.T) {
	offer := testOffer()
	offer.Price = 80
	offer.OldPrice = floatPtr(100)
	template := &models.Template{Body: "Economize {discount}"}

	got := RenderCaption(CaptionInput{
		Template: template,
		Offer:    offer,
		Now:      renderAt(),
	})

	if got != "Economize R$ 20.00" {
		t.Errorf("got %q, want %q", got, "Economize R$ 20.00")
	}
}

func TestResolvePlaceholderUnknownName(t *testing.T) {
	ctx := &RenderContext{Offer: testOffer(), Now: renderAt()}
	if _, ok := ResolvePlaceholder("definitely_not_registered", ctx); ok {
		t.Error("expected unknown placeholder to not resolve")
	}
}

// Every name the seed-namespaces catalogue offers to template authors must
// have a resolver, so a fully populated render context resolves them all.
func TestCatalogueNamesResolveWithFullContext(t *testing.T) {
	couponExpiry := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	offerExpiry := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	offer := testOffer()
	offer.OldPrice = floatPtr(149.9)
	offer.OfferURL = strPtr("https://loja.example/smartphone-x")
	offer.ExpiresAt = &offerExpiry
	offer.Category = &models.Category{Name: "Eletrônicos"}
	offer.Manufacturer = &models.Manufacturer{Name: "Marca X"}
	offer.Product.Description = strPtr("Smartphone X com 128GB")
	count := 10
	installment := 9.99
	interestFree := true
	offer.InstallmentCount = &count
	offer.InstallmentValue = &installment
	offer.InstallmentInterestFree = &interestFree

	coupon := &models.Coupon{
		Code:             "PROMO10",
		DiscountType:     models.DiscountPercentage,
		DiscountValue:    floatPtr(10),
		MinPurchaseValue: floatPtr(50),
		MaxDiscountValue: floatPtr(30),
		ExpiresAt:        &couponExpiry,
		Seller:           models.Seller{Name: "Mercado Livre"},
	}

	user := &models.User{
		DisplayName: "Ana",
		Phone:       strPtr("+55 11 99999-0000"),
		Address:     strPtr("Av. Paulista, 1000"),
		Website:     strPtr("https://ana.example"),
		Instagram:   strPtr("@ana"),
		Facebook:    strPtr("ana.fb"),
		Twitter:     strPtr("@ana_tw"),
		LinkedIn:    strPtr("ana-li"),
		YouTube:     strPtr("@ana_yt"),
		TikTok:      strPtr("@ana_tk"),
	}

	ctx := &RenderContext{Offer: offer, Coupon: coupon, User: user, Now: renderAt()}

	catalogue := []string{
		// offer scope
		"product_name", "price", "old_price", "discount", "vendor_name",
		"offer_url", "category", "brand", "description", "product_description",
		"descricao", "expires_at", "currency", "discounted_price", "final_price",
		"installments",
		// coupon scope
		"coupon_code", "code", "seller", "seller_name",
		"coupon_expires", "validade_cupom", "expira_em",
		"min_purchase_value", "min_purchase", "coupon_min_purchase",
		"compra_minima", "valor_minimo",
		"coupon_discount_type", "tipo_desconto",
		"coupon_discount_value", "valor_desconto",
		"max_discount_value", "limite_desconto", "coupon_max_discount",
		// global scope
		"user_name", "today", "time",
		"user_phone", "telefone", "celular",
		"user_address", "endereco",
		"user_website", "site",
		"user_instagram", "instagram",
		"user_facebook", "facebook",
		"user_twitter", "twitter",
		"user_linkedin", "linkedin",
		"user_youtube", "youtube",
		"user_tiktok", "tiktok",
	}

	for _, name := range catalogue {
		if value, ok := ResolvePlaceholder(name, ctx); !ok || value == "" {
			t.Errorf("catalogue name %q did not resolve", name)
		}
	}
}

func TestCouponDiscountPlaceholders(t *testing.T) {
	template := &models.Template{
		Body: "{coupon_discount_type} de {coupon_discount_value}, até {max_discount_value}, acima de {min_purchase_value}",
	}
	coupon := &models.Coupon{
		Code:             "PROMO10",
		DiscountType:     models.DiscountPercentage,
		DiscountValue:    floatPtr(10),
		MinPurchaseValue: floatPtr(100),
		MaxDiscountValue: floatPtr(30),
	}

	got := RenderCaption(CaptionInput{
		Template: template,
		Offer:    testOffer(),
		Coupon:   coupon,
		Now:      renderAt(),
	})

	want := "percentage de 10%, até R$ 30.00, acima de R$ 100.00"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegisteredPlaceholdersContainsCoreNames(t *testing.T) {
	names := map[string]bool{}
	for _, name := range RegisteredPlaceholders() {
		names[name] = true
	}

	for _, required := range []string{"product_name", "price", "old_price", "discount", "coupon_code", "today", "time"} {
		if !names[required] {
			t.Errorf("registry missing %q", required)
		}
	}
}
