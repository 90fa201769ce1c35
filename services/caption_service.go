package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"offer-management-api/models"
	"offer-management-api/utils"
)

// Display formats used inside captions (Brazilian convention).
const (
	captionDateFormat = "02/01/2006"
	captionTimeFormat = "15:04"
)

// placeholderPattern matches {identifier} tokens in template bodies.
// There is no escape for literal braces; any bare {word} is a placeholder
// attempt and stays literal when it does not resolve.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// RenderContext carries everything a placeholder can draw from. All fields
// except Now are optional; resolvers that need a missing entity report no
// value and the token stays literal.
type RenderContext struct {
	Offer  *models.Offer
	Coupon *models.Coupon
	User   *models.User

	// Per-offer and per-user namespace values, keyed by namespace name.
	// They win over the built-in resolvers so editors can override any
	// placeholder for a single offer.
	OfferValues map[string]string
	UserValues  map[string]string

	// Now is injected by the caller so rendering stays deterministic.
	Now time.Time
}

// resolverFunc pulls one placeholder value out of the context. The bool
// reports whether a value was available.
type resolverFunc func(ctx *RenderContext) (string, bool)

// placeholderResolvers is the static namespace registry: every built-in
// placeholder name and how it resolves. Aliases (code/coupon_code,
// instagram/user_instagram, ...) intentionally share resolvers for template
// author convenience. Names are unique across scopes; should a duplicate
// ever be seeded, offer placeholders are registered last and win.
var placeholderResolvers = buildResolvers()

func buildResolvers() map[string]resolverFunc {
	resolvers := map[string]resolverFunc{}

	// GLOBAL scope: render-time values and the publishing user's contact info.
	resolvers["today"] = func(ctx *RenderContext) (string, bool) {
		return ctx.Now.Format(captionDateFormat), true
	}
	resolvers["time"] = func(ctx *RenderContext) (string, bool) {
		return ctx.Now.Format(captionTimeFormat), true
	}
	resolvers["user_name"] = func(ctx *RenderContext) (string, bool) {
		if ctx.User == nil {
			return "", false
		}
		return ctx.User.DisplayName, true
	}

	userField := func(get func(u *models.User) *string) resolverFunc {
		return func(ctx *RenderContext) (string, bool) {
			if ctx.User == nil {
				return "", false
			}
			if v := get(ctx.User); v != nil && *v != "" {
				return *v, true
			}
			return "", false
		}
	}
	register(resolvers, userField(func(u *models.User) *string { return u.Phone }), "user_phone", "telefone", "celular")
	register(resolvers, userField(func(u *models.User) *string { return u.Address }), "user_address", "endereco")
	register(resolvers, userField(func(u *models.User) *string { return u.Website }), "user_website", "site")
	register(resolvers, userField(func(u *models.User) *string { return u.Instagram }), "user_instagram", "instagram")
	register(resolvers, userField(func(u *models.User) *string { return u.Facebook }), "user_facebook", "facebook")
	register(resolvers, userField(func(u *models.User) *string { return u.Twitter }), "user_twitter", "twitter")
	register(resolvers, userField(func(u *models.User) *string { return u.LinkedIn }), "user_linkedin", "linkedin")
	register(resolvers, userField(func(u *models.User) *string { return u.YouTube }), "user_youtube", "youtube")
	register(resolvers, userField(func(u *models.User) *string { return u.TikTok }), "user_tiktok", "tiktok")

	// COUPON scope. Every coupon name the catalogue seeds resolves here,
	// Portuguese aliases included.
	register(resolvers, couponCode, "coupon_code", "code")
	register(resolvers, couponSeller, "seller", "seller_name")
	register(resolvers, couponExpires, "coupon_expires", "validade_cupom", "expira_em")
	register(resolvers, couponMinPurchase, "min_purchase", "coupon_min_purchase",
		"min_purchase_value", "compra_minima", "valor_minimo")
	register(resolvers, couponDiscountType, "coupon_discount_type", "tipo_desconto")
	register(resolvers, couponDiscountValue, "coupon_discount_value", "valor_desconto")
	register(resolvers, couponMaxDiscount, "max_discount_value", "limite_desconto", "coupon_max_discount")

	// OFFER scope (registered last: wins over other scopes on name clashes)
	resolvers["product_name"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil || ctx.Offer.Product.Name == "" {
			return "", false
		}
		return ctx.Offer.Product.Name, true
	}
	resolvers["vendor_name"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil {
			return "", false
		}
		return ctx.Offer.VendorName, true
	}
	resolvers["price"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil {
			return "", false
		}
		return utils.FormatPrice(ctx.Offer.Price, ctx.Offer.Currency), true
	}
	resolvers["old_price"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil || ctx.Offer.OldPrice == nil {
			return "", false
		}
		return utils.FormatPrice(*ctx.Offer.OldPrice, ctx.Offer.Currency), true
	}
	resolvers["discount"] = offerDiscount
	resolvers["discounted_price"] = offerDiscountedPrice
	resolvers["final_price"] = offerDiscountedPrice
	resolvers["offer_url"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil || ctx.Offer.OfferURL == nil || *ctx.Offer.OfferURL == "" {
			return "", false
		}
		return *ctx.Offer.OfferURL, true
	}
	resolvers["currency"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil {
			return "", false
		}
		return ctx.Offer.Currency, true
	}
	resolvers["expires_at"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil || ctx.Offer.ExpiresAt == nil {
			return "", false
		}
		return ctx.Offer.ExpiresAt.Format(captionDateFormat), true
	}
	resolvers["category"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil {
			return "", false
		}
		if ctx.Offer.Category != nil && ctx.Offer.Category.Name != "" {
			return ctx.Offer.Category.Name, true
		}
		if ctx.Offer.Product.Category != nil && *ctx.Offer.Product.Category != "" {
			return *ctx.Offer.Product.Category, true
		}
		return "", false
	}
	resolvers["brand"] = func(ctx *RenderContext) (string, bool) {
		if ctx.Offer == nil {
			return "", false
		}
		if ctx.Offer.Manufacturer != nil && ctx.Offer.Manufacturer.Name != "" {
			return ctx.Offer.Manufacturer.Name, true
		}
		if ctx.Offer.Product.Manufacturer != nil && *ctx.Offer.Product.Manufacturer != "" {
			return *ctx.Offer.Product.Manufacturer, true
		}
		return "", false
	}
	register(resolvers, offerDescription, "description", "product_description", "descricao")
	resolvers["installments"] = func(ctx *RenderContext) (string, bool) {
		offer := ctx.Offer
		if offer == nil || offer.InstallmentCount == nil || offer.InstallmentValue == nil {
			return "", false
		}
		text := fmt.Sprintf("%dx %s", *offer.InstallmentCount,
			utils.FormatPrice(*offer.InstallmentValue, offer.Currency))
		if offer.InstallmentInterestFree != nil && *offer.InstallmentInterestFree {
			text += " sem juros"
		}
		return text, true
	}

	return resolvers
}

func register(resolvers map[string]resolverFunc, fn resolverFunc, names ...string) {
	for _, name := range names {
		resolvers[name] = fn
	}
}

func couponCode(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil {
		return "", false
	}
	return ctx.Coupon.Code, true
}

func couponSeller(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.Seller.Name == "" {
		return "", false
	}
	return ctx.Coupon.Seller.Name, true
}

func couponExpires(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.ExpiresAt == nil {
		return "", false
	}
	return ctx.Coupon.ExpiresAt.Format(captionDateFormat), true
}

func couponMinPurchase(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.MinPurchaseValue == nil {
		return "", false
	}
	return utils.FormatPrice(*ctx.Coupon.MinPurchaseValue, renderCurrency(ctx)), true
}

func couponDiscountType(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.DiscountType == "" {
		return "", false
	}
	return ctx.Coupon.DiscountType, true
}

// couponDiscountValue formats like {discount}: "10%" for percentage coupons,
// a currency amount for fixed ones.
func couponDiscountValue(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.DiscountValue == nil {
		return "", false
	}
	if ctx.Coupon.DiscountType == models.DiscountFixed {
		return utils.FormatPrice(*ctx.Coupon.DiscountValue, renderCurrency(ctx)), true
	}
	return strings.TrimSuffix(fmt.Sprintf("%.2f", *ctx.Coupon.DiscountValue), ".00") + "%", true
}

func couponMaxDiscount(ctx *RenderContext) (string, bool) {
	if ctx.Coupon == nil || ctx.Coupon.MaxDiscountValue == nil {
		return "", false
	}
	return utils.FormatPrice(*ctx.Coupon.MaxDiscountValue, renderCurrency(ctx)), true
}

func offerDescription(ctx *RenderContext) (string, bool) {
	if ctx.Offer == nil || ctx.Offer.Product.Description == nil || *ctx.Offer.Product.Description == "" {
		return "", false
	}
	return *ctx.Offer.Product.Description, true
}

// renderCurrency picks the currency for coupon amounts: the offer's when one
// is in context, BRL otherwise.
func renderCurrency(ctx *RenderContext) string {
	if ctx.Offer != nil {
		return ctx.Offer.Currency
	}
	return "BRL"
}

// offerDiscount formats the savings: "{value}%" for a percentage coupon, a
// currency amount for a fixed coupon. Without a coupon it falls back to the
// difference between old_price and price when that is positive.
func offerDiscount(ctx *RenderContext) (string, bool) {
	if ctx.Offer == nil {
		return "", false
	}
	if ctx.Coupon != nil && ctx.Coupon.DiscountValue != nil {
		if ctx.Coupon.DiscountType == models.DiscountFixed {
			return utils.FormatPrice(*ctx.Coupon.DiscountValue, ctx.Offer.Currency), true
		}
		return strings.TrimSuffix(fmt.Sprintf("%.2f", *ctx.Coupon.DiscountValue), ".00") + "%", true
	}
	if ctx.Offer.OldPrice != nil && *ctx.Offer.OldPrice > ctx.Offer.Price {
		return utils.FormatPrice(*ctx.Offer.OldPrice-ctx.Offer.Price, ctx.Offer.Currency), true
	}
	return "", false
}

func offerDiscountedPrice(ctx *RenderContext) (string, bool) {
	if ctx.Offer == nil {
		return "", false
	}
	return utils.FormatPrice(ApplyDiscount(ctx.Coupon, ctx.Offer.Price), ctx.Offer.Currency), true
}

// ResolvePlaceholder resolves one placeholder name against the context.
// Per-offer values win over per-user values, which win over the built-in
// registry. Unknown names resolve to nothing.
func ResolvePlaceholder(name string, ctx *RenderContext) (string, bool) {
	if v, ok := ctx.OfferValues[name]; ok {
		return v, true
	}
	if v, ok := ctx.UserValues[name]; ok {
		return v, true
	}
	if resolver, ok := placeholderResolvers[name]; ok {
		return resolver(ctx)
	}
	return "", false
}

// RegisteredPlaceholders returns the built-in placeholder names, for the
// namespace seeding tool and the API docs endpoint.
func RegisteredPlaceholders() []string {
	names := make([]string, 0, len(placeholderResolvers))
	for name := range placeholderResolvers {
		names = append(names, name)
	}
	return names
}

// CaptionInput bundles the fully loaded entities a caption render needs.
// The caller resolves all database references first; rendering itself never
// touches storage and never fails.
type CaptionInput struct {
	Template *models.Template
	// Override replaces the template body for this network when present.
	Override *models.TemplateSocialNetwork
	// Network supplies prefix/suffix decoration; nil or inactive means none.
	Network *models.SocialNetworkConfig

	Offer       *models.Offer
	Coupon      *models.Coupon
	User        *models.User
	OfferValues map[string]string
	UserValues  map[string]string
	Now         time.Time
}

// RenderCaption produces the final shareable caption: picks the per-network
// body override when one exists, substitutes {placeholder} tokens in a
// single left-to-right pass (unresolved tokens stay literal so authors can
// spot typos), then wraps the result with the network's prefix and suffix.
func RenderCaption(in CaptionInput) string {
	body := in.Template.Body
	if in.Override != nil {
		body = in.Override.CustomBody
	}

	ctx := &RenderContext{
		Offer:       in.Offer,
		Coupon:      in.Coupon,
		User:        in.User,
		OfferValues: in.OfferValues,
		UserValues:  in.UserValues,
		Now:         in.Now,
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(body, func(token string) string {
		name := token[1 : len(token)-1]
		if value, ok := ResolvePlaceholder(name, ctx); ok {
			return value
		}
		return token
	})

	if in.Network != nil && in.Network.Active {
		rendered = in.Network.Prefix() + rendered + in.Network.Suffix()
	}

	return rendered
}
