package services

import (
	"errors"
	"strings"
	"time"

	"offer-management-api/models"
	"offer-management-api/utils"

	"gorm.io/gorm"
)

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponUnavailable = errors.New("coupon inactive or expired")
)

// ShareService builds shareable captions from stored entities. It resolves
// every database reference up front and hands fully loaded objects to the
// pure renderer.
type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

type BuildCaptionInput struct {
	OfferID    int
	TemplateID int
	CouponID   *int
	Network    string
	UserID     *int
}

// CaptionBreakdown is the render result plus the discount arithmetic, so
// clients can show the price math next to the caption preview.
type CaptionBreakdown struct {
	Caption        string  `json:"caption"`
	Network        string  `json:"network,omitempty"`
	UsedOverride   bool    `json:"used_override"`
	OriginalPrice  float64 `json:"original_price"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
	FormattedPrice string  `json:"formatted_price"`
	FormattedFinal string  `json:"formatted_final"`
}

type namespaceValueRow struct {
	Name  string
	Value string
}

// BuildCaption loads the offer, template, optional coupon and network
// config, then renders the caption at the given time. Missing offer or
// template is an error (caller precondition); everything optional degrades
// silently per the rendering rules.
func (s *ShareService) BuildCaption(in BuildCaptionInput, now time.Time) (*CaptionBreakdown, error) {
	offer, err := s.loadOffer(in.OfferID)
	if err != nil {
		return nil, err
	}

	offerValues, err := s.loadOfferValues(in.OfferID)
	if err != nil {
		return nil, err
	}

	var templates []models.Template
	if err := s.db.Where("template_id = ? AND delete_at IS NULL", in.TemplateID).
		Find(&templates).Error; err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrTemplateNotFound
	}
	template := templates[0]

	network := strings.ToLower(strings.TrimSpace(in.Network))
	var override *models.TemplateSocialNetwork
	var networkConfig *models.SocialNetworkConfig
	if network != "" {
		var overrides []models.TemplateSocialNetwork
		if err := s.db.Where("template_id = ? AND social_network = ?", template.TemplateID, network).
			Find(&overrides).Error; err != nil {
			return nil, err
		}
		if len(overrides) > 0 {
			override = &overrides[0]
		}

		var configs []models.SocialNetworkConfig
		if err := s.db.Where("network = ?", network).Find(&configs).Error; err != nil {
			return nil, err
		}
		if len(configs) > 0 {
			networkConfig = &configs[0]
		}
	}

	var coupon *models.Coupon
	if in.CouponID != nil {
		coupon, err = s.loadCoupon(*in.CouponID, now)
		if err != nil {
			return nil, err
		}
	}

	var user *models.User
	userValues := map[string]string{}
	if in.UserID != nil {
		var users []models.User
		if err := s.db.Where("user_id = ? AND delete_at IS NULL", *in.UserID).
			Find(&users).Error; err != nil {
			return nil, err
		}
		if len(users) > 0 {
			user = &users[0]
			userValues, err = s.loadUserValues(user.UserID)
			if err != nil {
				return nil, err
			}
		}
	}

	caption := RenderCaption(CaptionInput{
		Template:    &template,
		Override:    override,
		Network:     networkConfig,
		Offer:       offer,
		Coupon:      coupon,
		User:        user,
		OfferValues: offerValues,
		UserValues:  userValues,
		Now:         now,
	})

	discount := DiscountAmount(coupon, offer.Price)
	final := ApplyDiscount(coupon, offer.Price)

	return &CaptionBreakdown{
		Caption:        caption,
		Network:        network,
		UsedOverride:   override != nil,
		OriginalPrice:  offer.Price,
		DiscountAmount: discount,
		FinalPrice:     final,
		FormattedPrice: utils.FormatPrice(offer.Price, offer.Currency),
		FormattedFinal: utils.FormatPrice(final, offer.Currency),
	}, nil
}

func (s *ShareService) loadOffer(offerID int) (*models.Offer, error) {
	var offers []models.Offer
	if err := s.db.Where("offer_id = ? AND delete_at IS NULL", offerID).
		Find(&offers).Error; err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, ErrOfferNotFound
	}
	offer := offers[0]

	var products []models.Product
	if err := s.db.Where("product_id = ?", offer.ProductID).Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) > 0 {
		offer.Product = products[0]
	}

	if offer.CategoryID != nil {
		var categories []models.Category
		if err := s.db.Where("category_id = ?", *offer.CategoryID).Find(&categories).Error; err != nil {
			return nil, err
		}
		if len(categories) > 0 {
			offer.Category = &categories[0]
		}
	}

	if offer.ManufacturerID != nil {
		var manufacturers []models.Manufacturer
		if err := s.db.Where("manufacturer_id = ?", *offer.ManufacturerID).Find(&manufacturers).Error; err != nil {
			return nil, err
		}
		if len(manufacturers) > 0 {
			offer.Manufacturer = &manufacturers[0]
		}
	}

	return &offer, nil
}

func (s *ShareService) loadCoupon(couponID int, now time.Time) (*models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.Where("coupon_id = ? AND delete_at IS NULL", couponID).
		Find(&coupons).Error; err != nil {
		return nil, err
	}
	if len(coupons) == 0 {
		return nil, ErrCouponNotFound
	}
	coupon := coupons[0]

	// Only coupons that could actually be redeemed may discount a caption.
	if !coupon.Active || coupon.IsExpired(now) {
		return nil, ErrCouponUnavailable
	}

	var sellers []models.Seller
	if err := s.db.Where("seller_id = ?", coupon.SellerID).Find(&sellers).Error; err != nil {
		return nil, err
	}
	if len(sellers) > 0 {
		coupon.Seller = sellers[0]
	}

	return &coupon, nil
}

func (s *ShareService) loadOfferValues(offerID int) (map[string]string, error) {
	var rows []namespaceValueRow
	err := s.db.Raw(
		"SELECT n.name AS name, v.value AS value FROM offer_namespace_values v "+
			"JOIN namespaces n ON n.namespace_id = v.namespace_id WHERE v.offer_id = ?",
		offerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}
	return values, nil
}

func (s *ShareService) loadUserValues(userID int) (map[string]string, error) {
	var rows []namespaceValueRow
	err := s.db.Raw(
		"SELECT n.name AS name, v.value AS value FROM user_namespace_values v "+
			"JOIN namespaces n ON n.namespace_id = v.namespace_id WHERE v.user_id = ?",
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}
	return values, nil
}
