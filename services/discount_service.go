package services

import (
	"offer-management-api/models"
)

// DiscountAmount computes the raw savings a coupon takes off a price.
// Invalid or inapplicable input degrades to zero instead of erroring: a
// coupon with no discount value, or a price below the coupon's minimum
// purchase, simply does not discount. The minimum purchase boundary is
// inclusive: price == min_purchase_value applies.
func DiscountAmount(coupon *models.Coupon, price float64) float64 {
	if coupon == nil || coupon.DiscountValue == nil {
		return 0
	}
	if coupon.MinPurchaseValue != nil && price < *coupon.MinPurchaseValue {
		return 0
	}

	switch coupon.DiscountType {
	case models.DiscountFixed:
		// Fixed discounts ignore max_discount_value.
		return *coupon.DiscountValue
	default:
		// Percentage is the default type.
		amount := price * *coupon.DiscountValue / 100
		if coupon.MaxDiscountValue != nil && amount > *coupon.MaxDiscountValue {
			amount = *coupon.MaxDiscountValue
		}
		return amount
	}
}

// ApplyDiscount returns the price after applying the coupon. The result is
// never negative, and a price of zero or a missing coupon passes through
// unchanged.
func ApplyDiscount(coupon *models.Coupon, price float64) float64 {
	discounted := price - DiscountAmount(coupon, price)
	if discounted < 0 {
		return 0
	}
	return discounted
}
