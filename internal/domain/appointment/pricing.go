package appointment

const (
	// LoyaltyVisitThreshold is the number of past visits a customer must
	// exceed before the loyalty discount applies.
	LoyaltyVisitThreshold = 3

	// LoyaltyDiscountPercent is the price reduction for discount-eligible
	// customers.
	LoyaltyDiscountPercent = 10
)

// DiscountEligible reports whether a customer with the given number of past
// bookings (scheduled date strictly before now) qualifies for the loyalty
// discount. Eligibility is purely date-based: there is no attendance status,
// so a no-show still counts while a future booking never does.
func DiscountEligible(pastBookings int64) bool {
	return pastBookings > LoyaltyVisitThreshold
}

// PriceFor derives the appointment price from the catalog base price and the
// customer's past-booking count. Eligibility is re-evaluated on every create
// and update; discounts are never grandfathered.
func PriceFor(base Money, pastBookings int64) Money {
	if DiscountEligible(pastBookings) {
		return base.ApplyPercentDiscount(LoyaltyDiscountPercent)
	}
	return base
}
