package services

// Discount policy. VIP and long-stay reductions stack multiplicatively:
// a VIP staying 7+ nights pays baseRate * nights * 0.90 * 0.95.
const (
	VIPDiscount       = 0.90
	LongStayDiscount  = 0.95
	LongStayMinNights = 7
)

// Quote computes the final price for a stay. Pure function: no state is
// read or written. The result is never negative and never exceeds the
// undiscounted baseRate * nights.
func Quote(baseRate float64, nights int, vip bool) float64 {
	price := baseRate * float64(nights)
	if vip {
		price *= VIPDiscount
	}
	if nights >= LongStayMinNights {
		price *= LongStayDiscount
	}
	return price
}
