package finance

// DiscountKind selects how a discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount describes an optional discount on the base service charge.
// Percentage values are in [0,100]; fixed values are in currency units.
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// Breakdown is the result of the discount/tax computation.
type Breakdown struct {
	DiscountAmount Money `json:"discount_amount"`
	TaxAmount      Money `json:"tax_amount"`
	FinalAmount    Money `json:"final_amount"`
}

// ApplyDiscount computes the discount amount for a base amount.
// A nil discount yields 0. Percentage discounts are rounded; fixed discounts
// are clamped to the base amount rather than rejected. The result always
// satisfies 0 <= discount <= baseAmount.
func ApplyDiscount(baseAmount Money, d *Discount) (Money, error) {
	if d == nil {
		return 0, nil
	}
	switch d.Kind {
	case DiscountPercentage:
		if d.Value < 0 || d.Value > 100 {
			return 0, invalid(ErrInvalidDiscount, "percentage %.2f outside [0,100]", d.Value)
		}
		return Percent(baseAmount, d.Value), nil
	case DiscountFixed:
		if d.Value < 0 {
			return 0, invalid(ErrInvalidDiscount, "fixed discount %.2f is negative", d.Value)
		}
		return minMoney(Round(d.Value), baseAmount), nil
	default:
		return 0, invalid(ErrInvalidDiscount, "unknown discount kind %q", d.Kind)
	}
}

// ApplyTax computes the tax on a net (post-discount) amount.
func ApplyTax(netAmount Money, taxRatePercent float64) Money {
	return Percent(netAmount, taxRatePercent)
}

// ComputeFinal applies discount then tax to a base amount. Rounding happens
// at each step, not only at the end, so the separately displayed discount
// and tax figures sum exactly to the final amount.
func ComputeFinal(baseAmount Money, d *Discount, taxRatePercent float64) (Breakdown, error) {
	if baseAmount < 0 {
		return Breakdown{}, invalid(ErrInvalidDiscount, "base amount %d is negative", baseAmount)
	}
	if taxRatePercent < 0 {
		return Breakdown{}, invalid(ErrInvalidDiscount, "tax rate %.2f is negative", taxRatePercent)
	}
	discountAmount, err := ApplyDiscount(baseAmount, d)
	if err != nil {
		return Breakdown{}, err
	}
	net := baseAmount - discountAmount
	taxAmount := ApplyTax(net, taxRatePercent)
	return Breakdown{
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		FinalAmount:    net + taxAmount,
	}, nil
}
