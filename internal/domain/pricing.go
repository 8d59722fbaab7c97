package domain

type Totals struct {
	PackageCount    int
	AdditionalCount int
	TotalCost       Money
}

// ComputeTotals counts package and additional selections and prices the
// additional ones.
func ComputeTotals(selections []Selection, pricePerAdditional Money) Totals {
	var t Totals
	for _, s := range selections {
		switch {
		case s.SelectedForPackage:
			t.PackageCount++
		case s.IsAdditionalPurchase:
			t.AdditionalCount++
		}
	}
	t.TotalCost = pricePerAdditional.Mul(t.AdditionalCount)
	return t
}

func (t Totals) HasChargeableItems() bool {
	return t.AdditionalCount > 0
}

// Outstanding drops the additional photos already covered by paid orders and
// reprices the rest. It is the amount a new checkout may charge.
func (t Totals) Outstanding(paidFor int, pricePerAdditional Money) Totals {
	out := t
	out.AdditionalCount = max(t.AdditionalCount-paidFor, 0)
	out.TotalCost = pricePerAdditional.Mul(out.AdditionalCount)
	return out
}
