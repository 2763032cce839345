package model

// PurchaseEstimate summarizes what a bill of materials costs to buy.
type PurchaseEstimate struct {
	Lines         []OrderLine `json:"lines"`
	Currency      string      `json:"currency"`
	PanelCount    int         `json:"panel_count"`    // Individual panels, counting pack contents
	HardwareCount int         `json:"hardware_count"` // Couplings and connectors
	ItemCount     int         `json:"item_count"`     // Purchasable items (packs count once)
	Subtotal      float64     `json:"subtotal"`
	UnlistedCount int         `json:"unlisted_count"` // Lines with no catalog entry
}

// CalculatePurchaseEstimate prices requirements against a catalog.
// Unlisted lines contribute to the item counts but not to the subtotal.
func CalculatePurchaseEstimate(r Requirements, catalog Catalog) PurchaseEstimate {
	lines := catalog.OrderLines(r)

	est := PurchaseEstimate{
		Lines:         lines,
		Currency:      catalog.Currency,
		PanelCount:    r.PanelTotal(),
		HardwareCount: r.StraightCouplings + r.CornerConnectors,
	}
	for _, l := range lines {
		est.ItemCount += l.Quantity
		est.Subtotal += l.LineTotal
		if l.Unlisted {
			est.UnlistedCount++
		}
	}
	return est
}

// Estimate prices requirements against the catalog.
func (c *Catalog) Estimate(r Requirements) PurchaseEstimate {
	return CalculatePurchaseEstimate(r, *c)
}
