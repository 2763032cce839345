package model

import "github.com/google/uuid"

// SKUKind identifies which Requirements field a catalog entry fulfils.
type SKUKind string

const (
	KindFourPack         SKUKind = "four_pack_regular"
	KindTwoPack          SKUKind = "two_pack_regular"
	KindSidePanel        SKUKind = "side_panel"
	KindLeftPanel        SKUKind = "left_panel"
	KindRightPanel       SKUKind = "right_panel"
	KindStraightCoupling SKUKind = "straight_coupling"
	KindCornerConnector  SKUKind = "corner_connector"

	KindFourPackExtraTall   SKUKind = "four_pack_extra_tall"
	KindTwoPackExtraTall    SKUKind = "two_pack_extra_tall"
	KindSidePanelExtraTall  SKUKind = "side_panel_extra_tall"
	KindLeftPanelExtraTall  SKUKind = "left_panel_extra_tall"
	KindRightPanelExtraTall SKUKind = "right_panel_extra_tall"
)

// AllKinds lists every SKU kind in bill-of-materials order.
var AllKinds = []SKUKind{
	KindFourPack,
	KindFourPackExtraTall,
	KindTwoPack,
	KindTwoPackExtraTall,
	KindSidePanel,
	KindLeftPanel,
	KindRightPanel,
	KindSidePanelExtraTall,
	KindLeftPanelExtraTall,
	KindRightPanelExtraTall,
	KindStraightCoupling,
	KindCornerConnector,
}

// Label returns a human-readable name for the kind.
func (k SKUKind) Label() string {
	switch k {
	case KindFourPack:
		return "4 Pack Regular (500mm)"
	case KindTwoPack:
		return "2 Pack Regular (500mm)"
	case KindSidePanel:
		return "Side Panel"
	case KindLeftPanel:
		return "Left Panel"
	case KindRightPanel:
		return "Right Panel"
	case KindStraightCoupling:
		return "Straight Coupling"
	case KindCornerConnector:
		return "Corner Connector"
	case KindFourPackExtraTall:
		return "4 Pack Extra Tall (700mm)"
	case KindTwoPackExtraTall:
		return "2 Pack Extra Tall (700mm)"
	case KindSidePanelExtraTall:
		return "Side Panel Extra Tall"
	case KindLeftPanelExtraTall:
		return "Left Panel Extra Tall"
	case KindRightPanelExtraTall:
		return "Right Panel Extra Tall"
	default:
		return string(k)
	}
}

// Quantity returns the amount of this kind called for by r.
func (k SKUKind) Quantity(r Requirements) int {
	switch k {
	case KindFourPack:
		return r.FourPackRegular
	case KindTwoPack:
		return r.TwoPackRegular
	case KindSidePanel:
		return r.SidePanels
	case KindLeftPanel:
		return r.LeftPanels
	case KindRightPanel:
		return r.RightPanels
	case KindStraightCoupling:
		return r.StraightCouplings
	case KindCornerConnector:
		return r.CornerConnectors
	case KindFourPackExtraTall:
		return r.FourPackExtraTall
	case KindTwoPackExtraTall:
		return r.TwoPackExtraTall
	case KindSidePanelExtraTall:
		return r.SidePanelsExtraTall
	case KindLeftPanelExtraTall:
		return r.LeftPanelsExtraTall
	case KindRightPanelExtraTall:
		return r.RightPanelsExtraTall
	default:
		return 0
	}
}

// SKU is a purchasable catalog entry.
type SKU struct {
	ID        string  `json:"id"`
	Kind      SKUKind `json:"kind"`
	Name      string  `json:"name"`
	VariantID string  `json:"variant_id"` // Storefront variant identifier, empty if not sold online
	UnitPrice float64 `json:"unit_price"`
}

// NewSKU creates a catalog entry with a generated ID.
func NewSKU(kind SKUKind, name, variantID string, unitPrice float64) SKU {
	return SKU{
		ID:        uuid.New().String()[:8],
		Kind:      kind,
		Name:      name,
		VariantID: variantID,
		UnitPrice: unitPrice,
	}
}

// Catalog holds the purchasable SKUs and the currency their prices are in.
type Catalog struct {
	Currency string `json:"currency"`
	SKUs     []SKU  `json:"skus"`
}

// DefaultCatalog returns the storefront catalog. Prices are left at zero
// until the user records them.
func DefaultCatalog() Catalog {
	return Catalog{
		Currency: "AUD",
		SKUs: []SKU{
			NewSKU(KindFourPack, KindFourPack.Label(), "44592702292276", 0),
			NewSKU(KindFourPackExtraTall, KindFourPackExtraTall.Label(), "44592702390580", 0),
			NewSKU(KindTwoPack, KindTwoPack.Label(), "44592713171252", 0),
			NewSKU(KindTwoPackExtraTall, KindTwoPackExtraTall.Label(), "44592713204020", 0),
			NewSKU(KindSidePanel, KindSidePanel.Label(), "", 0),
			NewSKU(KindLeftPanel, KindLeftPanel.Label(), "", 0),
			NewSKU(KindRightPanel, KindRightPanel.Label(), "", 0),
			NewSKU(KindSidePanelExtraTall, KindSidePanelExtraTall.Label(), "", 0),
			NewSKU(KindLeftPanelExtraTall, KindLeftPanelExtraTall.Label(), "", 0),
			NewSKU(KindRightPanelExtraTall, KindRightPanelExtraTall.Label(), "", 0),
			NewSKU(KindStraightCoupling, KindStraightCoupling.Label(), "43711665668404", 0),
			NewSKU(KindCornerConnector, KindCornerConnector.Label(), "46691832561972", 0),
		},
	}
}

// FindByID returns a pointer to the SKU with the given ID, or nil.
func (c *Catalog) FindByID(id string) *SKU {
	for i := range c.SKUs {
		if c.SKUs[i].ID == id {
			return &c.SKUs[i]
		}
	}
	return nil
}

// FindByKind returns a pointer to the first SKU of the given kind, or nil.
func (c *Catalog) FindByKind(kind SKUKind) *SKU {
	for i := range c.SKUs {
		if c.SKUs[i].Kind == kind {
			return &c.SKUs[i]
		}
	}
	return nil
}

// Names returns the SKU names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.SKUs))
	for i, s := range c.SKUs {
		names[i] = s.Name
	}
	return names
}

// OrderLine is one purchasable line of a bill of materials.
type OrderLine struct {
	SKU       SKU     `json:"sku"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	Unlisted  bool    `json:"unlisted"` // No catalog entry for this kind
}

// OrderLines maps the non-zero quantities of r onto catalog entries, in
// bill-of-materials order.
func (c *Catalog) OrderLines(r Requirements) []OrderLine {
	var lines []OrderLine
	for _, kind := range AllKinds {
		qty := kind.Quantity(r)
		if qty <= 0 {
			continue
		}
		line := OrderLine{Quantity: qty}
		if sku := c.FindByKind(kind); sku != nil {
			line.SKU = *sku
			line.LineTotal = float64(qty) * sku.UnitPrice
		} else {
			line.SKU = SKU{Kind: kind, Name: kind.Label()}
			line.Unlisted = true
		}
		lines = append(lines, line)
	}
	return lines
}
