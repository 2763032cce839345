package model

import (
	"time"

	"github.com/google/uuid"
)

// PanelCounts holds raw panel counts by category before packing.
type PanelCounts struct {
	Side  int `json:"side_panels"`
	Left  int `json:"left_panels"`
	Right int `json:"right_panels"`
}

// Total returns the number of panels across all categories.
func (pc PanelCounts) Total() int {
	return pc.Side + pc.Left + pc.Right
}

// Add returns the element-wise sum of two counts.
func (pc PanelCounts) Add(o PanelCounts) PanelCounts {
	return PanelCounts{
		Side:  pc.Side + o.Side,
		Left:  pc.Left + o.Left,
		Right: pc.Right + o.Right,
	}
}

// Requirements is the bill of materials for a grid: packed panel SKUs,
// loose panels that did not fit a pack, and plumbing hardware. The
// ExtraTall fields cover cubes built from the 700mm module.
type Requirements struct {
	FourPackRegular   int `json:"four_pack_regular"`  // 2 side + 1 left + 1 right
	TwoPackRegular    int `json:"two_pack_regular"`   // 2 side
	SidePanels        int `json:"side_panels"`        // Loose side panels
	LeftPanels        int `json:"left_panels"`        // Loose left panels
	RightPanels       int `json:"right_panels"`       // Loose right panels
	StraightCouplings int `json:"straight_couplings"` // Straight pipe couplings
	CornerConnectors  int `json:"corner_connectors"`  // Corner pipe connectors

	FourPackExtraTall    int `json:"four_pack_extra_tall,omitempty"`
	TwoPackExtraTall     int `json:"two_pack_extra_tall,omitempty"`
	SidePanelsExtraTall  int `json:"side_panels_extra_tall,omitempty"`
	LeftPanelsExtraTall  int `json:"left_panels_extra_tall,omitempty"`
	RightPanelsExtraTall int `json:"right_panels_extra_tall,omitempty"`
}

// IsZero reports whether nothing is required.
func (r Requirements) IsZero() bool {
	return r == Requirements{}
}

// PanelTotal returns the number of individual panels shipped, counting
// the contents of packs, across both heights.
func (r Requirements) PanelTotal() int {
	return r.FourPackRegular*4 + r.TwoPackRegular*2 + r.SidePanels + r.LeftPanels + r.RightPanels +
		r.FourPackExtraTall*4 + r.TwoPackExtraTall*2 + r.SidePanelsExtraTall + r.LeftPanelsExtraTall + r.RightPanelsExtraTall
}

// WithExtraTall returns r with the panel fields of tall, which are packed
// as regular, moved into the extra-tall fields. Hardware is taken from r.
func (r Requirements) WithExtraTall(tall Requirements) Requirements {
	r.FourPackExtraTall = tall.FourPackRegular
	r.TwoPackExtraTall = tall.TwoPackRegular
	r.SidePanelsExtraTall = tall.SidePanels
	r.LeftPanelsExtraTall = tall.LeftPanels
	r.RightPanelsExtraTall = tall.RightPanels
	return r
}

// Project ties a named grid layout together for save/load.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Grid      Grid   `json:"grid"`
}

// NewProject creates a project with an empty grid of the given size.
// Sizes outside 1..MaxGridSize fall back to DefaultGridSize.
func NewProject(name string, size int) Project {
	g, err := NewGrid(size)
	if err != nil {
		g, _ = NewGrid(DefaultGridSize)
	}
	if name == "" {
		name = "Untitled"
	}
	return Project{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Grid:      g,
	}
}
