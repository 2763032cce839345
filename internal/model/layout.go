package model

import (
	"fmt"
	"strings"
)

// LayoutToken is one parsed cell of a spreadsheet layout.
//
// Tokens are case-insensitive:
//
//	"", ".", "0", "-"     no cube
//	"X", "1"              cube without flow
//	"WE", "W>E", "W-E"    cube with flow entering west and leaving east
//	"west>east"           same, with words or edge names
//
// A trailing "*" on a cube token clads every exposed edge of that cube and
// a trailing "+" marks it extra tall. The two may appear in either order.
type LayoutToken struct {
	HasCube   bool
	Flow      *Connections
	Clad      bool
	ExtraTall bool
}

// ParseLayoutToken parses a single layout cell.
func ParseLayoutToken(s string) (LayoutToken, error) {
	tok := strings.TrimSpace(s)
	var out LayoutToken
	for {
		switch {
		case strings.HasSuffix(tok, "*") && !out.Clad:
			out.Clad = true
			tok = strings.TrimSpace(strings.TrimSuffix(tok, "*"))
			continue
		case strings.HasSuffix(tok, "+") && !out.ExtraTall:
			out.ExtraTall = true
			tok = strings.TrimSpace(strings.TrimSuffix(tok, "+"))
			continue
		}
		break
	}

	switch strings.ToUpper(tok) {
	case "", ".", "0", "-":
		if out.Clad || out.ExtraTall {
			return LayoutToken{}, fmt.Errorf("cube marker on empty cell %q", s)
		}
		return LayoutToken{}, nil
	case "X", "1":
		out.HasCube = true
		return out, nil
	}

	var parts []string
	switch {
	case strings.Contains(tok, ">"):
		parts = strings.SplitN(tok, ">", 2)
	case strings.Contains(tok, "-"):
		parts = strings.SplitN(tok, "-", 2)
	case len(tok) == 2:
		parts = []string{tok[:1], tok[1:]}
	default:
		return LayoutToken{}, fmt.Errorf("unrecognized cell %q", s)
	}

	entry, err := ParseDirection(parts[0])
	if err != nil {
		return LayoutToken{}, fmt.Errorf("cell %q: %w", s, err)
	}
	exit, err := ParseDirection(parts[1])
	if err != nil {
		return LayoutToken{}, fmt.Errorf("cell %q: %w", s, err)
	}
	if entry == exit {
		return LayoutToken{}, fmt.Errorf("cell %q: %w: flow enters and exits through %s", s, ErrInvalidDirection, entry)
	}

	out.HasCube = true
	out.Flow = &Connections{Entry: entry, Exit: exit}
	return out, nil
}

// FormatLayoutToken renders a cell in the form ParseLayoutToken reads.
// Any cladding is written as "*", so partial cladding does not survive a
// round trip. Extra-tall cubes carry a "+".
func FormatLayoutToken(c Cell) string {
	if !c.HasCube {
		return "."
	}
	tok := "X"
	if c.Flow != nil {
		tok = c.Flow.Entry.String() + ">" + c.Flow.Exit.String()
	}
	if c.ExtraTall {
		tok += "+"
	}
	if c.Cladding != 0 {
		tok += "*"
	}
	return tok
}

// LayoutRows renders the grid as rows of layout tokens.
func (g Grid) LayoutRows() [][]string {
	rows := make([][]string, len(g.Cells))
	for r, row := range g.Cells {
		rows[r] = make([]string, len(row))
		for c, cell := range row {
			rows[r][c] = FormatLayoutToken(cell)
		}
	}
	return rows
}
