package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a direction token or value is not one
// of the four compass directions.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four compass directions on the grid.
// Row indices grow towards South, column indices grow towards East.
type Direction int

const (
	NoDirection Direction = iota // Zero value, never valid on a cube
	North
	East
	South
	West
)

// AllDirections lists the compass directions in clockwise order starting at North.
var AllDirections = [4]Direction{North, East, South, West}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "-"
	}
}

// Opposite returns the direction facing d. NoDirection maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return NoDirection
	}
}

// Clockwise returns the direction a quarter turn clockwise from d.
func (d Direction) Clockwise() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return AllDirections[(int(d-North)+1)%4]
}

// CounterClockwise returns the direction a quarter turn counter-clockwise from d.
func (d Direction) CounterClockwise() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return AllDirections[(int(d-North)+3)%4]
}

// Offset returns the row and column delta of the neighbor in direction d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// edgeNames maps each direction to the edge name used by layout files and
// the configurator front end. directionByEdge is its inverse.
var edgeNames = map[Direction]string{
	North: "top",
	East:  "right",
	South: "bottom",
	West:  "left",
}

var directionByEdge = map[string]Direction{
	"top":    North,
	"right":  East,
	"bottom": South,
	"left":   West,
}

// EdgeName returns the edge name ("top", "right", "bottom", "left") for d.
func (d Direction) EdgeName() string {
	if name, ok := edgeNames[d]; ok {
		return name
	}
	return ""
}

// DirectionFromEdge converts an edge name back to its compass direction.
func DirectionFromEdge(edge string) (Direction, error) {
	if d, ok := directionByEdge[strings.ToLower(strings.TrimSpace(edge))]; ok {
		return d, nil
	}
	return NoDirection, fmt.Errorf("%w: edge %q", ErrInvalidDirection, edge)
}

// ParseDirection accepts compass letters ("N"), compass words ("north") and
// edge names ("top"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	if d, err := DirectionFromEdge(s); err == nil {
		return d, nil
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalJSON encodes a direction as its compass letter.
func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes any token accepted by ParseDirection.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EdgeSet is a set of directions, used for the cladded edges of a cube.
type EdgeSet uint8

func bit(d Direction) EdgeSet {
	if !d.Valid() {
		return 0
	}
	return 1 << uint(d-North)
}

// NewEdgeSet builds a set from the given directions. Invalid values are ignored.
func NewEdgeSet(dirs ...Direction) EdgeSet {
	var s EdgeSet
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

func (s EdgeSet) Has(d Direction) bool       { return d.Valid() && s&bit(d) != 0 }
func (s EdgeSet) Add(d Direction) EdgeSet    { return s | bit(d) }
func (s EdgeSet) Remove(d Direction) EdgeSet { return s &^ bit(d) }

// Toggle flips membership of d.
func (s EdgeSet) Toggle(d Direction) EdgeSet {
	if s.Has(d) {
		return s.Remove(d)
	}
	return s.Add(d)
}

// List returns the members in clockwise order from North.
func (s EdgeSet) List() []Direction {
	var out []Direction
	for _, d := range AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of directions in the set.
func (s EdgeSet) Len() int {
	return len(s.List())
}

func (s EdgeSet) String() string {
	parts := make([]string, 0, 4)
	for _, d := range s.List() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "+")
}

// MarshalJSON encodes the set as a list of compass letters.
func (s EdgeSet) MarshalJSON() ([]byte, error) {
	dirs := s.List()
	if dirs == nil {
		dirs = []Direction{}
	}
	return json.Marshal(dirs)
}

// UnmarshalJSON decodes a list of direction tokens.
func (s *EdgeSet) UnmarshalJSON(data []byte) error {
	var dirs []Direction
	if err := json.Unmarshal(data, &dirs); err != nil {
		return err
	}
	*s = NewEdgeSet(dirs...)
	return nil
}
