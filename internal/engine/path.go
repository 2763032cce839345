package engine

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/model"
)

// Turn classifies the flow through a single cube.
type Turn int

const (
	TurnStraight         Turn = iota // Entry and exit are opposite edges
	TurnClockwise                    // N→E, E→S, S→W, W→N
	TurnCounterClockwise             // N→W, W→S, S→E, E→N
)

func (t Turn) String() string {
	switch t {
	case TurnClockwise:
		return "clockwise"
	case TurnCounterClockwise:
		return "counter-clockwise"
	default:
		return "straight"
	}
}

// MarshalText encodes the turn by name.
func (t Turn) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsCorner reports whether the flow turns inside the cube.
func (t Turn) IsCorner() bool {
	return t == TurnClockwise || t == TurnCounterClockwise
}

// ClassifyTurn classifies an entry/exit pair. ok is false when either
// direction is invalid or both name the same edge.
func ClassifyTurn(entry, exit model.Direction) (turn Turn, ok bool) {
	if !entry.Valid() || !exit.Valid() || entry == exit {
		return TurnStraight, false
	}
	switch exit {
	case entry.Opposite():
		return TurnStraight, true
	case entry.Clockwise():
		return TurnClockwise, true
	default:
		return TurnCounterClockwise, true
	}
}

type turnKey struct {
	entry, exit model.Direction
}

// outsideOfTurn maps each turning entry/exit pair to the corner's convex
// face: the face the incoming flow runs straight into.
var outsideOfTurn = map[turnKey]model.Direction{
	{model.North, model.East}: model.South,
	{model.East, model.South}: model.West,
	{model.South, model.West}: model.North,
	{model.West, model.North}: model.East,
	{model.North, model.West}: model.South,
	{model.West, model.South}: model.East,
	{model.South, model.East}: model.North,
	{model.East, model.North}: model.West,
}

// OutsideOfTurn returns the outside face of a turning entry/exit pair.
// ok is false for straight or invalid pairs.
func OutsideOfTurn(entry, exit model.Direction) (model.Direction, bool) {
	d, ok := outsideOfTurn[turnKey{entry, exit}]
	return d, ok
}

// PathCube is one cube of a walked flow path.
type PathCube struct {
	Row   int             `json:"row"`
	Col   int             `json:"col"`
	Entry model.Direction `json:"entry"`
	Exit  model.Direction `json:"exit"`
	Turn  Turn            `json:"turn"`
}

// Path is the flow walk through one connected group of cubes.
type Path struct {
	Cubes  []PathCube `json:"cubes"`
	Group  int        `json:"group"` // Number of cubes in the connected group
	Valid  bool       `json:"valid"`
	Reason string     `json:"reason,omitempty"` // Why the path is invalid
}

// Len returns the number of cubes walked.
func (p Path) Len() int {
	return len(p.Cubes)
}

// Corners returns the number of turning cubes in the path.
func (p Path) Corners() int {
	n := 0
	for _, c := range p.Cubes {
		if c.Turn.IsCorner() {
			n++
		}
	}
	return n
}

type coord struct {
	row, col int
}

// ValidatePaths discovers every connected group of cubes and walks its flow.
// Groups are returned in row-major order of their first cube.
func ValidatePaths(g model.Grid) []Path {
	return validatePaths(g, nopLogf)
}

func validatePaths(g model.Grid, logf Logf) []Path {
	var paths []Path
	for _, group := range connectedGroups(g) {
		p := walkGroup(g, group)
		if p.Valid {
			logf("path of %d cubes from (%d,%d) is valid", p.Len(), p.Cubes[0].Row, p.Cubes[0].Col)
		} else {
			logf("group of %d cubes at (%d,%d) rejected: %s", len(group), group[0].row, group[0].col, p.Reason)
		}
		paths = append(paths, p)
	}
	return paths
}

// connectedGroups collects 4-connected groups of cubes by breadth-first
// search, seeding from cubes in row-major order. Flow and cladding are ignored.
func connectedGroups(g model.Grid) [][]coord {
	size := g.Size()
	seen := make(map[coord]bool)
	var groups [][]coord

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			start := coord{r, c}
			if !g.HasCubeAt(r, c) || seen[start] {
				continue
			}
			queue := []coord{start}
			seen[start] = true
			var group []coord
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				group = append(group, u)
				for _, d := range model.AllDirections {
					nr, nc := g.Neighbor(u.row, u.col, d)
					v := coord{nr, nc}
					if g.HasCubeAt(nr, nc) && !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			groups = append(groups, group)
		}
	}
	return groups
}

// flowLinks counts how many of the cube's declared entry/exit edges face a cube.
func flowLinks(g model.Grid, at coord) int {
	flow := g.Cells[at.row][at.col].Flow
	if flow == nil {
		return 0
	}
	n := 0
	for _, d := range []model.Direction{flow.Entry, flow.Exit} {
		if !d.Valid() {
			continue
		}
		nr, nc := g.Neighbor(at.row, at.col, d)
		if g.HasCubeAt(nr, nc) {
			n++
		}
	}
	return n
}

// pathStart picks the cube the walk begins at: an endpoint whose flow leaves
// towards the group, else any endpoint, else the first cube discovered.
func pathStart(g model.Grid, group []coord) coord {
	var endpoint *coord
	for i, at := range group {
		if flowLinks(g, at) != 1 {
			continue
		}
		flow := g.Cells[at.row][at.col].Flow
		nr, nc := g.Neighbor(at.row, at.col, flow.Exit)
		if g.HasCubeAt(nr, nc) {
			return at
		}
		if endpoint == nil {
			endpoint = &group[i]
		}
	}
	if endpoint != nil {
		return *endpoint
	}
	return group[0]
}

// walkGroup follows the flow from the group's start cube and checks that it
// forms one simple path through every cube of the group.
func walkGroup(g model.Grid, group []coord) Path {
	path := Path{Group: len(group), Valid: true}
	visited := make(map[coord]bool, len(group))

	current := pathStart(g, group)
	var lastExit model.Direction
	for {
		if visited[current] {
			path.Valid = false
			path.Reason = fmt.Sprintf("flow loops back into (%d,%d)", current.row, current.col)
			break
		}
		visited[current] = true

		cell := g.Cells[current.row][current.col]
		if cell.Flow == nil || !cell.Flow.Entry.Valid() || !cell.Flow.Exit.Valid() {
			path.Valid = false
			path.Reason = fmt.Sprintf("cube (%d,%d) has no entry and exit", current.row, current.col)
			break
		}
		entry, exit := cell.Flow.Entry, cell.Flow.Exit
		turn, ok := ClassifyTurn(entry, exit)
		if !ok {
			path.Valid = false
			path.Reason = fmt.Sprintf("cube (%d,%d) has invalid flow %s→%s", current.row, current.col, entry, exit)
			break
		}
		if lastExit.Valid() && entry != lastExit.Opposite() {
			path.Valid = false
			path.Reason = fmt.Sprintf("cube (%d,%d) enters from %s but the previous cube exits %s",
				current.row, current.col, entry, lastExit)
			break
		}

		path.Cubes = append(path.Cubes, PathCube{
			Row:   current.row,
			Col:   current.col,
			Entry: entry,
			Exit:  exit,
			Turn:  turn,
		})

		nr, nc := g.Neighbor(current.row, current.col, exit)
		if !g.HasCubeAt(nr, nc) {
			break
		}
		current = coord{nr, nc}
		lastExit = exit
	}

	if path.Valid && len(visited) != len(group) {
		path.Valid = false
		path.Reason = fmt.Sprintf("flow reaches %d of %d connected cubes", len(visited), len(group))
	}
	return path
}
