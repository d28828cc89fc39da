// pkg/navigation/grid.go
package navigation

import (
	"container/heap"
	"math"

	"go-wave-defense/pkg/geom"
)

// Grid rasterises a bounded Field into square cells and plans around any
// number of obstacles. All enemies share one objective, so the planner keeps
// a distance field towards the last goal instead of a path per enemy.
type Grid struct {
	field      *Field
	CellSize   float64
	cols, rows int
	blocked    []bool

	goalCell int
	costs    []float64 // Distance to goalCell, +Inf when unreachable
}

// NewGrid builds a grid over field. It returns nil for an unbounded field or
// a non-positive cell size.
func NewGrid(field *Field, cellSize float64) *Grid {
	b := field.Bounds
	if b.empty() || cellSize <= 0 {
		return nil
	}
	g := &Grid{
		field:    field,
		CellSize: cellSize,
		cols:     int(math.Ceil((b.MaxX - b.MinX) / cellSize)),
		rows:     int(math.Ceil((b.MaxZ - b.MinZ) / cellSize)),
		goalCell: -1,
	}
	g.blocked = make([]bool, g.cols*g.rows)
	for i := range g.blocked {
		g.blocked[i] = !g.clear(g.center(i))
	}
	return g
}

// clear reports whether the whole cell around p is walkable.
func (g *Grid) clear(p geom.Vec3) bool {
	if !g.field.Bounds.Contains(p) {
		return false
	}
	margin := g.CellSize * math.Sqrt2 / 2
	for _, o := range g.field.Obstacles {
		if p.Flat().Dist(o.Center.Flat()) < o.Radius+margin {
			return false
		}
	}
	return true
}

// Navigable defers to the underlying field.
func (g *Grid) Navigable(p geom.Vec3) bool {
	return g.field.Navigable(p)
}

// Advance moves straight when the line to the goal is clear and otherwise
// steps towards the neighbouring cell closest to the goal.
func (g *Grid) Advance(from, to geom.Vec3, maxDistance float64) (geom.Vec3, bool) {
	if !g.field.Navigable(from) {
		return from, false
	}
	if _, blocked := g.field.firstBlocker(from, to); !blocked {
		return from.MoveTowards(to, maxDistance), true
	}

	goal, ok := g.cell(to)
	if !ok {
		return from, false
	}
	costs := g.distanceField(goal)
	current, ok := g.cell(from)
	if !ok {
		return from, false
	}

	best, bestCost := -1, costs[current]
	for _, n := range g.neighbours(current) {
		if costs[n.cell] < bestCost {
			best, bestCost = n.cell, costs[n.cell]
		}
	}
	if best < 0 {
		return from, false
	}
	waypoint := g.center(best)
	waypoint.Y = from.Y
	return from.MoveTowards(waypoint, maxDistance), true
}

func (g *Grid) cell(p geom.Vec3) (int, bool) {
	b := g.field.Bounds
	col := int((p.X - b.MinX) / g.CellSize)
	row := int((p.Z - b.MinZ) / g.CellSize)
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return 0, false
	}
	return row*g.cols + col, true
}

func (g *Grid) center(i int) geom.Vec3 {
	b := g.field.Bounds
	col, row := i%g.cols, i/g.cols
	return geom.V(b.MinX+(float64(col)+0.5)*g.CellSize, 0, b.MinZ+(float64(row)+0.5)*g.CellSize)
}

type neighbour struct {
	cell int
	cost float64
}

// neighbours returns the walkable 8-neighbourhood of a cell. Diagonals that
// would cut a blocked corner are skipped.
func (g *Grid) neighbours(i int) []neighbour {
	col, row := i%g.cols, i/g.cols
	var out []neighbour
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c, r := col+dc, row+dr
			if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
				continue
			}
			n := r*g.cols + c
			if g.blocked[n] {
				continue
			}
			cost := 1.0
			if dr != 0 && dc != 0 {
				if g.blocked[row*g.cols+c] || g.blocked[r*g.cols+col] {
					continue
				}
				cost = math.Sqrt2
			}
			out = append(out, neighbour{cell: n, cost: cost})
		}
	}
	return out
}

// distanceField runs Dijkstra outwards from goal and caches the result until
// the goal cell changes.
func (g *Grid) distanceField(goal int) []float64 {
	if goal == g.goalCell && g.costs != nil {
		return g.costs
	}
	costs := make([]float64, len(g.blocked))
	for i := range costs {
		costs[i] = math.Inf(1)
	}
	costs[goal] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{cell: goal, cost: 0})
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.cost > costs[current.cell] {
			continue
		}
		for _, n := range g.neighbours(current.cell) {
			newCost := current.cost + n.cost
			if newCost < costs[n.cell] {
				costs[n.cell] = newCost
				heap.Push(pq, &node{cell: n.cell, cost: newCost})
			}
		}
	}
	g.goalCell, g.costs = goal, costs
	return costs
}

// priorityQueue для обхода в порядке стоимости
type priorityQueue []*node

type node struct {
	cell int
	cost float64
}

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
