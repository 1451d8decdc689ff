// Package flow provides the normal-flow layout strategies that arrange a
// container's in-flow children: vertical and horizontal stacks and a grid.
//
// The strategies are built on a small constraint solver that splits a region
// along one axis, similar to ratatui's layout system.
//
// Constraint types:
//   - Length(n): fixed size in cells
//   - Percentage(p): percentage of available space (0-100)
//   - Ratio(n,d): n/d of available space
//   - Min(n): at least n cells, grows to take a share of surplus
//   - Max(n): at most n cells, grows up to its bound
//   - Fill(w): takes a share of remaining space proportional to weight
//
// Any leftover surplus is positioned according to the Flex mode.
package flow

import "gitlab.com/tinyland/lab/arrange/pkg/geometry"

// Direction controls the axis along which a Layout splits space.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is satisfied by the constraint types below.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

// Percentage allocates Value percent of the available space (0-100).
type Percentage struct{ Value int }

// Ratio allocates Num/Den of the available space.
type Ratio struct{ Num, Den int }

// Min allocates at least Value cells.
type Min struct{ Value int }

// Max allocates at most Value cells.
type Max struct{ Value int }

// Fill shares remaining space by Weight. A Weight below 1 counts as 1.
type Fill struct{ Weight int }

func (Length) constraint()     {}
func (Percentage) constraint() {}
func (Ratio) constraint()      {}
func (Min) constraint()        {}
func (Max) constraint()        {}
func (Fill) constraint()       {}

// Flex controls where surplus space goes once every constraint is met.
type Flex int

const (
	// FlexStart packs items to the start.
	FlexStart Flex = iota
	// FlexEnd packs items to the end.
	FlexEnd
	// FlexCenter splits the surplus equally before and after the items.
	FlexCenter
	// FlexSpaceBetween puts the surplus between items.
	FlexSpaceBetween
	// FlexSpaceAround puts half-gaps at the ends and full gaps between.
	FlexSpaceAround
	// FlexSpaceEvenly makes every gap, including the ends, equal.
	FlexSpaceEvenly
)

// Layout splits a Region into sub-regions according to constraints.
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     int
	margin      int
}

// NewLayout creates a Layout with the given direction and constraints.
func NewLayout(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: dir, constraints: constraints}
}

// WithFlex sets the flex mode.
func (l *Layout) WithFlex(f Flex) *Layout {
	l.flex = f
	return l
}

// WithSpacing sets the gap in cells between regions.
func (l *Layout) WithSpacing(s int) *Layout {
	l.spacing = max(s, 0)
	return l
}

// WithMargin sets the outer margin in cells on all sides of the area.
func (l *Layout) WithMargin(m int) *Layout {
	l.margin = max(m, 0)
	return l
}

// item is the working state of one constraint during a solve.
type item struct {
	size   int
	weight int // share of surplus; zero for items that do not grow
	lo, hi int
	bound  bool // hi applies
}

// Split divides area into one region per constraint.
//
// Fixed sizes are allocated first, then the remaining space is shared by
// weight between growing items. Items that outgrow their Max are capped and
// the excess is shared again. If the result still overflows, every item is
// shrunk proportionally. Surplus is finally placed according to Flex.
func (l *Layout) Split(area geometry.Region) []geometry.Region {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}

	inner := area.Shrink(geometry.SpacingAll(l.margin))
	if inner.IsEmpty() {
		return emptyRegions(n, inner)
	}

	available := max(0, l.axis(inner.Size())-l.spacing*(n-1))
	items := l.resolve(available)

	used := 0
	for _, it := range items {
		used += it.size
	}
	share(items, available-used)

	for range items {
		freed := 0
		for i := range items {
			it := &items[i]
			if it.bound && it.size > it.hi {
				freed += it.size - it.hi
				it.size = it.hi
				it.weight = 0
			}
		}
		if freed == 0 {
			break
		}
		share(items, freed)
	}

	sizes := make([]int, n)
	total := 0
	for i, it := range items {
		sizes[i] = max(it.size, it.lo, 0)
		total += sizes[i]
	}
	if total > available {
		shrinkToFit(sizes, available)
		total = available
	}

	offsets := l.offsets(sizes, available-total)
	regions := make([]geometry.Region, n)
	for i := range sizes {
		if l.direction == Horizontal {
			regions[i] = geometry.NewRegion(inner.X+offsets[i], inner.Y, sizes[i], inner.Height)
		} else {
			regions[i] = geometry.NewRegion(inner.X, inner.Y+offsets[i], inner.Width, sizes[i])
		}
	}
	return regions
}

// resolve turns constraints into their starting allocations.
func (l *Layout) resolve(available int) []item {
	items := make([]item, len(l.constraints))
	for i, c := range l.constraints {
		it := &items[i]
		switch v := c.(type) {
		case Length:
			it.size = max(v.Value, 0)
		case Percentage:
			it.size = available * min(max(v.Value, 0), 100) / 100
		case Ratio:
			if v.Den > 0 {
				it.size = available * max(v.Num, 0) / v.Den
			}
		case Min:
			it.lo = max(v.Value, 0)
			it.size = it.lo
			it.weight = 1
		case Max:
			it.hi = max(v.Value, 0)
			it.bound = true
			it.weight = 1
		case Fill:
			it.weight = max(v.Weight, 1)
		}
	}
	return items
}

// share hands amount out to growing items by weight. The last growing item
// takes the rounding remainder.
func share(items []item, amount int) {
	if amount <= 0 {
		return
	}
	totalWeight, last := 0, -1
	for i, it := range items {
		if it.weight > 0 {
			totalWeight += it.weight
			last = i
		}
	}
	if totalWeight == 0 {
		return
	}
	given := 0
	for i := range items {
		if items[i].weight == 0 {
			continue
		}
		part := amount * items[i].weight / totalWeight
		if i == last {
			part = amount - given
		}
		items[i].size += part
		given += part
	}
}

// offsets converts sizes into start positions, applying spacing and flex.
func (l *Layout) offsets(sizes []int, surplus int) []int {
	n := len(sizes)
	lead, gap, extra := 0, 0, 0
	switch l.flex {
	case FlexEnd:
		lead = surplus
	case FlexCenter:
		lead = surplus / 2
	case FlexSpaceBetween:
		if n > 1 {
			gap, extra = surplus/(n-1), surplus%(n-1)
		}
	case FlexSpaceAround:
		lead = surplus / (2 * n)
		gap = 2 * lead
	case FlexSpaceEvenly:
		gap, extra = surplus/(n+1), surplus%(n+1)
		lead = gap
		if extra > 0 {
			lead++
			extra--
		}
	}

	offsets := make([]int, n)
	pos := lead
	for i, size := range sizes {
		offsets[i] = pos
		g := gap
		if extra > 0 {
			g++
			extra--
		}
		pos += size + l.spacing + g
	}
	return offsets
}

// shrinkToFit proportionally reduces sizes so they sum to at most target.
func shrinkToFit(sizes []int, target int) {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if target <= 0 || total == 0 {
		clear(sizes)
		return
	}
	given := 0
	for i := range sizes {
		sizes[i] = sizes[i] * target / total
		given += sizes[i]
	}
	sizes[len(sizes)-1] += target - given
}

func (l *Layout) axis(s geometry.Size) int {
	if l.direction == Horizontal {
		return s.Width
	}
	return s.Height
}

func emptyRegions(n int, inner geometry.Region) []geometry.Region {
	regions := make([]geometry.Region, n)
	for i := range regions {
		regions[i] = geometry.NewRegion(inner.X, inner.Y, 0, 0)
	}
	return regions
}
