package flow

import (
	"testing"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// area is a test helper that creates a Region at origin with the given size.
func area(w, h int) geometry.Region {
	return geometry.NewRegion(0, 0, w, h)
}

// assertRegionsEqual fails the test if got and want differ.
func assertRegionsEqual(t *testing.T, label string, got, want []geometry.Region) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len(got)=%d, want %d\ngot:  %v\nwant: %v", label, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

func TestSingleFillFillsEntireArea(t *testing.T) {
	regions := NewLayout(Horizontal, Fill{1}).Split(area(100, 50))
	assertRegionsEqual(t, "single fill", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 100, Height: 50},
	})
}

func TestFillWeightedRatio(t *testing.T) {
	regions := NewLayout(Horizontal, Fill{2}, Fill{1}).Split(area(90, 30))
	assertRegionsEqual(t, "fill 2:1", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 60, Height: 30},
		{X: 60, Y: 0, Width: 30, Height: 30},
	})
}

func TestFillZeroWeightTreatedAsOne(t *testing.T) {
	regions := NewLayout(Horizontal, Fill{0}, Fill{0}).Split(area(80, 20))
	assertRegionsEqual(t, "fill zero weight", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 40, Height: 20},
		{X: 40, Y: 0, Width: 40, Height: 20},
	})
}

func TestFillRemainderGoesToLast(t *testing.T) {
	regions := NewLayout(Vertical, Fill{1}, Fill{1}, Fill{1}).Split(area(10, 10))
	assertRegionsEqual(t, "thirds", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 10, Height: 3},
		{X: 0, Y: 3, Width: 10, Height: 3},
		{X: 0, Y: 6, Width: 10, Height: 4},
	})
}

func TestLengthPlusFill(t *testing.T) {
	regions := NewLayout(Horizontal, Length{10}, Fill{1}).Split(area(100, 50))
	assertRegionsEqual(t, "length+fill", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 10, Height: 50},
		{X: 10, Y: 0, Width: 90, Height: 50},
	})
}

func TestPercentageAndRatio(t *testing.T) {
	regions := NewLayout(Horizontal, Percentage{30}, Ratio{1, 2}).Split(area(100, 5))
	assertRegionsEqual(t, "pct+ratio", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 30, Height: 5},
		{X: 30, Y: 0, Width: 50, Height: 5},
	})
}

func TestPercentageClampedTo100(t *testing.T) {
	regions := NewLayout(Horizontal, Percentage{150}).Split(area(100, 50))
	if regions[0].Width != 100 {
		t.Errorf("got width %d, want 100 (percentage clamped to 100%%)", regions[0].Width)
	}
}

func TestRatioZeroDenominator(t *testing.T) {
	regions := NewLayout(Horizontal, Ratio{1, 0}).Split(area(100, 50))
	if regions[0].Width != 0 {
		t.Errorf("got width %d, want 0", regions[0].Width)
	}
}

func TestMinGrowsButKeepsFloor(t *testing.T) {
	regions := NewLayout(Horizontal, Min{30}, Fill{1}).Split(area(100, 10))
	if regions[0].Width < 30 {
		t.Errorf("Min(30) violated: got width %d", regions[0].Width)
	}
	if regions[0].Width+regions[1].Width != 100 {
		t.Errorf("widths %d + %d do not fill 100", regions[0].Width, regions[1].Width)
	}
}

func TestMaxCapsAndRedistributes(t *testing.T) {
	regions := NewLayout(Horizontal, Max{20}, Fill{1}).Split(area(100, 10))
	assertRegionsEqual(t, "max+fill", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 20, Height: 10},
		{X: 20, Y: 0, Width: 80, Height: 10},
	})
}

func TestOverflowShrinksProportionally(t *testing.T) {
	regions := NewLayout(Horizontal, Length{60}, Length{60}).Split(area(100, 10))
	assertRegionsEqual(t, "overflow", regions, []geometry.Region{
		{X: 0, Y: 0, Width: 50, Height: 10},
		{X: 50, Y: 0, Width: 50, Height: 10},
	})
}

func TestSpacingBetweenRegions(t *testing.T) {
	regions := NewLayout(Horizontal, Length{10}, Length{10}).WithSpacing(2).Split(area(30, 5))
	if regions[1].X != 12 {
		t.Errorf("second region x = %d, want 12", regions[1].X)
	}
}

func TestMarginShrinksArea(t *testing.T) {
	regions := NewLayout(Vertical, Fill{1}).WithMargin(1).Split(area(10, 10))
	assertRegionsEqual(t, "margin", regions, []geometry.Region{
		{X: 1, Y: 1, Width: 8, Height: 8},
	})
}

func TestFlexOffsets(t *testing.T) {
	type tc struct {
		flex  Flex
		total int
		want  []int
	}

	tests := map[string]tc{
		"start":         {flex: FlexStart, total: 20, want: []int{0, 4}},
		"end":           {flex: FlexEnd, total: 20, want: []int{12, 16}},
		"center":        {flex: FlexCenter, total: 20, want: []int{6, 10}},
		"space between": {flex: FlexSpaceBetween, total: 20, want: []int{0, 16}},
		"space around":  {flex: FlexSpaceAround, total: 16, want: []int{2, 10}},
		"space evenly":  {flex: FlexSpaceEvenly, total: 16, want: []int{3, 10}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			regions := NewLayout(Horizontal, Length{4}, Length{4}).WithFlex(tt.flex).Split(area(tt.total, 1))
			for i, want := range tt.want {
				if regions[i].X != want {
					t.Errorf("region %d x = %d, want %d", i, regions[i].X, want)
				}
			}
		})
	}
}

func TestEmptyAreaYieldsEmptyRegions(t *testing.T) {
	regions := NewLayout(Horizontal, Fill{1}, Length{3}).Split(geometry.NewRegion(2, 3, 0, 10))
	assertRegionsEqual(t, "empty", regions, []geometry.Region{
		{X: 2, Y: 3}, {X: 2, Y: 3},
	})
}

func TestNoConstraints(t *testing.T) {
	if regions := NewLayout(Vertical).Split(area(10, 10)); regions != nil {
		t.Errorf("got %v, want nil", regions)
	}
}

func TestBuilderMatchesLayout(t *testing.T) {
	built := NewBuilder().
		Direction(Vertical).
		Constraints(Length{3}, Fill{1}).
		Spacing(1).
		Margin(1).
		Split(area(10, 12))
	direct := NewLayout(Vertical, Length{3}, Fill{1}).WithSpacing(1).WithMargin(1).Split(area(10, 12))
	assertRegionsEqual(t, "builder", built, direct)
}

func TestSplitHelpers(t *testing.T) {
	rows := SplitVertical(area(10, 10), Length{2}, Fill{1})
	cols := SplitHorizontal(area(10, 10), Length{2}, Fill{1})
	if rows[1] != geometry.NewRegion(0, 2, 10, 8) {
		t.Errorf("rows[1] = %v", rows[1])
	}
	if cols[1] != geometry.NewRegion(2, 0, 8, 10) {
		t.Errorf("cols[1] = %v", cols[1])
	}
}
