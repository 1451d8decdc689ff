package style

import (
	"fmt"
	"math/big"
	"strings"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// Unit is the unit of a Scalar dimension.
type Unit int

const (
	// UnitAuto sizes to content, or to the available space when there is
	// no content to measure.
	UnitAuto Unit = iota
	UnitCells
	// UnitPercent is relative to the basis on the scalar's own axis.
	UnitPercent
	// UnitWidth is a percentage of the basis width ("50w").
	UnitWidth
	// UnitHeight is a percentage of the basis height ("50h").
	UnitHeight
	// UnitViewWidth is a percentage of the viewport width ("20vw").
	UnitViewWidth
	// UnitViewHeight is a percentage of the viewport height ("20vh").
	UnitViewHeight
	// UnitFraction is a share of the remaining space ("1fr"). Flow layouts
	// divide space between fractions; in a box model a fraction resolves to
	// the whole available extent.
	UnitFraction
)

var unitSuffixes = [...]string{
	UnitAuto:       "",
	UnitCells:      "",
	UnitPercent:    "%",
	UnitWidth:      "w",
	UnitHeight:     "h",
	UnitViewWidth:  "vw",
	UnitViewHeight: "vh",
	UnitFraction:   "fr",
}

// parseOrder lists suffixes longest first so "vw" is not read as "w".
var parseOrder = []Unit{UnitFraction, UnitViewWidth, UnitViewHeight, UnitPercent, UnitWidth, UnitHeight}

// Scalar is a dimension with a unit. The value is an exact rational held as
// an int64 numerator and denominator so Scalar stays a comparable value type.
// The zero Scalar is Auto.
type Scalar struct {
	Unit Unit
	num  int64
	den  int64
}

// Auto is the automatic dimension.
var Auto = Scalar{}

// NewScalar creates a Scalar of num/den units. den must be positive.
func NewScalar(unit Unit, num, den int64) Scalar {
	if unit == UnitAuto {
		return Auto
	}
	r := big.NewRat(num, den)
	return Scalar{Unit: unit, num: r.Num().Int64(), den: r.Denom().Int64()}
}

// Cells returns a fixed dimension of n cells.
func Cells(n int64) Scalar { return NewScalar(UnitCells, n, 1) }

// Percent returns n percent of the axis basis.
func Percent(n int64) Scalar { return NewScalar(UnitPercent, n, 1) }

// Fraction returns n fractional units.
func Fraction(n int64) Scalar { return NewScalar(UnitFraction, n, 1) }

// IsAuto reports whether the scalar is automatic.
func (s Scalar) IsAuto() bool { return s.Unit == UnitAuto }

// IsFraction reports whether the scalar is measured in fr units.
func (s Scalar) IsFraction() bool { return s.Unit == UnitFraction }

// Value returns the scalar's numeric value as a new exact rational.
func (s Scalar) Value() *big.Rat {
	if s.Unit == UnitAuto || s.den == 0 {
		return new(big.Rat)
	}
	return big.NewRat(s.num, s.den)
}

// Ratio returns the value as a numerator and positive denominator.
func (s Scalar) Ratio() (num, den int64) {
	if s.den == 0 {
		return 0, 1
	}
	return s.num, s.den
}

// Resolve converts the scalar to cells. axis is the basis on the scalar's own
// axis, basisWidth and basisHeight are the container basis, and available is
// the extent left for the widget once its margin is removed. Auto and
// fraction scalars resolve to available.
func (s Scalar) Resolve(axis, basisWidth, basisHeight *big.Rat, viewport geometry.Size, available *big.Rat) *big.Rat {
	v := s.Value()
	switch s.Unit {
	case UnitCells:
		return v
	case UnitPercent:
		return percentOf(v, axis)
	case UnitWidth:
		return percentOf(v, basisWidth)
	case UnitHeight:
		return percentOf(v, basisHeight)
	case UnitViewWidth:
		return percentOf(v, new(big.Rat).SetInt64(int64(viewport.Width)))
	case UnitViewHeight:
		return percentOf(v, new(big.Rat).SetInt64(int64(viewport.Height)))
	}
	return new(big.Rat).Set(available)
}

var hundred = big.NewRat(100, 1)

func percentOf(pct, basis *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(pct, basis)
	return r.Quo(r, hundred)
}

// String formats the scalar the way ParseScalar reads it.
func (s Scalar) String() string {
	if s.Unit == UnitAuto {
		return "auto"
	}
	return s.Value().RatString() + unitSuffixes[s.Unit]
}

// ParseScalar parses a dimension such as "auto", "3", "50%", "1fr", "2.5vw"
// or "1/3w". Decimal values are read exactly. Negative values are rejected.
func ParseScalar(text string) (Scalar, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" || s == "auto" {
		return Auto, nil
	}

	unit := UnitCells
	for _, u := range parseOrder {
		if suffix := unitSuffixes[u]; strings.HasSuffix(s, suffix) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Auto, fmt.Errorf("style: scalar %q: %w", text, ErrInvalidScalar)
	}
	if v.Sign() < 0 {
		return Auto, fmt.Errorf("style: negative scalar %q: %w", text, ErrInvalidScalar)
	}
	if !v.Num().IsInt64() || !v.Denom().IsInt64() {
		return Auto, fmt.Errorf("style: scalar %q out of range: %w", text, ErrInvalidScalar)
	}
	return Scalar{Unit: unit, num: v.Num().Int64(), den: v.Denom().Int64()}, nil
}
