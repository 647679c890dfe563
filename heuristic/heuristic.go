package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultCoefficient is the elevation weighting used when none is configured.
const DefaultCoefficient = 40.0

// ErrUnknownKind indicates a heuristic name that ParseKind does not recognise.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Func scores the cost or estimate of moving from a to b.
type Func func(a, b r3.Vec) float64

// WeightedEuclidean returns |b-a| plus the asymmetric elevation penalty.
func WeightedEuclidean(a, b r3.Vec, coefficient float64) float64 {
	dist := r3.Norm(r3.Sub(b, a))
	dy := b.Y - a.Y
	if dy > 0 {
		return dist + coefficient*dy
	}
	return dist + coefficient/2*-dy
}

// Manhattan returns |dx|+|dy|+|dz|.
func Manhattan(a, b r3.Vec) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) + math.Abs(a.Z-b.Z)
}

// Chebyshev returns max(|dx|, |dy|, |dz|).
func Chebyshev(a, b r3.Vec) float64 {
	return max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z))
}

// Kind names one of the closed set of distance functions.
type Kind int

const (
	// KindWeightedEuclidean selects WeightedEuclidean.
	KindWeightedEuclidean Kind = iota
	// KindManhattan selects Manhattan.
	KindManhattan
	// KindChebyshev selects Chebyshev.
	KindChebyshev

	numKinds
)

var kindNames = [...]string{
	KindWeightedEuclidean: "weighted-euclidean",
	KindManhattan:         "manhattan",
	KindChebyshev:         "chebyshev",
}

// Kinds returns every kind in toggle order.
func Kinds() []Kind {
	return []Kind{KindWeightedEuclidean, KindManhattan, KindChebyshev}
}

// String returns the canonical kebab-case name.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// Next returns the kind that follows k in toggle order, wrapping around.
func (k Kind) Next() Kind {
	if !k.Valid() {
		return KindWeightedEuclidean
	}
	return (k + 1) % numKinds
}

// ParseKind maps a name (case-insensitive; "_" and " " accepted for "-") to a Kind.
// "euclidean" and "weighted" are accepted as aliases of weighted-euclidean.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "weighted-euclidean", "euclidean", "weighted":
		return KindWeightedEuclidean, nil
	case "manhattan":
		return KindManhattan, nil
	case "chebyshev":
		return KindChebyshev, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Params is an immutable selection of a distance function and the elevation
// coefficient it uses. The coefficient only affects KindWeightedEuclidean.
type Params struct {
	Kind        Kind
	Coefficient float64
}

// DefaultParams returns weighted-euclidean with DefaultCoefficient.
func DefaultParams() Params {
	return Params{Kind: KindWeightedEuclidean, Coefficient: DefaultCoefficient}
}

// Func binds p into a Func. The coefficient is captured by value, so later
// changes to a configuration do not alter an already built Func.
func (p Params) Func() Func {
	switch p.Kind {
	case KindManhattan:
		return Manhattan
	case KindChebyshev:
		return Chebyshev
	default:
		c := p.Coefficient
		return func(a, b r3.Vec) float64 { return WeightedEuclidean(a, b, c) }
	}
}

// Eval scores a -> b under p.
func (p Params) Eval(a, b r3.Vec) float64 {
	return p.Func()(a, b)
}
