package spin

import (
	"errors"
	"math"
)

// MaxTwoJ bounds the accepted spin labels (2j ≤ MaxTwoJ). The bound keeps
// every memoization key space finite and every factorial exactly
// representable in float64.
const MaxTwoJ = 40

// Sentinel errors for quantum-number validation.
var (
	// ErrInvalidSpin indicates a spin that is not a non-negative multiple
	// of 1/2 (or exceeds MaxTwoJ/2).
	ErrInvalidSpin = errors.New("spin: not a valid half-integer spin")

	// ErrCouplingRange indicates a coupling target outside the triangle
	// range |l−r| ≤ s ≤ l+r (or of the wrong integer/half-integer parity).
	ErrCouplingRange = errors.New("spin: coupling outside allowed range")

	// ErrBadSlot indicates a direct-sum embedding slot other than 1 or 2.
	ErrBadSlot = errors.New("spin: direct-sum slot must be 1 or 2")
)

// Half is a half-integer spin label stored as twice its value, so that all
// arithmetic stays integral: Half(3) is spin 3/2, Half(4) is spin 2.
type Half int

// FromFloat converts a floating spin value (e.g. 1.5) into a Half label.
// Returns ErrInvalidSpin unless the value is a non-negative multiple of 1/2
// within 1e-9, bounded by MaxTwoJ/2.
func FromFloat(v float64) (Half, error) {
	d := v * 2
	r := math.Round(d)
	if v < 0 || math.Abs(d-r) > 1e-9 || int(r) > MaxTwoJ {
		return 0, ErrInvalidSpin
	}
	return Half(int(r)), nil
}

// TwoJ returns the doubled value.
func (h Half) TwoJ() int { return int(h) }

// Dim returns the representation dimension 2j+1.
func (h Half) Dim() int { return int(h) + 1 }

// Float returns the spin as a float64.
func (h Half) Float() float64 { return float64(h) / 2 }

// IsInteger reports whether the spin is integral.
func (h Half) IsInteger() bool { return h%2 == 0 }

// valid reports whether h is inside the accepted label range.
func (h Half) valid() bool { return h >= 0 && int(h) <= MaxTwoJ }

// RepDim returns the dimension of the (l,r) or self-conjugate [l,r]
// Lorentz representation: dim(l)² when l == r, otherwise 2·dim(l)·dim(r)
// for the parity-doubled space.
func RepDim(l, r Half) int {
	if l == r {
		return l.Dim() * l.Dim()
	}
	return 2 * l.Dim() * r.Dim()
}

// SCRep returns the chiral labels (l, r) of the self-conjugate
// representation carrying spin s: (s/2, s/2) for integer s and
// ((2s+1)/4, (2s−1)/4) for half-integer s.
func SCRep(s Half) (l, r Half) {
	if s.IsInteger() {
		return s / 2, s / 2
	}
	return (s + 1) / 2, (s - 1) / 2
}

// Decomp enumerates the irreducible (l,r) pieces of the product
// (l1,r1)⊗(l2,r2), left label first, in the fixed iteration order the
// coupling-coefficient lists are matched against.
func Decomp(l1, r1, l2, r2 Half) [][2]Half {
	var out [][2]Half
	for l := absHalf(l1 - l2); l <= l1+l2; l += 2 {
		for r := absHalf(r1 - r2); r <= r1+r2; r += 2 {
			out = append(out, [2]Half{l, r})
		}
	}
	return out
}

func absHalf(h Half) Half {
	if h < 0 {
		return -h
	}
	return h
}

// triangle reports whether s couples l ⊗ r.
func triangle(l, r, s Half) bool {
	return s >= absHalf(l-r) && s <= l+r && (l+r+s)%2 == 0
}
