package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

// StandardGravity is the default gravitational acceleration in m/s^2.
// Gravity is always threaded through [Chain] explicitly; this constant only
// names the usual value.
const StandardGravity = 9.81

// Chain holds the physical parameters of a cart-mounted n-link pendulum:
// masses[0] is the cart, masses[j+1] the point mass at the end of link j,
// lengths[j] the length of link j. Parameters are immutable for a run.
type Chain struct {
	Masses  []float64
	Lengths []float64
	Gravity float64

	// suffix[k] = sum of Masses[k:], precomputed once since masses never
	// change across steps.
	suffix []float64
}

// NewChain validates the parameters and precomputes the mass suffix sums.
func NewChain(joints int, masses, lengths []float64, gravity float64) (*Chain, error) {
	if joints <= 0 {
		return nil, fmt.Errorf("%w: joints = %d", dynamo.ErrInvalidConfiguration, joints)
	}
	if len(masses) != joints+1 {
		return nil, fmt.Errorf("%w: masses has length %d, want %d", dynamo.ErrDimensionMismatch, len(masses), joints+1)
	}
	if len(lengths) != joints {
		return nil, fmt.Errorf("%w: lengths has length %d, want %d", dynamo.ErrDimensionMismatch, len(lengths), joints)
	}
	for i, m := range masses {
		if m <= 0 {
			return nil, fmt.Errorf("%w: masses[%d] = %g", dynamo.ErrNonPositiveParameter, i, m)
		}
	}
	for i, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: lengths[%d] = %g", dynamo.ErrNonPositiveParameter, i, l)
		}
	}
	if gravity <= 0 {
		return nil, fmt.Errorf("%w: gravity = %g", dynamo.ErrNonPositiveParameter, gravity)
	}

	c := &Chain{
		Masses:  append([]float64(nil), masses...),
		Lengths: append([]float64(nil), lengths...),
		Gravity: gravity,
	}
	c.suffix = make([]float64, len(c.Masses)+1)
	for k := len(c.Masses) - 1; k >= 0; k-- {
		c.suffix[k] = c.suffix[k+1] + c.Masses[k]
	}
	return c, nil
}

func (c *Chain) Joints() int {
	return len(c.Lengths)
}

// TotalMass is the cart plus all link masses.
func (c *Chain) TotalMass() float64 {
	return c.suffix[0]
}

// below returns the combined mass hanging distal to joint j: the mass at the
// end of link j plus everything further out.
func (c *Chain) below(j int) float64 {
	return c.suffix[j+1]
}

// CheckState verifies that a state's slices match the chain's joint count
// and that every component is finite.
func (c *Chain) CheckState(s dynamo.State) error {
	n := c.Joints()
	if len(s.Angles) != n {
		return fmt.Errorf("%w: angles has length %d, want %d", dynamo.ErrDimensionMismatch, len(s.Angles), n)
	}
	if len(s.Omegas) != n {
		return fmt.Errorf("%w: angular velocities has length %d, want %d", dynamo.ErrDimensionMismatch, len(s.Omegas), n)
	}
	if !s.IsValid() {
		return dynamo.ErrInvalidState
	}
	return nil
}

// Assemble fills the (n+1)x(n+1) coefficient matrix and right-hand side of
// the equations of motion at the given state. Column 0 multiplies cart
// acceleration, column j+1 the angular acceleration of joint j. The system is
// rebuilt from scratch each step; a and b are reused across steps by the
// caller to avoid per-step allocation.
//
// Row 0 balances horizontal momentum; row p+1 balances angular momentum about
// joint p. Link p's own torque terms carry the combined distal mass below(p);
// cross terms between joints i and p carry below(max(i, p)).
func (c *Chain) Assemble(s dynamo.State, a *mat.Dense, b *mat.VecDense) {
	n := c.Joints()

	a.Set(0, 0, c.TotalMass())
	rhs0 := 0.0
	for i := 0; i < n; i++ {
		li := c.Lengths[i]
		sin, cos := math.Sincos(s.Angles[i])
		a.Set(0, i+1, li*cos*c.below(i))
		rhs0 += s.Omegas[i] * s.Omegas[i] * li * sin * c.below(i)
	}
	b.SetVec(0, rhs0)

	for p := 0; p < n; p++ {
		lp := c.Lengths[p]
		wp := s.Omegas[p]
		sinp, cosp := math.Sincos(s.Angles[p])
		mp := c.below(p)

		a.Set(p+1, 0, lp*cosp*mp)

		rhs := c.Gravity * lp * sinp * mp
		for i := 0; i < n; i++ {
			li := c.Lengths[i]
			wi := s.Omegas[i]
			if i == p {
				a.Set(p+1, p+1, lp*lp*mp)
				continue
			}
			mij := c.below(max(i, p))
			sind, cosd := math.Sincos(s.Angles[i] - s.Angles[p])
			a.Set(p+1, i+1, 2*li*lp*cosd*mij)

			rhs += 2 * li * lp * (wi - wp) * wi * sind * mij
			rhs -= wi * wp * li * lp * sind * sign(p-i) * mij
		}
		b.SetVec(p+1, rhs)
	}
}

// Energy is the total mechanical energy of the chain at a state: kinetic
// energy of the cart and every link mass plus gravitational potential with
// the pivot height as reference. Cart position does not enter.
func (c *Chain) Energy(s dynamo.State) float64 {
	n := c.Joints()
	e := 0.5 * c.Masses[0] * s.CartVel * s.CartVel

	// Running velocity and height of the mass at the end of link j.
	vx := s.CartVel
	vy := 0.0
	y := 0.0
	for j := 0; j < n; j++ {
		l := c.Lengths[j]
		sin, cos := math.Sincos(s.Angles[j])
		vx += l * cos * s.Omegas[j]
		vy -= l * sin * s.Omegas[j]
		y += l * cos

		m := c.Masses[j+1]
		e += 0.5*m*(vx*vx+vy*vy) + m*c.Gravity*y
	}
	return e
}

func sign(d int) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
