package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the section, the roots of
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// For a first-order section (A2 = 0) the second pole is zero.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section, the roots of
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles lie strictly inside the unit
// circle, using the stability triangle |A2| < 1 and |A1| < 1 + A2.
func (c *Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Stable reports whether every section of the cascade is stable. One
// unstable section is enough to make the whole cascade diverge.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}

	return true
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	d := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + d) / den,
		(-complex(b, 0) - d) / den,
	}
}
