// Package dist - special functions backing the Student-t family.
//
// Only what the public surface needs is implemented: the regularized
// incomplete beta function I_x(a,b), evaluated with the standard
// continued-fraction expansion (modified Lentz iteration). Log-gamma
// comes from the standard library.
package dist

import "math"

const (
	// betaMaxIter bounds the Lentz iteration. Near the crossover point
	// the fraction needs on the order of √max(a,b) terms, so this cap
	// covers degrees of freedom up to about 10⁶.
	betaMaxIter = 1000

	// betaEps is the relative convergence tolerance of the continued
	// fraction.
	betaEps = 1e-14

	// betaTiny guards Lentz denominators away from exact zero.
	betaTiny = 1e-300
)

// regIncBeta computes the regularized incomplete beta function I_x(a,b)
// for a, b > 0 and x in [0,1]. Out-of-range x is clamped to the
// boundary values.
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Shared log prefactor: x^a (1-x)^b / (a·B(a,b)), in log space.
	lgAB, _ := math.Lgamma(a + b)
	lgA, _ := math.Lgamma(a)
	lgB, _ := math.Lgamma(b)
	front := math.Exp(lgAB - lgA - lgB + a*math.Log(x) + b*math.Log(1-x))

	// The continued fraction converges fast only for x below the
	// crossover point; above it, evaluate the mirrored tail.
	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the continued fraction of the
// incomplete beta integral by the modified Lentz method.
func betaContinuedFraction(a, b, x float64) float64 {
	c := 1.0
	d := 1 - (a+b)*x/(a+1)
	if math.Abs(d) < betaTiny {
		d = betaTiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= betaMaxIter; m++ {
		fm := float64(m)

		// Even step.
		num := fm * (b - fm) * x / ((a + 2*fm - 1) * (a + 2*fm))
		d = 1 + num*d
		if math.Abs(d) < betaTiny {
			d = betaTiny
		}
		c = 1 + num/c
		if math.Abs(c) < betaTiny {
			c = betaTiny
		}
		d = 1 / d
		h *= d * c

		// Odd step.
		num = -(a + fm) * (a + b + fm) * x / ((a + 2*fm) * (a + 2*fm + 1))
		d = 1 + num*d
		if math.Abs(d) < betaTiny {
			d = betaTiny
		}
		c = 1 + num/c
		if math.Abs(c) < betaTiny {
			c = betaTiny
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < betaEps {
			break
		}
	}
	return h
}
