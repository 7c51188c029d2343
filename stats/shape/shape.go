package shape

import "math"

// Centroid returns the barycenter of values interpreted as a distribution
// over positions evenly spaced on [0, valueRange]:
//
//	centroid = sum(pos_i * v_i) / sum(v_i), pos_i = i * valueRange / (n-1)
//
// Vectors with fewer than two elements or zero total mass have centroid 0.
func Centroid(values []float64, valueRange float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	delta := valueRange / float64(n-1)
	sum := 0.0
	weightedSum := 0.0

	for i, v := range values {
		sum += v
		weightedSum += delta * float64(i) * v
	}

	if sum == 0 {
		return 0
	}

	return weightedSum / sum
}

// CentralMoments returns the central moments of orders 0 through 4 of values
// over positions evenly spaced on [0, valueRange]:
//
//	m_k = sum((pos_i - centroid)^k * v_i) / sum(v_i)
//
// m[0] is 1 and m[1] is 0 by construction. Vectors with fewer than two
// elements or zero total mass yield all-zero moments.
func CentralMoments(values []float64, valueRange float64) [5]float64 {
	var m [5]float64

	n := len(values)
	if n < 2 {
		return m
	}

	norm := 0.0
	for _, v := range values {
		norm += v
	}

	if norm == 0 {
		return m
	}

	m[0] = 1

	cent := Centroid(values, valueRange)
	delta := valueRange / float64(n-1)

	var m2, m3, m4 float64

	for i, v := range values {
		d := delta*float64(i) - cent
		d2 := d * d
		m2 += d2 * v
		m3 += d2 * d * v
		m4 += d2 * d2 * v
	}

	m[2] = m2 / norm
	m[3] = m3 / norm
	m[4] = m4 / norm

	return m
}

// DistributionShape reduces central moments to spread, skewness and excess
// kurtosis:
//
//	spread   = m2
//	skewness = m3 / m2^1.5
//	kurtosis = m4 / m2^2 - 3
//
// A zero second moment yields (0, 0, -3).
func DistributionShape(m [5]float64) (spread, skewness, kurtosis float64) {
	if m[2] == 0 {
		return 0, 0, -3
	}

	spread = m[2]
	skewness = m[3] / math.Pow(m[2], 1.5)
	kurtosis = m[4]/(m[2]*m[2]) - 3

	return spread, skewness, kurtosis
}

// Flatness returns the ratio of the geometric mean to the arithmetic mean of
// values, in [0, 1] for nonnegative input. A vector containing a zero has a
// zero geometric mean and therefore flatness 0; an all-zero vector is the
// 0/0 case and yields NaN.
func Flatness(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for _, v := range values {
		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(n)
	if meanLin == 0 {
		return math.NaN()
	}

	if hasZero {
		return 0
	}

	return math.Exp(sumLog/float64(n)) / meanLin
}

// Entropy returns the Shannon entropy in bits of values normalized to unit
// sum. Zero entries contribute nothing; a zero-mass vector has entropy 0.
func Entropy(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	if sum <= 0 {
		return 0
	}

	ent := 0.0

	for _, v := range values {
		if v > 0 {
			p := v / sum
			ent -= p * math.Log2(p)
		}
	}

	return ent
}
