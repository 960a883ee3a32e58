package particle

import "math"

// Box describes a rectangular simulation box with optional periodicity.
//
// L holds the edge lengths per axis. An axis with L[k] > 0 is periodic and
// distances along it follow the minimum image convention; an axis with
// L[k] == 0 is open (plain Cartesian difference).
type Box struct {
	// L is the box edge length per axis; 0 marks an open (non-periodic) axis.
	L [3]float64
}

// OpenBox returns a Box with all axes open, i.e. plain Cartesian geometry.
func OpenBox() Box {
	return Box{}
}

// CubicBox returns a fully periodic Box with edge length l on every axis.
func CubicBox(l float64) Box {
	return Box{L: [3]float64{l, l, l}}
}

// Displacement returns the minimum-image displacement vector from a to b.
// Open axes use the plain difference b[k]-a[k].
// Complexity: O(1).
func (bx Box) Displacement(a, b [3]float64) [3]float64 {
	var d [3]float64
	for k := 0; k < 3; k++ {
		d[k] = b[k] - a[k]
		if bx.L[k] > 0 {
			d[k] -= bx.L[k] * math.Round(d[k]/bx.L[k])
		}
	}

	return d
}

// Distance returns the minimum-image distance between positions a and b.
// Complexity: O(1).
func (bx Box) Distance(a, b [3]float64) float64 {
	d := bx.Displacement(a, b)

	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

// Fold maps position p into the primary box image [0, L) on every periodic
// axis; open axes pass through unchanged.
// Complexity: O(1).
func (bx Box) Fold(p [3]float64) [3]float64 {
	for k := 0; k < 3; k++ {
		if bx.L[k] > 0 {
			p[k] -= bx.L[k] * math.Floor(p[k]/bx.L[k])
		}
	}

	return p
}
