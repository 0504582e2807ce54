// Package noise implements the deterministic 3D value-noise field behind the
// animation, its fractal (fBm) sum, and the lookup table that turns an
// intensity into a display glyph.
package noise

import "math"

// Per-axis lattice primes. Products wrap at 32 bits.
const (
	primeX uint32 = 73856093
	primeY uint32 = 19349663
	primeZ uint32 = 83492791
)

// bandFreq is the sine frequency of the contour bands laid over the fBm value.
const bandFreq = 10 * math.Pi

// Params holds the fractal noise parameters. They are fixed for the
// lifetime of a Field.
type Params struct {
	Scale      float64 // Spatial scale applied to cell coordinates
	Speed      float64 // Time multiplier for the z axis
	Octaves    int
	Lacunarity float64 // Frequency multiplier per octave
	Gain       float64 // Amplitude multiplier per octave
}

// DefaultParams returns the parameters used when no configuration is given.
func DefaultParams() Params {
	return Params{
		Scale:      0.01,
		Speed:      0.02,
		Octaves:    4,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// mix32 is a two-round multiply-xorshift avalanche.
func mix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

// hash maps a lattice point to [0,1].
func hash(x, y, z int32) float64 {
	h := uint32(x)*primeX ^ uint32(y)*primeY ^ uint32(z)*primeZ
	return float64(mix32(h)) / float64(math.MaxUint32)
}

// smooth is the quintic fade t³(t(6t−15)+10).
func smooth(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Noise3 samples value noise at (x, y, z). The result is in [0,1] and
// depends only on the arguments.
func Noise3(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi, yi, zi := int32(fx), int32(fy), int32(fz)

	u := smooth(x - fx)
	v := smooth(y - fy)
	w := smooth(z - fz)

	c000 := hash(xi, yi, zi)
	c100 := hash(xi+1, yi, zi)
	c010 := hash(xi, yi+1, zi)
	c110 := hash(xi+1, yi+1, zi)
	c001 := hash(xi, yi, zi+1)
	c101 := hash(xi+1, yi, zi+1)
	c011 := hash(xi, yi+1, zi+1)
	c111 := hash(xi+1, yi+1, zi+1)

	x00 := lerp(u, c000, c100)
	x10 := lerp(u, c010, c110)
	x01 := lerp(u, c001, c101)
	x11 := lerp(u, c011, c111)

	return lerp(w, lerp(v, x00, x10), lerp(v, x01, x11))
}

// FBM sums octaves of Noise3 with rising frequency and falling amplitude.
// The sum is divided by 1 - gain^octaves, which keeps it near [0,1] for
// any octave count; when that denominator vanishes (gain = 1) it is 1.
func FBM(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}

	var sum float64
	amplitude := 0.5
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		sum += amplitude * Noise3(x*frequency, y*frequency, z*frequency)
		amplitude *= gain
		frequency *= lacunarity
	}

	norm := 1 - math.Pow(gain, float64(octaves))
	if math.Abs(norm) < 1e-9 {
		norm = 1
	}
	return sum / norm
}

// Field evaluates the banded fBm value used for every cell of a frame.
type Field struct {
	params Params
}

// NewField creates a field for the given parameters.
func NewField(p Params) *Field {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	return &Field{params: p}
}

// Sample returns the blended intensity in [0,1] at a raw point.
// Raw fBm is mixed with sine contour bands at 0.65/0.35.
func (f *Field) Sample(x, y, z float64) float64 {
	v := FBM(x, y, z, f.params.Octaves, f.params.Lacunarity, f.params.Gain)
	band := 0.5 * (math.Sin(v*bandFreq) + 1)
	return clamp01(0.65*v + 0.35*band)
}

// At returns the intensity for a grid cell at the given elapsed time in seconds.
// Rows are squashed by half because terminal cells are about twice as tall as wide.
func (f *Field) At(row, col int, elapsed float64) float64 {
	s := f.params.Scale
	return f.Sample(float64(col)*s, float64(row)*s*0.5, elapsed*f.params.Speed)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
