// Package dataset provides example datasets for testing and demonstrating
// the geoplot tools.
//
// Datasets are go-gg tables (github.com/aclements/go-gg/table).
package dataset

import (
	"math/rand"

	"github.com/aclements/go-gg/table"
)

// Orientation returns the bundled orientation sample: 300 strike
// directions in degrees clockwise from North ("strike_deg") labeled by
// "category". Cat1 entries cluster near 100 degrees, Cat2 near 320, and
// Rand entries are scattered over the full circle.
//
// Each call builds a fresh table, so callers may extend their copy freely.
func Orientation() *table.Table {
	strikes := make([]float64, len(orientationStrikes))
	for i, s := range orientationStrikes {
		strikes[i] = float64(s)
	}
	cats := make([]string, 0, len(orientationStrikes))
	cats = append(cats, repeat("Cat1", 50)...)
	cats = append(cats, repeat("Cat2", 150)...)
	cats = append(cats, repeat("Rand", 100)...)
	return new(table.Builder).
		Add("strike_deg", strikes).
		Add("category", cats).
		Done()
}

// Clustered builds a synthetic orientation table with nCat1 directions
// normally spread around 100 degrees ("Cat1"), nCat2 around 320 degrees
// ("Cat2"), and nRand uniform directions ("Rand"). The same seed always
// yields the same table.
func Clustered(nCat1, nCat2, nRand int, seed int64) *table.Table {
	rng := rand.New(rand.NewSource(seed))

	dirs := make([]float64, 0, nCat1+nCat2+nRand)
	cats := make([]string, 0, nCat1+nCat2+nRand)
	gauss := func(mean, sigma float64) float64 {
		d := mean + rng.NormFloat64()*sigma
		for d < 0 {
			d += 360
		}
		for d >= 360 {
			d -= 360
		}
		return d
	}
	for range nCat1 {
		dirs = append(dirs, gauss(100, 5))
		cats = append(cats, "Cat1")
	}
	for range nCat2 {
		dirs = append(dirs, gauss(320, 8))
		cats = append(cats, "Cat2")
	}
	for range nRand {
		dirs = append(dirs, rng.Float64()*360)
		cats = append(cats, "Rand")
	}
	return new(table.Builder).
		Add("strike_deg", dirs).
		Add("category", cats).
		Done()
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// orientationStrikes lists the sample strikes in degrees: 50 Cat1 rows,
// then 150 Cat2 rows, then 100 Rand rows.
var orientationStrikes = []int{
	106, 108, 111, 95, 92, 110, 100, 97, 110, 106, 114, 89, 92, 108, 90,
	103, 110, 97, 107, 106, 104, 103, 86, 108, 107, 106, 96, 112, 114, 88,
	95, 93, 100, 98, 114, 88, 110, 103, 89, 101, 95, 111, 108, 110, 109,
	90, 98, 93, 115, 108, 334, 340, 322, 329, 328, 336, 312, 339, 332, 312,
	310, 345, 334, 325, 300, 330, 325, 326, 303, 349, 333, 313, 339, 342, 322,
	325, 346, 347, 347, 319, 339, 307, 297, 349, 327, 319, 320, 309, 308, 305,
	323, 291, 306, 347, 297, 313, 333, 293, 305, 346, 350, 299, 340, 295, 342,
	327, 329, 295, 346, 311, 345, 328, 336, 346, 336, 318, 308, 336, 346, 306,
	301, 320, 326, 303, 302, 291, 332, 305, 325, 294, 311, 316, 312, 321, 321,
	343, 343, 300, 312, 316, 318, 304, 312, 348, 318, 332, 309, 306, 291, 335,
	318, 333, 314, 327, 342, 334, 339, 315, 327, 300, 296, 336, 311, 300, 329,
	321, 327, 304, 339, 335, 318, 346, 318, 314, 302, 297, 306, 299, 320, 300,
	346, 309, 297, 315, 303, 346, 332, 344, 303, 340, 298, 338, 327, 304, 296,
	320, 350, 329, 300, 349, 170, 157, 132, 137, 1, 328, 224, 145, 172, 53,
	296, 175, 127, 250, 358, 233, 212, 150, 119, 142, 304, 106, 139, 11, 163,
	326, 282, 158, 332, 261, 40, 165, 242, 278, 346, 167, 98, 324, 262, 129,
	273, 90, 42, 155, 27, 241, 257, 207, 314, 83, 250, 232, 310, 318, 50,
	94, 297, 314, 96, 278, 117, 334, 108, 238, 45, 44, 243, 171, 44, 147,
	185, 192, 344, 275, 109, 338, 126, 279, 225, 342, 115, 289, 147, 131, 180,
	12, 326, 293, 3, 291, 122, 2, 254, 286, 74, 16, 69, 116, 196, 47,
}
