/*
Copyright 2026 The sweetsourcod-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package entropy

import (
	"fmt"
	"math"
)

const pi = math.Pi

var (
	gosperFactor = 1.0 / math.Sqrt(7.0)
	gosperAlpha  = math.Asin(math.Sqrt(3.0/7.0) / 2.0)
)

var gosperOrientation = [7]float64{-pi * 2.0 / 3.0, 0.0, 0.0, -pi * 2.0 / 3.0, 0.0, pi * 2.0 / 3.0, 0.0}
var gosperIdxPattern = [7]bool{false, true, true, true, false, false, true}

type point struct {
	x, y float64
}

func (p point) add(q point) point    { return point{p.x + q.x, p.y + q.y} }
func (p point) sub(q point) point    { return point{p.x - q.x, p.y - q.y} }
func (p point) scale(s float64) point { return point{s * p.x, s * p.y} }

// hexAxial2XY maps axial hex-lattice coordinates (q, l) at the given hex
// size back to Cartesian coordinates.
func hexAxial2XY(q, l int, size float64) point {
	return point{
		x: size * (float64(q) + float64(l)/2.0) * math.Sqrt(3.0),
		y: size * float64(l) * 3.0 / 2.0,
	}
}

// hexXY2Axial maps Cartesian coordinates to the nearest axial hex-lattice
// coordinates at the given hex size, using cube-coordinate rounding.
// https://www.redblobgames.com/grids/hexagons/#rounding
func hexXY2Axial(xy point, size float64) (int, int) {
	cubeX := (xy.x*math.Sqrt(3.0)/3.0 - xy.y/3.0) / size
	cubeZ := xy.y * 2.0 / 3.0 / size
	cubeY := -cubeX - cubeZ

	rx := math.Round(cubeX)
	ry := math.Round(cubeY)
	rz := math.Round(cubeZ)

	xDiff := math.Abs(cubeX - rx)
	yDiff := math.Abs(cubeY - ry)
	zDiff := math.Abs(cubeZ - rz)

	switch {
	case xDiff > yDiff && xDiff > zDiff:
		rx = -ry - rz
	case yDiff > zDiff:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return int(rx), int(rz)
}

func rotate(theta float64, r point) point {
	return point{
		x: math.Cos(theta)*r.x - math.Sin(theta)*r.y,
		y: math.Sin(theta)*r.x + math.Cos(theta)*r.y,
	}
}

// getYIdx classifies the turn from direction vector dI to the step dyI into
// one of 7 buckets arranged around a Gosper-curve junction; bucket 4 means
// "negligible step" (dyI is essentially zero relative to dI).
func getYIdx(dI, dyI point) int {
	dot := dyI.x*dI.x + dyI.y*dI.y
	det := dyI.x*dI.y - dyI.y*dI.x
	angle := math.Atan2(det, dot)
	rd := int(math.Round(3.0 * angle / pi))

	if math.Hypot(dyI.x, dyI.y) < 0.01*math.Hypot(dI.x, dI.y) {
		return 4
	}

	switch rd {
	case 0:
		return 0
	case -1:
		return 5
	case -2:
		return 6
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 3
	}
}

// gosperCenter returns the sequence of level-0..level-n Gosper-tile centers
// that nest down to the tile containing pt at level n.
func gosperCenter(pt point, n int) []point {
	sI := math.Pow(gosperFactor, float64(n))
	q, l := hexXY2Axial(pt, sI)
	crI := hexAxial2XY(q, l, sI)
	cI := rotate(float64(n)*gosperAlpha, crI)

	center := make([]point, 0, n+1)
	center = append(center, cI)

	for i := n - 1; i >= 0; i-- {
		sI /= gosperFactor
		rq, rl := hexXY2Axial(rotate(gosperAlpha, crI), sI)
		crI = hexAxial2XY(rq, rl, sI)
		cI = rotate(float64(i)*gosperAlpha, crI)
		center = append(center, cI)
	}

	// reverse in place, level 0 first
	for i, j := 0, len(center)-1; i < j; i, j = i+1, j-1 {
		center[i], center[j] = center[j], center[i]
	}

	return center
}

// gosperIndex walks the nested centers from gosperCenter and decodes, at
// each level, which of the 7 sub-tiles of the Gosper curve was entered -
// the base-7 digits of the final linear index, most significant first.
func gosperIndex(center []point, n int) []int {
	kI, yI := 0, 1
	pattern := true
	dI := point{x: -math.Sqrt(3.0), y: 0.0}

	index := make([]int, 0, n+1)

	if math.Abs(center[0].x)+math.Abs(center[0].y) > 0.1 {
		return []int{-1}
	}

	index = append(index, kI)

	for i := 1; i <= n; i++ {
		dI = rotate(gosperAlpha, rotate(gosperOrientation[yI], dI)).scale(gosperFactor)
		dyI := center[i].sub(center[i-1])

		yI = getYIdx(dI, dyI)

		if pattern {
			kI = yI
			pattern = gosperIdxPattern[yI]
		} else {
			kI = 6 - yI
			pattern = !gosperIdxPattern[yI]
		}

		index = append(index, kI)
	}

	return index
}

// GosperCoordToDistance returns the distance along a level-n Gosper
// space-filling curve of the hex-lattice point (x, y), using the rounding
// construction of doi:10.1109/CYBConf.2017.7985819. n is the recursion
// depth of the curve and must be non-negative. The result is -1 if (x, y)
// does not lie on the level-n curve at all.
func GosperCoordToDistance(x, y float64, n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("entropy: gosper curve recursion level %d must not be negative", n)
	}

	center := gosperCenter(point{x, y}, n)
	index := gosperIndex(center, n)

	if index[0] != 0 {
		return -1, nil
	}

	var distance int64 = 0
	power7 := int64(1)

	for i := 0; i < len(index); i++ {
		distance += int64(index[n-i]) * power7
		power7 *= 7
	}

	return distance, nil
}
