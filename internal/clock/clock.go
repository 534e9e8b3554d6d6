//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package clock implements the two pure time-budget functions described in
// spec.md §4.5. Neither holds state; both take every input explicitly so
// the search package can call them without owning a clock instance.
package clock

import (
	"math"
	"time"
)

// Tuning constants from spec.md §4.5.
const (
	Emergency    = 5000 * time.Millisecond
	MinMoveTime  = 50 * time.Millisecond
	Buffer       = 500 * time.Millisecond
	topMovesLeft = 30.0
	botMovesLeft = 10.0
)

// Budget returns how long the engine should spend on the move to play now,
// given the clock remaining, the increment, and the material phase in
// [0,1] (1.0 is the opening, 0.0 is bare kings).
func Budget(remaining, increment time.Duration, phase float64) time.Duration {
	if remaining+increment < Emergency {
		t := increment - Buffer
		if t < MinMoveTime {
			t = MinMoveTime
		}
		return t
	}
	movesLeft := math.Round(topMovesLeft*phase + botMovesLeft*(1-phase))
	if movesLeft < 1 {
		movesLeft = 1
	}
	return time.Duration(float64(remaining)/movesLeft) + increment
}

// ShouldContinue decides whether the iterative-deepening driver should
// start another iteration: it estimates the effective branching factor
// from the last two iterations' node counts and projects whether the next
// iteration would still finish before deadline.
func ShouldContinue(nodesThisIter, nodesPrevIter uint64, iterWallTime time.Duration, now, deadline time.Time) bool {
	if nodesPrevIter == 0 || nodesThisIter == 0 {
		return now.Before(deadline)
	}
	ebf := math.Sqrt(float64(nodesThisIter) / float64(nodesPrevIter))
	expectedNodesNext := float64(nodesThisIter) * ebf
	avgTimePerNode := float64(iterWallTime) / float64(nodesThisIter)
	expectedTimeNext := time.Duration(expectedNodesNext * avgTimePerNode)
	return now.Add(expectedTimeNext).Before(deadline) || now.Add(expectedTimeNext).Equal(deadline)
}
