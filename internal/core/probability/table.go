// Package probability computes pairwise win probabilities for a dice set.
package probability

import (
	"math/big"

	"github.com/louisbranch/fairdice/internal/core/dice"
)

// Table is a square matrix indexed by die position. Cell (i, j) counts how
// often die i shows a strictly higher face than die j. Ties are counted
// separately and belong to neither side. Diagonal cells are computed like any
// other cell.
type Table struct {
	size   int
	wins   []int
	ties   []int
	totals []int
}

// Compute compares every face of every ordered pair of dice.
func Compute(set dice.Set) Table {
	all := set.Dice()
	t := newTable(len(all))
	for i, first := range all {
		for j, second := range all {
			wins, ties := 0, 0
			for _, a := range first.Faces() {
				for _, b := range second.Faces() {
					switch {
					case a > b:
						wins++
					case a == b:
						ties++
					}
				}
			}
			cell := t.index(i, j)
			t.wins[cell] = wins
			t.ties[cell] = ties
			t.totals[cell] = dice.FacesPerDie * dice.FacesPerDie
		}
	}
	return t
}

func newTable(size int) Table {
	return Table{
		size:   size,
		wins:   make([]int, size*size),
		ties:   make([]int, size*size),
		totals: make([]int, size*size),
	}
}

func (t Table) index(i, j int) int {
	return i*t.size + j
}

// Size returns the number of dice in the table.
func (t Table) Size() int {
	return t.size
}

// Wins returns how many comparisons die i won against die j.
func (t Table) Wins(i, j int) int {
	return t.wins[t.index(i, j)]
}

// Ties returns how many comparisons between dice i and j were equal.
func (t Table) Ties(i, j int) int {
	return t.ties[t.index(i, j)]
}

// Total returns how many comparisons were made between dice i and j.
func (t Table) Total(i, j int) int {
	return t.totals[t.index(i, j)]
}

// Probability returns the probability that die i beats die j.
func (t Table) Probability(i, j int) float64 {
	total := t.Total(i, j)
	if total == 0 {
		return 0
	}
	return float64(t.Wins(i, j)) / float64(total)
}

// Rat returns the probability that die i beats die j as an exact fraction.
func (t Table) Rat(i, j int) *big.Rat {
	total := t.Total(i, j)
	if total == 0 {
		return new(big.Rat)
	}
	return big.NewRat(int64(t.Wins(i, j)), int64(total))
}

// Beats reports whether die i wins against die j more often than it loses.
func (t Table) Beats(i, j int) bool {
	return t.Wins(i, j) > t.Wins(j, i)
}

// Cycle returns die indices d0, d1, ..., dk where each die beats the next
// and dk beats d0, or nil when the "beats" relation has no cycle. A cycle is
// what makes a set non-transitive.
func (t Table) Cycle() []int {
	const (
		unvisited = iota
		onPath
		done
	)
	marks := make([]int, t.size)
	var path []int
	var found []int

	var visit func(i int) bool
	visit = func(i int) bool {
		marks[i] = onPath
		path = append(path, i)
		for j := 0; j < t.size; j++ {
			if j == i || !t.Beats(i, j) {
				continue
			}
			switch marks[j] {
			case onPath:
				for k, v := range path {
					if v == j {
						found = append([]int(nil), path[k:]...)
						return true
					}
				}
			case unvisited:
				if visit(j) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		marks[i] = done
		return false
	}

	for i := 0; i < t.size; i++ {
		if marks[i] == unvisited && visit(i) {
			return found
		}
	}
	return nil
}
