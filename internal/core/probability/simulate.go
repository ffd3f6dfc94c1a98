package probability

import (
	"fmt"

	"github.com/louisbranch/fairdice/internal/core/dice"
)

// Simulate estimates the table by rolling every ordered pair trials times
// with src. The counts are empirical, so Total(i, j) equals trials.
func Simulate(set dice.Set, src dice.Intner, trials int) (Table, error) {
	if trials <= 0 {
		return Table{}, fmt.Errorf("trials must be positive, got %d", trials)
	}
	t := newTable(set.Len())
	for i := 0; i < set.Len(); i++ {
		for j := 0; j < set.Len(); j++ {
			cell := t.index(i, j)
			for n := 0; n < trials; n++ {
				a, err := set.Sample(i, src)
				if err != nil {
					return Table{}, err
				}
				b, err := set.Sample(j, src)
				if err != nil {
					return Table{}, err
				}
				switch {
				case a > b:
					t.wins[cell]++
				case a == b:
					t.ties[cell]++
				}
			}
			t.totals[cell] = trials
		}
	}
	return t, nil
}
