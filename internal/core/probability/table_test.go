package probability

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/louisbranch/fairdice/internal/core/dice"
	"github.com/louisbranch/fairdice/internal/random"
	"pgregory.net/rapid"
)

func classicSet(t *testing.T) dice.Set {
	t.Helper()
	set, err := dice.ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"})
	if err != nil {
		t.Fatalf("parse set: %v", err)
	}
	return set
}

func TestComputeKnownPairs(t *testing.T) {
	table := Compute(classicSet(t))
	if table.Size() != 3 {
		t.Fatalf("size = %d, want 3", table.Size())
	}

	tests := []struct {
		name string
		i, j int
		wins int
		ties int
	}{
		{"A beats B", 0, 1, 20, 0},
		{"B against A", 1, 0, 16, 0},
		{"B beats C", 1, 2, 20, 0},
		{"C beats A", 2, 0, 20, 0},
		{"A against C", 0, 2, 16, 0},
		{"A against itself", 0, 0, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Wins(tt.i, tt.j); got != tt.wins {
				t.Errorf("Wins(%d, %d) = %d, want %d", tt.i, tt.j, got, tt.wins)
			}
			if got := table.Ties(tt.i, tt.j); got != tt.ties {
				t.Errorf("Ties(%d, %d) = %d, want %d", tt.i, tt.j, got, tt.ties)
			}
			if got := table.Total(tt.i, tt.j); got != 36 {
				t.Errorf("Total(%d, %d) = %d, want 36", tt.i, tt.j, got)
			}
			want := float64(tt.wins) / 36
			if got := table.Probability(tt.i, tt.j); math.Abs(got-want) > 1e-12 {
				t.Errorf("Probability(%d, %d) = %f, want %f", tt.i, tt.j, got, want)
			}
		})
	}
}

func TestSymmetryWithTiesExact(t *testing.T) {
	table := Compute(classicSet(t))
	beats := table.Rat(0, 1)
	loses := table.Rat(1, 0)
	tie := big.NewRat(int64(table.Ties(0, 1)), int64(table.Total(0, 1)))

	sum := new(big.Rat).Add(beats, loses)
	sum.Add(sum, tie)
	if sum.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("P(A>B)+P(B>A)+P(tie) = %s, want 1", sum.RatString())
	}
	if beats.Cmp(big.NewRat(5, 9)) != 0 {
		t.Fatalf("P(A>B) = %s, want 5/9", beats.RatString())
	}
}

func TestDiagonalNotSpecialCased(t *testing.T) {
	set, err := dice.ParseSet([]string{"1,2,3,4,5,6", "0,0,0,0,0,0", "7,7,7,7,7,7"})
	if err != nil {
		t.Fatalf("parse set: %v", err)
	}
	table := Compute(set)
	if got := table.Rat(0, 0); got.Cmp(big.NewRat(15, 36)) != 0 {
		t.Fatalf("P(0>0) = %s, want 15/36", got.RatString())
	}
	if got := table.Probability(1, 1); got != 0 {
		t.Fatalf("P(1>1) = %f, want 0", got)
	}
	if got := table.Ties(2, 2); got != 36 {
		t.Fatalf("ties(2,2) = %d, want 36", got)
	}
}

func TestPairwiseSymmetryProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(dice.MinDice, 6).Draw(rt, "count")
		all := make([]dice.Die, count)
		for k := range all {
			faces := rapid.SliceOfN(rapid.IntRange(0, 12), dice.FacesPerDie, dice.FacesPerDie).Draw(rt, "faces")
			d, err := dice.NewDie(faces)
			if err != nil {
				rt.Fatalf("new die: %v", err)
			}
			all[k] = d
		}
		set, err := dice.NewSet(all)
		if err != nil {
			rt.Fatalf("new set: %v", err)
		}
		table := Compute(set)
		for i := 0; i < count; i++ {
			for j := 0; j < count; j++ {
				if table.Wins(i, j)+table.Wins(j, i)+table.Ties(i, j) != table.Total(i, j) {
					rt.Fatalf("cell (%d,%d): wins %d + %d + ties %d != %d", i, j, table.Wins(i, j), table.Wins(j, i), table.Ties(i, j), table.Total(i, j))
				}
				if table.Ties(i, j) != table.Ties(j, i) {
					rt.Fatalf("ties not symmetric at (%d,%d)", i, j)
				}
				p := table.Probability(i, j)
				if p < 0 || p > 1 {
					rt.Fatalf("probability %f out of [0,1]", p)
				}
			}
		}
	})
}

func TestCycleFindsNonTransitiveLoop(t *testing.T) {
	table := Compute(classicSet(t))
	cycle := table.Cycle()
	if len(cycle) != 3 {
		t.Fatalf("cycle = %v, want three dice", cycle)
	}
	for k := range cycle {
		from, to := cycle[k], cycle[(k+1)%len(cycle)]
		if !table.Beats(from, to) {
			t.Fatalf("die %d does not beat die %d in cycle %v", from, to, cycle)
		}
	}
}

func TestCycleNilForTransitiveSet(t *testing.T) {
	set, err := dice.ParseSet([]string{"1,1,1,1,1,1", "2,2,2,2,2,2", "3,3,3,3,3,3"})
	if err != nil {
		t.Fatalf("parse set: %v", err)
	}
	if cycle := Compute(set).Cycle(); cycle != nil {
		t.Fatalf("cycle = %v, want nil", cycle)
	}
}

func TestSimulateApproachesExactTable(t *testing.T) {
	set := classicSet(t)
	var seed [32]byte
	seed[0] = 7
	src := random.NewSource(rand.NewChaCha8(seed))

	const trials = 20000
	empirical, err := Simulate(set, src, trials)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	exact := Compute(set)
	for i := 0; i < set.Len(); i++ {
		for j := 0; j < set.Len(); j++ {
			if empirical.Total(i, j) != trials {
				t.Fatalf("total(%d,%d) = %d", i, j, empirical.Total(i, j))
			}
			if diff := math.Abs(empirical.Probability(i, j) - exact.Probability(i, j)); diff > 0.02 {
				t.Errorf("cell (%d,%d): empirical %.3f vs exact %.3f", i, j, empirical.Probability(i, j), exact.Probability(i, j))
			}
		}
	}
}

func TestSimulateRejectsNonPositiveTrials(t *testing.T) {
	if _, err := Simulate(classicSet(t), random.NewSource(nil), 0); err == nil {
		t.Fatal("expected error for zero trials")
	}
}
