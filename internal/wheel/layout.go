package wheel

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// MaxSlices caps how many slices a wheel is drawn with
const MaxSlices = 24

// displayLabel title-cases a prize label. Casers are stateful, so one is built per call.
func displayLabel(label string) string {
	return cases.Title(language.English).String(label)
}

// Layout orders prize slices for rendering. Each prize gets slices in
// proportion to its weight. The richest prize sits at index 0 and the
// runner-up opposite it; remaining slots are filled greedily by spacing
// score, then a swap pass breaks up identical neighbours where it can.
// Placement is cosmetic only; the backend picks the prize.
func Layout(prizes []domain.WheelPrize) []domain.WheelSlice {
	counts := sliceCounts(prizes)
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return []domain.WheelSlice{}
	}

	slots := make([]int, n) // prize index per slot, -1 while empty
	for i := range slots {
		slots[i] = -1
	}
	fixed := make([]bool, n)
	remaining := append([]int(nil), counts...)

	byAmount := make([]int, 0, len(prizes))
	for i := range prizes {
		if counts[i] > 0 {
			byAmount = append(byAmount, i)
		}
	}
	sort.SliceStable(byAmount, func(a, b int) bool {
		return prizes[byAmount[a]].Amount > prizes[byAmount[b]].Amount
	})

	place := func(slot, prize int) {
		slots[slot] = prize
		fixed[slot] = true
		remaining[prize]--
	}
	place(0, byAmount[0])
	if len(byAmount) > 1 && n > 2 {
		place(n/2, byAmount[1])
	}

	for pos := 0; pos < n; pos++ {
		if slots[pos] != -1 {
			continue
		}
		best, bestScore, bestLeft := -1, -1, -1
		for p := range prizes {
			if remaining[p] == 0 {
				continue
			}
			score := spacingScore(slots, pos, p)
			if score > bestScore || (score == bestScore && remaining[p] > bestLeft) {
				best, bestScore, bestLeft = p, score, remaining[p]
			}
		}
		slots[pos] = best
		remaining[best]--
	}

	repairAdjacent(slots, fixed)

	out := make([]domain.WheelSlice, n)
	for i, p := range slots {
		out[i] = domain.WheelSlice{
			Index:   i,
			PrizeID: prizes[p].ID,
			Label:   displayLabel(prizes[p].Label),
			Amount:  prizes[p].Amount,
		}
	}
	return out
}

// sliceCounts converts weights to slice counts, scaling down with largest
// remainders when the wheel would exceed MaxSlices. Every prize keeps at least one slice.
func sliceCounts(prizes []domain.WheelPrize) []int {
	counts := make([]int, len(prizes))
	total := 0
	for i, p := range prizes {
		if p.Weight > 0 {
			counts[i] = p.Weight
			total += p.Weight
		}
	}
	if total <= MaxSlices {
		return counts
	}

	type rem struct {
		idx  int
		frac float64
	}
	var rems []rem
	used := 0
	for i, p := range prizes {
		if p.Weight <= 0 {
			continue
		}
		exact := float64(p.Weight) * MaxSlices / float64(total)
		counts[i] = int(exact)
		if counts[i] < 1 {
			counts[i] = 1
		}
		used += counts[i]
		rems = append(rems, rem{idx: i, frac: exact - float64(int(exact))})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < MaxSlices && i < len(rems); i++ {
		counts[rems[i].idx]++
		used++
	}
	return counts
}

// spacingScore is the circular distance from pos to the nearest slot already
// holding prize, or the wheel size when there is none
func spacingScore(slots []int, pos, prize int) int {
	n := len(slots)
	for d := 1; d <= n/2; d++ {
		if slots[(pos+d)%n] == prize || slots[(pos-d+n)%n] == prize {
			return d
		}
	}
	return n
}

// repairAdjacent swaps slots to remove identical neighbours. Anchored slots never move.
func repairAdjacent(slots []int, fixed []bool) {
	n := len(slots)
	if n < 3 {
		return
	}
	for pass := 0; pass < n; pass++ {
		changed := false
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if slots[i] != slots[next] || fixed[next] {
				continue
			}
			for j := 0; j < n; j++ {
				if j == next || fixed[j] || slots[j] == slots[next] {
					continue
				}
				slots[next], slots[j] = slots[j], slots[next]
				if conflicts(slots, next) == 0 && conflicts(slots, j) == 0 {
					changed = true
					break
				}
				slots[next], slots[j] = slots[j], slots[next]
			}
		}
		if !changed {
			return
		}
	}
}

func conflicts(slots []int, i int) int {
	n := len(slots)
	c := 0
	if slots[i] == slots[(i+1)%n] {
		c++
	}
	if slots[i] == slots[(i-1+n)%n] {
		c++
	}
	return c
}

// AdjacentPairs counts neighbouring slices sharing a label
func AdjacentPairs(slices []domain.WheelSlice) int {
	n := len(slices)
	if n < 2 {
		return 0
	}
	pairs := 0
	for i := range slices {
		if slices[i].Label == slices[(i+1)%n].Label {
			pairs++
		}
	}
	return pairs
}

// SliceFor returns the index of the first slice carrying the prize, or -1
func SliceFor(slices []domain.WheelSlice, prize domain.WheelPrize) int {
	for _, s := range slices {
		if s.PrizeID == prize.ID {
			return s.Index
		}
	}
	label := displayLabel(prize.Label)
	for _, s := range slices {
		if s.Label == label {
			return s.Index
		}
	}
	return -1
}
