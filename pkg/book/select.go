package book

import (
	"math/rand"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/eval"
)

// MaxEntry returns the highest-weighted book move for pos, breaking ties by
// eval.EvaluateMove. The second return is false if pos has no book entries.
func MaxEntry(pos *board.Position, color board.Color, books Books) (board.Move, bool) {
	entries := books.Entries(pos, color)
	if len(entries) == 0 {
		return board.NoMove, false
	}

	best := entries[0]
	bestScore := eval.EvaluateMove(pos, best.Move)
	for _, e := range entries[1:] {
		score := eval.EvaluateMove(pos, e.Move)
		if e.Weight > best.Weight || (e.Weight == best.Weight && score > bestScore) {
			best, bestScore = e, score
		}
	}
	return best.Move, true
}

// WeightedEntry picks a book move for pos at random, proportional to
// weight: a target is sampled uniformly from [0, total weight], the
// entries are shuffled to break ties fairly, and the first entry whose
// running weight sum reaches the target wins.
func WeightedEntry(pos *board.Position, color board.Color, books Books) (board.Move, bool) {
	entries := books.Entries(pos, color)
	if len(entries) == 0 {
		return board.NoMove, false
	}

	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total == 0 {
		return entries[0].Move, true
	}

	target := rand.Intn(total + 1)
	rand.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

	sum := 0
	for _, e := range entries {
		sum += e.Weight
		if sum >= target {
			return e.Move, true
		}
	}
	return entries[len(entries)-1].Move, true
}
