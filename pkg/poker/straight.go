package poker

import "holdem-showdown/pkg/deck"

// hasStraight scans cards sorted by ascending rank for five ranks in a row
// Repeated ranks neither break nor extend a run. An ace only ever follows a king.
func hasStraight(sorted deck.Hand) bool {
	streak := 0
	prevRank := -1
	for _, card := range sorted {
		rank := card.Rank.Index()
		if prevRank != -1 && rank == prevRank+1 {
			streak++
			// four steps means five ranks
			if streak >= 4 {
				return true
			}
		} else if rank != prevRank {
			streak = 0
		}

		prevRank = rank
	}

	return false
}
