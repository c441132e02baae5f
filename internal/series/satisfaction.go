package series

import (
	"strconv"
	"strings"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// SatisfiedThreshold is the fraction above which a score counts as satisfied.
const SatisfiedThreshold = 0.5

// ScoreFraction parses a stringified percentage score ("75.00") into a
// fraction of one (0.75).
func ScoreFraction(key string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// SatisfactionSplit collapses a score distribution into satisfied and not
// satisfied, always in that order. Keys that do not parse as numbers are left
// out and returned so the caller can report them.
func SatisfactionSplit(counts stats.Counts, tr Translator, colors Colors) ([]Point, []string) {
	var satisfied, unsatisfied int
	var skipped []string

	for _, c := range counts {
		f, err := ScoreFraction(c.Key)
		if err != nil {
			skipped = append(skipped, c.Key)
			continue
		}
		if f > SatisfiedThreshold {
			satisfied += c.Value
		} else {
			unsatisfied += c.Value
		}
	}

	points := fixedPoints(
		[]string{"satisfied", "notSatisfied"},
		[]string{text(tr, "satisfied"), text(tr, "notSatisfied")},
		[]int{satisfied, unsatisfied},
		[]string{colors.Success, colors.Danger},
	)
	return points, skipped
}
