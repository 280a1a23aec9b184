package replenish

import (
	"sort"

	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
)

// actionRule compares two actions and returns <0, 0 or >0. Ordering is an
// explicit list of named rules applied in sequence; the first decisive rule
// wins.
type actionRule func(a, b *model.ReplenishmentAction) int

// byPriority orders alta before media before baixa.
func byPriority(a, b *model.ReplenishmentAction) int {
	return constant.PriorityRank[a.Priority] - constant.PriorityRank[b.Priority]
}

// byCoverage orders fewer remaining days of coverage first.
func byCoverage(a, b *model.ReplenishmentAction) int {
	switch {
	case a.CoverageDays < b.CoverageDays:
		return -1
	case a.CoverageDays > b.CoverageDays:
		return 1
	default:
		return 0
	}
}

var actionOrdering = []actionRule{byPriority, byCoverage}

// SortActions sorts the prioritized action list in place.
func SortActions(actions []model.ReplenishmentAction) {
	sort.SliceStable(actions, func(i, j int) bool {
		for _, rule := range actionOrdering {
			if c := rule(&actions[i], &actions[j]); c != 0 {
				return c < 0
			}
		}
		return false
	})
}
