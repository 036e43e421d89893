package usecase

import "accuracy_wms/internal/domain/entities"

// matchItem selects the one candidate (all sharing a resolved LPN) that
// legitimately belongs to the carton.
//
// SOLID cartons admit a single attribute combination, enforced later by the
// rule strategy, so the first candidate wins. RATIO/MIX walk candidates in
// order and pick the first whose four-field identity matches any expected
// combination, ignoring case.
func matchItem(candidates []entities.Item, expected []entities.CombinationRule, rule entities.AccuracyRule) (entities.Item, bool) {
	if rule == entities.AccuracyRuleRatio || rule == entities.AccuracyRuleMix {
		for _, item := range candidates {
			set := item.AttributeSet()
			for _, combo := range expected {
				if combo.Attributes.ItemAttributeSet.EqualFold(set) {
					return item, true
				}
			}
		}
		return entities.Item{}, false
	}

	if len(candidates) == 0 {
		return entities.Item{}, false
	}
	return candidates[0], true
}

// itemNumberMatches checks the sequence number embedded in the scan against
// the item's own record. Only a present-and-different record rejects; an
// item without a recorded item_number accepts any scan.
func itemNumberMatches(item entities.Item, scanned string) bool {
	if scanned == "" {
		return true
	}
	recorded := item.Details["item_number"]
	return recorded == "" || recorded == scanned
}
