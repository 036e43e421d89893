package usecase

import (
	"errors"
	"fmt"

	"accuracy_wms/internal/domain/entities"
)

var (
	ErrAttributeMismatch = errors.New("attribute mismatch")
	ErrQuantityExceeded  = errors.New("quantity exceeded")
)

// IRuleStrategy is the two-method contract shared by the SOLID, RATIO and
// MIX accuracy rules: resolve the carton's expected attribute combinations,
// and decide whether an item may be attached.
//
// Validate is pure: it reads the carton's already-attached items but never
// mutates them. Mutation belongs to the orchestrator.

type IRuleStrategy interface {
	ExpectedCombinations(carton *entities.CartonBox) []entities.CombinationRule
	Validate(carton *entities.CartonBox, item entities.Item) error
}

// StrategyFor selects the strategy for a rule. Unknown rules never reach
// here; AccuracyRuleOrDefault already collapsed them to SOLID.
func StrategyFor(rule entities.AccuracyRule) IRuleStrategy {
	switch rule {
	case entities.AccuracyRuleRatio:
		return combinationStrategy{name: "RATIO"}
	case entities.AccuracyRuleMix:
		// MIX combinations without an explicit Quantity_PCS are uncapped.
		return combinationStrategy{name: "MIX", uncappedWhenUnset: true}
	default:
		return solidStrategy{}
	}
}

// solidStrategy: every item in the carton must carry the one attribute
// combination the packing list declares.
type solidStrategy struct{}

func (solidStrategy) ExpectedCombinations(carton *entities.CartonBox) []entities.CombinationRule {
	var set entities.ItemAttributeSet
	if carton.PackingList != nil {
		set = carton.PackingList.SolidAttributes()
	}
	return []entities.CombinationRule{{Attributes: entities.AttributeCombination{ItemAttributeSet: set}}}
}

func (s solidStrategy) Validate(carton *entities.CartonBox, item entities.Item) error {
	expected := s.ExpectedCombinations(carton)[0].Attributes.ItemAttributeSet
	got := item.AttributeSet()
	if !expected.EqualFold(got) {
		return fmt.Errorf("%w: item attributes do not match the carton attributes", ErrAttributeMismatch)
	}
	return nil
}

// combinationStrategy serves both RATIO and MIX: the carton declares a list
// of allowed combinations, each with its own quantity cap. The two rules
// read the same configuration shape and differ only in how an unset cap is
// treated.
type combinationStrategy struct {
	name              string
	uncappedWhenUnset bool
}

func (s combinationStrategy) ExpectedCombinations(carton *entities.CartonBox) []entities.CombinationRule {
	if carton.PackingList == nil {
		return nil
	}
	return carton.PackingList.Combinations()
}

func (s combinationStrategy) Validate(carton *entities.CartonBox, item entities.Item) error {
	got := item.AttributeSet()

	var matched *entities.CombinationRule
	combos := s.ExpectedCombinations(carton)
	for i := range combos {
		if combos[i].Attributes.ItemAttributeSet.EqualFold(got) {
			matched = &combos[i]
			break
		}
	}
	if matched == nil {
		return fmt.Errorf("%w: no %s combination matches (Style: %s, Size: %s, Color: %s, Contract: %s)",
			ErrAttributeMismatch, s.name, got.Style, got.Size, got.Color, got.Contract)
	}

	limit := matched.Attributes.QuantityPCS
	if limit <= 0 && s.uncappedWhenUnset {
		return nil
	}
	// Count before attaching: strictly fewer than the cap admits the item.
	if carton.CountMatching(got) >= limit {
		return fmt.Errorf("%w: the %s cap of %d is already met for this combination", ErrQuantityExceeded, s.name, limit)
	}
	return nil
}
