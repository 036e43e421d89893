package entities

import "time"

// ValidationStatus tracks the accuracy validation lifecycle of a carton.
// Transitions are monotonic: PENDING -> PROCESS -> VALIDATED.

type ValidationStatus string

const (
	ValidationStatusPending   ValidationStatus = "PENDING"
	ValidationStatusProcess   ValidationStatus = "PROCESS"
	ValidationStatusValidated ValidationStatus = "VALIDATED"
)

// CartonStatus tracks the physical lifecycle of a carton.
// Transitions are monotonic: OPEN -> SEALED.

type CartonStatus string

const (
	CartonStatusOpen   CartonStatus = "OPEN"
	CartonStatusSealed CartonStatus = "SEALED"
)

// CartonBox is the aggregate root of a validation session. It exclusively
// owns its attached item list for the duration of the session; Items are
// shared references.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic-lock counter, bumped on every save
type CartonBox struct {
	ID               string           `json:"id"`
	Barcode          string           `json:"barcode"`
	InternalSKU      string           `json:"internal_sku"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	Status           CartonStatus     `json:"status"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty"`
	ProcessedBy      string           `json:"processed_by,omitempty"`
	ItemsQuantity    int              `json:"items_quantity"`
	PackingList      *PackingList     `json:"packing_list,omitempty"`
	Items            []Item           `json:"items,omitempty"`
	Version          int64            `json:"version"`
}

// Rule resolves the carton's configured accuracy rule, defaulting to SOLID
// when the packing list is absent or declares an unknown rule id.
func (c *CartonBox) Rule() (AccuracyRule, bool) {
	if c.PackingList == nil {
		return AccuracyRuleSolid, false
	}
	return AccuracyRuleOrDefault(c.PackingList.Rule)
}

// Process moves a pending carton into PROCESS and records who picked it up.
// Processed-by/processed-at are set exactly once; a carton already in
// PROCESS or VALIDATED is left untouched. Returns whether a transition
// happened.
func (c *CartonBox) Process(processedBy string, at time.Time) bool {
	if c.ValidationStatus != ValidationStatusPending && c.ValidationStatus != "" {
		return false
	}
	c.ValidationStatus = ValidationStatusProcess
	if c.Status == "" {
		c.Status = CartonStatusOpen
	}
	c.ProcessedBy = processedBy
	t := at.UTC()
	c.ProcessedAt = &t
	return true
}

// AddItem appends an item to the attached list. Rule checks happen before
// the append; completion checks after (attach-then-evaluate).
func (c *CartonBox) AddItem(item Item) {
	c.Items = append(c.Items, item)
}

// IsFull reports whether the attached count reached the expected quantity.
func (c *CartonBox) IsFull() bool {
	return len(c.Items) >= c.ItemsQuantity
}

// MarkValidated promotes PROCESS -> VALIDATED once at least one item is
// attached. Returns whether the transition happened; callers notify on it.
func (c *CartonBox) MarkValidated() bool {
	if c.ValidationStatus != ValidationStatusProcess || len(c.Items) == 0 {
		return false
	}
	c.ValidationStatus = ValidationStatusValidated
	return true
}

// Seal closes a full, validated carton. Returns whether the transition
// happened.
func (c *CartonBox) Seal() bool {
	if c.Status == CartonStatusSealed {
		return false
	}
	if c.ValidationStatus != ValidationStatusValidated || !c.IsFull() {
		return false
	}
	c.Status = CartonStatusSealed
	return true
}

// CountMatching counts attached items sharing the given four-field identity,
// ignoring case. RATIO/MIX quantity caps compare against this count before
// the current item is attached.
func (c *CartonBox) CountMatching(set ItemAttributeSet) int {
	n := 0
	for _, it := range c.Items {
		if it.AttributeSet().EqualFold(set) {
			n++
		}
	}
	return n
}
