package entities

import "encoding/json"

// Buyer is the shipment-level customer attached to a packing list. Carton
// snapshots expose it so scanners see who the carton ships to.
type Buyer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PackingList supplies a carton's expected contents and its accuracy rule
// configuration.
//
// Details holds the raw rule configuration as stored:
//   - SOLID: {"carton_attributes": {"Style": ..., "Size": ..., "Color": ..., "Contract": ...}}
//   - RATIO/MIX: [{"attributes": {"Style": ..., ..., "Quantity_PCS": n}}, ...]
type PackingList struct {
	ID                  string          `json:"id"`
	PurchaseOrderNumber string          `json:"purchase_order_number"`
	CartonBoxesQuantity int             `json:"carton_boxes_quantity"`
	Buyer               *Buyer          `json:"buyer,omitempty"`
	Rule                string          `json:"carton_validation_rule"`
	Details             json.RawMessage `json:"details,omitempty"`
}

// AttributeCombination is one allowed combination in a RATIO/MIX
// configuration, with its per-combination quantity cap.
type AttributeCombination struct {
	ItemAttributeSet
	QuantityPCS int `json:"Quantity_PCS"`
}

// CombinationRule wraps a combination the way the stored configuration
// nests it under "attributes".
type CombinationRule struct {
	Attributes AttributeCombination `json:"attributes"`
}

// SolidAttributes reads the single expected attribute set of a SOLID
// configuration. A configuration written in the combination-list shape is
// tolerated by taking the first entry.
func (p *PackingList) SolidAttributes() ItemAttributeSet {
	if p == nil || len(p.Details) == 0 {
		return ItemAttributeSet{}
	}

	var obj struct {
		CartonAttributes ItemAttributeSet `json:"carton_attributes"`
	}
	if err := json.Unmarshal(p.Details, &obj); err == nil && obj.CartonAttributes != (ItemAttributeSet{}) {
		return obj.CartonAttributes
	}

	if rules := p.Combinations(); len(rules) > 0 {
		return rules[0].Attributes.ItemAttributeSet
	}
	return ItemAttributeSet{}
}

// Combinations reads the RATIO/MIX combination list from the configuration
// root. Malformed configurations yield an empty list rather than an error;
// the strategies then reject every item with an attribute mismatch.
func (p *PackingList) Combinations() []CombinationRule {
	if p == nil || len(p.Details) == 0 {
		return nil
	}
	var rules []CombinationRule
	if err := json.Unmarshal(p.Details, &rules); err != nil {
		return nil
	}
	return rules
}
