package entities

import "strings"

// Item is a catalogued physical unit identified by its LPN barcode. Items are
// shared read-only across cartons; only the validation link written on attach
// belongs to a specific carton.
type Item struct {
	ID          string            `json:"id"`
	Barcode     string            `json:"barcode"`
	InternalSKU string            `json:"internal_sku"`
	Name        string            `json:"name"`
	Details     map[string]string `json:"details"`
	HasPolybag  bool              `json:"has_polybag"`
}

// ItemAttributeSet is the four-field identity used by every accuracy rule.
type ItemAttributeSet struct {
	Style    string `json:"Style"`
	Size     string `json:"Size"`
	Color    string `json:"Color"`
	Contract string `json:"Contract"`
}

// Detail returns the named detail or def when absent.
func (i Item) Detail(key, def string) string {
	if v, ok := i.Details[key]; ok {
		return v
	}
	return def
}

// AttributeSet extracts the rule identity fields, defaulting missing ones
// to "-" so they still participate in comparisons.
func (i Item) AttributeSet() ItemAttributeSet {
	return ItemAttributeSet{
		Style:    i.Detail("Style", "-"),
		Size:     i.Detail("Size", "-"),
		Color:    i.Detail("Color", "-"),
		Contract: i.Detail("Contract", "-"),
	}
}

// EqualFold compares two attribute sets field by field, ignoring case.
func (s ItemAttributeSet) EqualFold(o ItemAttributeSet) bool {
	return strings.EqualFold(s.Style, o.Style) &&
		strings.EqualFold(s.Size, o.Size) &&
		strings.EqualFold(s.Color, o.Color) &&
		strings.EqualFold(s.Contract, o.Contract)
}
