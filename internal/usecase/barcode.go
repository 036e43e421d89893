package usecase

import "strings"

// ParsedBarcode is the result of decoding a raw scan string.
type ParsedBarcode struct {
	LPN        string
	ItemNumber string
}

// ParseBarcode decodes a raw scan into an LPN plus an optional item sequence
// number.
//
// Scanners emit either a bare LPN or &-delimited key=value segments, e.g.
// "LPN123&item_number=7". A segment without '=' is taken as the LPN literal;
// an "item_number=" segment (case-sensitive key) carries the sequence number;
// an "lpn=" segment (case-insensitive key) carries the LPN and overrides the
// literal. Malformed segments are ignored; parsing never fails.
func ParseBarcode(raw string) ParsedBarcode {
	if raw == "" || !strings.Contains(raw, "&") {
		return ParsedBarcode{LPN: raw}
	}

	var out ParsedBarcode
	for _, part := range strings.Split(strings.Trim(raw, "&"), "&") {
		switch {
		case !strings.Contains(part, "="):
			out.LPN = part
		case strings.HasPrefix(part, "item_number="):
			out.ItemNumber = part[len("item_number="):]
		case strings.HasPrefix(strings.ToLower(part), "lpn="):
			out.LPN = part[len("lpn="):]
		}
	}
	return out
}
