// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package locale holds the embedded value types shared by Citeline's
// bibliographic entities: Year, ISBN, and PageRange.
//
// Value types are owned by exactly one entity, never persisted on their own,
// and carry their own parsing, formatting, and serialization logic.
package locale

import "fmt"

// Year wraps a signed calendar year. Negative values are years before the
// common era.
type Year int

// Full renders the display form of the year with its era suffix.
//
//	Year(-400).Full() == "400 B.C.E."
//	Year(1999).Full() == "1999 A.C.E."
func (y Year) Full() string {
	if y < 0 {
		return fmt.Sprintf("%d B.C.E.", -int(y))
	}
	return fmt.Sprintf("%d A.C.E.", int(y))
}

// Int returns the raw signed value, which is also the wire form.
func (y Year) Int() int { return int(y) }
