// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
)

// PageRange is the page span of a book citation: a required start page and
// an optional end page. Invariant: Start <= End when both are set.
type PageRange struct {
	Start int
	End   *int
}

// Wire keys for the serialized mapping.
const (
	keyPageStart = "start"
	keyPageEnd   = "end"
)

// rangePattern matches the numeric body of a page-range string after any
// leading "pg." / "page" prefix has been discarded.
var rangePattern = regexp.MustCompile(`^(\d+)-?(\d+)?$`)

// SetRange assigns the span from one of the accepted dynamic forms:
//
//   - int: a single start page
//   - [2]int, []int of length 2: start and end
//   - string: "<int>" or "<int>-<int>", optionally prefixed by "pg." or "page"
//
// An unsupported dynamic type is an UNPROCESSABLE error; a malformed string,
// a wrong-length pair, or out-of-order bounds is a VALIDATION_ERROR. On any
// error the receiver is left unmodified.
func (p *PageRange) SetRange(value any) error {
	switch v := value.(type) {
	case int:
		p.Start = v
		p.End = nil
		return nil

	case [2]int:
		return p.setPair(v[0], v[1])

	case []int:
		if len(v) != 2 {
			return apperr.ValidationError(fmt.Sprintf("page range pair must have exactly 2 elements, got %d", len(v)))
		}
		return p.setPair(v[0], v[1])

	case string:
		return p.setString(v)

	default:
		return apperr.Unprocessable(fmt.Sprintf("unsupported page range type %T", value))
	}
}

// Range returns the stored span as (start, end). End is nil for a
// single-page range.
func (p *PageRange) Range() (int, *int) {
	return p.Start, p.End
}

// String renders the citation form: "pg. 12" or "pg. 12-13".
func (p PageRange) String() string {
	if p.End != nil {
		return fmt.Sprintf("pg. %d-%d", p.Start, *p.End)
	}
	return fmt.Sprintf("pg. %d", p.Start)
}

// IsZero reports whether the range has never been assigned.
func (p PageRange) IsZero() bool {
	return p.Start == 0 && p.End == nil
}

// Serialize renders the span as a mapping with a nullable end.
func (p PageRange) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyPageStart: p.Start,
		keyPageEnd:   nil,
	}
	if p.End != nil {
		out[keyPageEnd] = *p.End
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the span from an untrusted mapping.
func (p *PageRange) Deserialize(data document.Map) error {
	start, hasStart, err := document.GetInt(data, keyPageStart)
	if err != nil {
		return err
	}

	end, hasEnd, err := document.GetInt(data, keyPageEnd)
	if err != nil {
		return err
	}

	if !hasStart {
		return nil
	}

	if hasEnd {
		return p.setPair(start, end)
	}
	return p.SetRange(start)
}

// setPair validates ordering before mutating anything.
func (p *PageRange) setPair(start, end int) error {
	if start > end {
		return apperr.ValidationError(fmt.Sprintf("page range start %d exceeds end %d", start, end))
	}

	p.Start = start
	p.End = &end
	return nil
}

// setString parses the textual form, discarding a recognized prefix.
func (p *PageRange) setString(value string) error {
	body := strings.TrimSpace(value)
	for _, prefix := range []string{"pg.", "page"} {
		if strings.HasPrefix(body, prefix) {
			body = strings.TrimSpace(strings.TrimPrefix(body, prefix))
			break
		}
	}

	match := rangePattern.FindStringSubmatch(body)
	if match == nil {
		return apperr.ValidationError(fmt.Sprintf("%q is not a valid page range", value))
	}

	start, err := strconv.Atoi(match[1])
	if err != nil {
		return apperr.ValidationError(fmt.Sprintf("%q is not a valid page range", value))
	}

	if match[2] == "" {
		p.Start = start
		p.End = nil
		return nil
	}

	end, err := strconv.Atoi(match[2])
	if err != nil {
		return apperr.ValidationError(fmt.Sprintf("%q is not a valid page range", value))
	}
	return p.setPair(start, end)
}
