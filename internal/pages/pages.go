// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pages parses page-range specifications of the form
// "1-10", "3", or "15-10,3,23-30". A range with the larger number
// first extracts its pages in descending order; this matches the
// native djvutxt behavior and is preserved, not normalized away.
package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports an invalid page specification.
var ErrMalformed = errors.New("malformed page specification")

// Range is a contiguous run of pages. Last may be smaller than First,
// in which case the pages are extracted in descending order.
type Range struct {
	First int
	Last  int
}

// Spec is an ordered sequence of page ranges.
type Spec struct {
	ranges []Range
}

// Parse parses a comma-separated page specification. Empty range
// tokens, non-numeric page numbers, and page number zero are rejected.
// The spec is not validated against any actual document page count;
// out-of-range pages are the downstream tool's problem.
func Parse(s string) (*Spec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty specification", ErrMalformed)
	}

	var ranges []Range
	for _, tok := range strings.Split(s, ",") {
		if strings.TrimSpace(tok) == "" {
			return nil, fmt.Errorf("%w: empty range in %q", ErrMalformed, s)
		}

		lo, hi, dashed := strings.Cut(tok, "-")
		first, err := parsePage(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if dashed {
			last, err = parsePage(hi)
			if err != nil {
				return nil, err
			}
		}
		ranges = append(ranges, Range{First: first, Last: last})
	}

	return &Spec{ranges: ranges}, nil
}

func parsePage(tok string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: page %q is not a number", ErrMalformed, strings.TrimSpace(tok))
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: page numbers start at 1", ErrMalformed)
	}
	return n, nil
}

// Ranges returns the parsed ranges in input order.
func (s *Spec) Ranges() []Range {
	return s.ranges
}

// String renders the spec in the comma-separated form understood by
// djvutxt's --page option, descending ranges included verbatim.
func (s *Spec) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		if r.First == r.Last {
			parts = append(parts, strconv.Itoa(r.First))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.First, r.Last))
		}
	}
	return strings.Join(parts, ",")
}

// Expand lists every page in extraction order, for tools that only
// address one page (or one ascending window) per invocation.
func (s *Spec) Expand() []int {
	var out []int
	for _, r := range s.ranges {
		if r.First <= r.Last {
			for p := r.First; p <= r.Last; p++ {
				out = append(out, p)
			}
		} else {
			for p := r.First; p >= r.Last; p-- {
				out = append(out, p)
			}
		}
	}
	return out
}
