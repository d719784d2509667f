package scan

import "fmt"

// Selection chooses which matches from the raw overlapping sequence an
// operation acts on: either every match, or a single match by its index in
// that sequence.
type Selection struct {
	all bool
	nth int
}

// All selects every match in raw order.
func All() Selection {
	return Selection{all: true}
}

// Nth selects only the k-th match, counting from 0 over the raw overlapping
// sequence.
func Nth(k int) Selection {
	return Selection{nth: k}
}

// String describes the selection for logs and error messages.
func (sel Selection) String() string {
	if sel.all {
		return "all"
	}
	return fmt.Sprintf("nth=%d", sel.nth)
}

// Apply consumes the matcher and returns the selected offsets in increasing
// order. For Nth the result has at most one element; a missing k-th match
// yields an empty slice, which is a normal outcome rather than an error.
func (sel Selection) Apply(m *Matcher) ([]int64, error) {
	if sel.all {
		return m.All()
	}
	skipped := 0
	for {
		off, ok, err := m.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if skipped == sel.nth {
			return []int64{off}, nil
		}
		skipped++
	}
}
