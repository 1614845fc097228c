package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tableflip.dev/todo/pkg/item"
)

// Query selects items for Read. It is one of All, ByID or ByPredicate.
type Query interface {
	predicate() item.Predicate
}

// All selects every item.
type All struct{}

func (All) predicate() item.Predicate { return item.Predicate{} }

// ByID selects the item with the given id.
type ByID int

func (id ByID) predicate() item.Predicate { return item.WithID(int(id)) }

// ByPredicate selects items matching every set field.
type ByPredicate item.Predicate

func (p ByPredicate) predicate() item.Predicate { return item.Predicate(p) }

// ParseID reads an id the way a user types it: surrounding space is ignored
// and only the leading integer counts, so "12" and "12abc" are both 12.
func ParseID(s string) (ByID, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := rune(s[end])
		if unicode.IsDigit(c) || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("model: invalid id %q", s)
	}
	return ByID(id), nil
}
