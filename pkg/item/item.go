// Package item defines the stored todo record and the partial records used to
// query and update it.
package item

import (
	"fmt"
	"strings"
)

// Item is a single task record.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// New builds an unsaved item with a trimmed title.
func New(title string) Item {
	return Item{Title: strings.TrimSpace(title)}
}

func (i Item) String() string {
	mark := " "
	if i.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %d %s", mark, i.ID, i.Title)
}

// Update is a partial update. Only non-nil fields are applied.
type Update struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Title returns an Update that only sets the title.
func Title(title string) Update {
	return Update{Title: &title}
}

// Completed returns an Update that only sets the completion state.
func Completed(completed bool) Update {
	return Update{Completed: &completed}
}

// Apply returns a copy of i with the fields of u overwritten. i is not modified.
func (u Update) Apply(i Item) Item {
	if u.Title != nil {
		i.Title = *u.Title
	}
	if u.Completed != nil {
		i.Completed = *u.Completed
	}
	return i
}

// Item builds a new, unsaved item from the update. Missing fields keep their
// zero value, so Completed defaults to false.
func (u Update) Item() Item {
	return u.Apply(Item{})
}

// Predicate is a partial match. An item matches when every non-nil field is
// equal to the corresponding item field. The zero Predicate matches all items.
type Predicate struct {
	ID        *int    `json:"id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// WithID matches the item with the given id.
func WithID(id int) Predicate {
	return Predicate{ID: &id}
}

// WithCompleted matches items by completion state.
func WithCompleted(completed bool) Predicate {
	return Predicate{Completed: &completed}
}

// IsZero reports whether the predicate has no fields set.
func (p Predicate) IsZero() bool {
	return p.ID == nil && p.Title == nil && p.Completed == nil
}

// Match reports whether i satisfies every field of p.
func (p Predicate) Match(i Item) bool {
	if p.ID != nil && *p.ID != i.ID {
		return false
	}
	if p.Title != nil && *p.Title != i.Title {
		return false
	}
	if p.Completed != nil && *p.Completed != i.Completed {
		return false
	}
	return true
}

// Filter returns the items matching p, in order. The result is never nil.
func (p Predicate) Filter(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		if p.Match(i) {
			out = append(out, i)
		}
	}
	return out
}
