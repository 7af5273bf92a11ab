// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "math/rand/v2"

// Picker selects items at random without repeating any until the whole
// catalog has been shown once, then starts a new cycle. The item just shown
// is never selected next, even across a cycle boundary, unless the catalog
// has exactly one item.
type Picker struct {
	items  []Item
	used   map[string]bool
	lastID string
	intn   func(n int) int
}

func NewPicker(items []Item) *Picker {
	return &Picker{
		items: items,
		used:  make(map[string]bool),
		intn:  rand.IntN,
	}
}

// Pick returns the next item, or nil for an empty catalog.
func (p *Picker) Pick() *Item {
	if len(p.items) == 0 {
		return nil
	}

	// Cycle exhausted: start over
	if len(p.used) >= len(p.items) {
		p.used = make(map[string]bool)
	}

	candidates := make([]*Item, 0, len(p.items))
	for i := range p.items {
		item := &p.items[i]
		if p.used[item.ID] {
			continue
		}
		// Mid-cycle the last item is already in used; this only bites at
		// the cycle boundary
		if len(p.items) > 1 && item.ID == p.lastID {
			continue
		}
		candidates = append(candidates, item)
	}

	selection := candidates[p.intn(len(candidates))]
	p.used[selection.ID] = true
	p.lastID = selection.ID
	return selection
}
