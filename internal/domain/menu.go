package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MenuItem is a room service catalog entry
type MenuItem struct {
	Code      string // lookup key, lower case
	Name      string
	UnitPrice int64
}

// NormalizeMenuCode lower-cases and trims a menu item reference
func NormalizeMenuCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Menu is the process-wide room service catalog
type Menu struct {
	items map[string]MenuItem
}

// NewMenu builds a catalog; later entries with the same code replace earlier ones
func NewMenu(items []MenuItem) *Menu {
	m := &Menu{items: make(map[string]MenuItem, len(items))}
	for _, item := range items {
		item.Code = NormalizeMenuCode(item.Code)
		m.items[item.Code] = item
	}
	return m
}

// Lookup finds an item by code (case-insensitive)
func (m *Menu) Lookup(code string) (MenuItem, bool) {
	item, ok := m.items[NormalizeMenuCode(code)]
	return item, ok
}

// Items returns the catalog sorted by code
func (m *Menu) Items() []MenuItem {
	items := make([]MenuItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items
}

// Price computes the charge for a selection of code -> quantity.
// Codes missing from the catalog do not contribute and are returned sorted in ignored.
// A selection whose charge would exceed MaxServiceCharge fails with ErrChargeOverflow.
func (m *Menu) Price(selection map[string]int) (charge int64, ignored []string, err error) {
	for code, qty := range selection {
		item, ok := m.Lookup(code)
		if !ok {
			ignored = append(ignored, code)
			continue
		}
		if qty < 0 || qty > MaxItemQuantity {
			return 0, nil, fmt.Errorf("%w: quantity %d for %q", ErrChargeOverflow, qty, code)
		}
		if item.UnitPrice > 0 && int64(qty) > (MaxServiceCharge-charge)/item.UnitPrice {
			return 0, nil, fmt.Errorf("%w: %q x %d", ErrChargeOverflow, code, qty)
		}
		charge += item.UnitPrice * int64(qty)
	}
	sort.Strings(ignored)
	return charge, ignored, nil
}
