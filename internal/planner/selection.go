package planner

import "fmt"

// Selection maps each slot to the chosen dish name. A missing key means the slot is
// still at the sentinel.
type Selection map[SlotKey]string

// FieldName is the form field carrying a slot's value.
func FieldName(position int) string {
	return fmt.Sprintf("slot_%d", position)
}

// ParseSelection reads one value per configured slot through lookup, keyed by the
// slot position. Slots left at the sentinel or empty are not recorded.
func ParseSelection(layout *Layout, lookup func(position int) (string, bool)) Selection {
	sel := make(Selection)
	for _, slot := range layout.Slots {
		value, ok := lookup(slot.Position)
		if !ok || value == "" || value == layout.Sentinel {
			continue
		}
		sel[slot.Key()] = value
	}
	return sel
}

// Value returns the slot's dish, or the sentinel when nothing is chosen.
func (s Selection) Value(layout *Layout, slot Slot) string {
	if v, ok := s[slot.Key()]; ok && v != "" {
		return v
	}
	return layout.Sentinel
}

func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
