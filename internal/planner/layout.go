package planner

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Slot is one dropdown position. Positions start at 1.
type Slot struct {
	Position int    `json:"position"`
	Group    string `json:"group"`
}

// SlotKey identifies a slot's selection without encoding it into a string.
type SlotKey struct {
	Group    string
	Position int
}

func (s Slot) Key() SlotKey {
	return SlotKey{Group: s.Group, Position: s.Position}
}

// Texts are the fixed page labels.
type Texts struct {
	Title          string   `yaml:"title" json:"title"`
	Intro          string   `yaml:"intro" json:"intro"`
	Sentinel       string   `yaml:"sentinel" json:"sentinel"`
	SummaryButton  string   `yaml:"summary_button" json:"summary_button"`
	EmptyMessage   string   `yaml:"empty_message" json:"empty_message"`
	SummaryColumns []string `yaml:"summary_columns" json:"summary_columns"`
}

// Layout is the static form configuration. It is read once at startup and shared
// read-only by every request.
type Layout struct {
	Texts
	Slots           []Slot
	SeparatorsAfter map[int]bool
	Labels          map[string]string
}

type layoutDocument struct {
	Texts           `yaml:",inline"`
	Slots           []string          `yaml:"slots"`
	SeparatorsAfter []int             `yaml:"separators_after"`
	Labels          map[string]string `yaml:"labels"`
}

// DefaultLayout is the hotel layout compiled into the binary.
func DefaultLayout() (*Layout, error) {
	return ParseLayout(defaultLayoutYAML)
}

func ParseLayout(data []byte) (*Layout, error) {
	var doc layoutDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	if len(doc.Slots) == 0 {
		return nil, errors.New("layout has no slots")
	}
	if doc.Sentinel == "" {
		return nil, errors.New("layout sentinel must not be empty")
	}
	if len(doc.SummaryColumns) != 3 {
		return nil, fmt.Errorf("layout needs 3 summary columns, got %d", len(doc.SummaryColumns))
	}

	layout := &Layout{
		Texts:           doc.Texts,
		Slots:           make([]Slot, 0, len(doc.Slots)),
		SeparatorsAfter: make(map[int]bool, len(doc.SeparatorsAfter)),
		Labels:          doc.Labels,
	}
	if layout.Labels == nil {
		layout.Labels = map[string]string{}
	}

	for i, group := range doc.Slots {
		if group == "" {
			return nil, fmt.Errorf("slot %d has no group", i+1)
		}
		layout.Slots = append(layout.Slots, Slot{Position: i + 1, Group: group})
	}
	for _, pos := range doc.SeparatorsAfter {
		if pos < 1 || pos > len(layout.Slots) {
			return nil, fmt.Errorf("separator after %d is outside slots 1..%d", pos, len(layout.Slots))
		}
		layout.SeparatorsAfter[pos] = true
	}

	return layout, nil
}

// Groups lists each group identifier once, in order of first appearance.
func (l *Layout) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, slot := range l.Slots {
		if seen[slot.Group] {
			continue
		}
		seen[slot.Group] = true
		groups = append(groups, slot.Group)
	}
	return groups
}

// Label renders "<two-digit position>. <group label>", falling back to the raw
// group identifier.
func (l *Layout) Label(slot Slot) string {
	label, ok := l.Labels[slot.Group]
	if !ok {
		label = slot.Group
	}
	return fmt.Sprintf("%02d. %s", slot.Position, label)
}

func (l *Layout) Slot(position int) (Slot, bool) {
	if position < 1 || position > len(l.Slots) {
		return Slot{}, false
	}
	return l.Slots[position-1], true
}
