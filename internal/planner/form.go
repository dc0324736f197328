package planner

import (
	"context"

	"github.com/t1tu5x/project-golan/internal/catalog"
)

// SlotView is one rendered dropdown.
type SlotView struct {
	Position       int      `json:"position"`
	Group          string   `json:"group"`
	Field          string   `json:"field"`
	Label          string   `json:"label"`
	Options        []string `json:"options"`
	Value          string   `json:"value"`
	SeparatorAfter bool     `json:"separator_after"`
}

// Form is the Selecting state of the page.
type Form struct {
	Texts   Texts            `json:"texts"`
	Slots   []SlotView       `json:"slots"`
	Notices []catalog.Notice `json:"notices"`
}

// BuildForm lays out every slot in configured order. Options are the sentinel
// followed by the group's non-empty dish names in table order.
func (s *Service) BuildForm(ctx context.Context, tables Tables, sel Selection) Form {
	byGroup, notices := s.fetchGroups(ctx, tables)

	form := Form{
		Texts:   s.layout.Texts,
		Slots:   make([]SlotView, 0, len(s.layout.Slots)),
		Notices: notices,
	}

	for _, slot := range s.layout.Slots {
		names := byGroup[slot.Group].Names()
		options := make([]string, 0, len(names)+1)
		options = append(options, s.layout.Sentinel)
		options = append(options, names...)

		form.Slots = append(form.Slots, SlotView{
			Position:       slot.Position,
			Group:          slot.Group,
			Field:          FieldName(slot.Position),
			Label:          s.layout.Label(slot),
			Options:        options,
			Value:          sel.Value(s.layout, slot),
			SeparatorAfter: s.layout.SeparatorsAfter[slot.Position],
		})
	}

	return form
}
