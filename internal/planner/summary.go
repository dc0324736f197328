package planner

import (
	"context"

	"github.com/t1tu5x/project-golan/internal/catalog"
)

type SummaryRow struct {
	Sequence int    `json:"sequence_number"`
	DishName string `json:"dish_name"`
	Note     string `json:"note"`
}

// Summary is the Summarized state: the chosen dishes in slot order.
type Summary struct {
	Rows  []SummaryRow `json:"rows"`
	Empty bool         `json:"empty"`
}

// Summarize walks the slots in layout order and resolves each chosen dish back to
// the first row of its group with exactly that name. A dish that no longer
// resolves still appears, with an empty note.
func (s *Service) Summarize(ctx context.Context, tables Tables, sel Selection) Summary {
	summary := Summary{Rows: []SummaryRow{}}

	for _, slot := range s.layout.Slots {
		dish, ok := sel[slot.Key()]
		if !ok || dish == "" || dish == s.layout.Sentinel {
			continue
		}

		note := ""
		if table := s.table(ctx, tables, slot.Key().Group); table != nil {
			if row, found := table.FindByName(dish); found {
				note = row.Notes
			}
		}

		summary.Rows = append(summary.Rows, SummaryRow{
			Sequence: len(summary.Rows) + 1,
			DishName: dish,
			Note:     note,
		})
	}

	summary.Empty = len(summary.Rows) == 0
	return summary
}

func (s *Service) table(ctx context.Context, tables Tables, group string) *catalog.GroupTable {
	table, _ := tables.Get(ctx, group)
	return table
}
