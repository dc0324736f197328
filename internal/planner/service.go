package planner

import (
	"context"

	"github.com/t1tu5x/project-golan/internal/catalog"
)

// Tables hands out group tables; *catalog.Cache is the production implementation.
type Tables interface {
	Get(ctx context.Context, group string) (*catalog.GroupTable, *catalog.Notice)
}

type Service struct {
	layout *Layout
}

func NewService(layout *Layout) *Service {
	return &Service{layout: layout}
}

func (s *Service) Layout() *Layout {
	return s.layout
}

// fetchGroups pulls every group of the layout once, collecting notices in order of
// first appearance.
func (s *Service) fetchGroups(ctx context.Context, tables Tables) (map[string]*catalog.GroupTable, []catalog.Notice) {
	byGroup := make(map[string]*catalog.GroupTable)
	var notices []catalog.Notice

	for _, group := range s.layout.Groups() {
		table, notice := tables.Get(ctx, group)
		if table == nil {
			table = catalog.EmptyTable(group)
		}
		byGroup[group] = table
		if notice != nil {
			notices = append(notices, *notice)
		}
	}
	return byGroup, notices
}
