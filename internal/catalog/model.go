package catalog

// Column names every group table must carry.
const (
	ColumnID                = "id"
	ColumnName              = "dish_name_hebrew"
	ColumnIngredients       = "ingredients"
	ColumnYieldPerPerson    = "gross_yield_per_person"
	ColumnYieldPerTray      = "gross_yield_per_gn1_1"
	ColumnPreparationMethod = "preparation_method"
	ColumnNotes             = "notes"
)

// RequiredColumns is the schema a group table is validated against, in header order.
var RequiredColumns = []string{
	ColumnID,
	ColumnName,
	ColumnIngredients,
	ColumnYieldPerPerson,
	ColumnYieldPerTray,
	ColumnPreparationMethod,
	ColumnNotes,
}

// DishRecord is one row of a group table. Cells are kept as text, exactly as read.
type DishRecord struct {
	ID                string            `json:"id"`
	Name              string            `json:"dish_name_hebrew"`
	Ingredients       string            `json:"ingredients"`
	YieldPerPerson    string            `json:"gross_yield_per_person"`
	YieldPerTray      string            `json:"gross_yield_per_gn1_1"`
	PreparationMethod string            `json:"preparation_method"`
	Notes             string            `json:"notes"`
	Extra             map[string]string `json:"extra,omitempty"`
}

// GroupTable is the loaded dish list of one group. It is built once by the Loader
// and must not be modified afterwards: cached tables are shared between renders.
type GroupTable struct {
	Group   string       `json:"group"`
	Columns []string     `json:"columns"`
	Rows    []DishRecord `json:"rows"`
}

// EmptyTable is the placeholder returned when a group cannot be loaded.
func EmptyTable(group string) *GroupTable {
	columns := make([]string, len(RequiredColumns))
	copy(columns, RequiredColumns)
	return &GroupTable{Group: group, Columns: columns}
}

func (t *GroupTable) Len() int {
	return len(t.Rows)
}

// Names lists the non-empty dish names in row order. Repeated names are kept.
func (t *GroupTable) Names() []string {
	names := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Name == "" {
			continue
		}
		names = append(names, row.Name)
	}
	return names
}

// FindByName returns the first row whose name equals name exactly.
func (t *GroupTable) FindByName(name string) (DishRecord, bool) {
	for _, row := range t.Rows {
		if row.Name == name {
			return row, true
		}
	}
	return DishRecord{}, false
}

// Notice levels
const (
	LevelWarning = "warning"
	LevelError   = "error"
)

// Notice is a non-fatal load problem surfaced to the user next to the form.
type Notice struct {
	Level   string `json:"level"`
	Group   string `json:"group"`
	Message string `json:"message"`
}
