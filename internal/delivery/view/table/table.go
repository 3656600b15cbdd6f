// Package table is a filterable, sortable, paginated view over arbitrary records,
// driven by column and action descriptors.
package table

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"
)

const (
	// DefaultPageSize is used when no positive page size is given.
	DefaultPageSize = 10
	// EmptyMessage is the placeholder shown when no row passes the filter.
	EmptyMessage = "No data found"
)

// Column describes one displayed field.
type Column struct {
	Key   string
	Label string
	// DisableSort makes header clicks on this column a no-op.
	DisableSort bool
	// Render formats the cell from the field value and its row. Nil shows the raw value.
	Render func(value any, row Record) any
}

// Action is a per-row contextual action.
type Action struct {
	Label    Resolver[string]
	Icon     string
	Variant  string
	Hidden   Resolver[bool]
	Disabled Resolver[bool]
	OnClick  func(row Record)
}

// Option configures a Table.
type Option func(*Table)

// WithPageSize sets the rows per page. Values <= 0 keep the default.
func WithPageSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.pageSize = n
		}
	}
}

// WithActions attaches row actions.
func WithActions(actions ...Action) Option {
	return func(t *Table) {
		t.actions = append(t.actions, actions...)
	}
}

// WithRowClick sets the handler run when a row body is clicked.
func WithRowClick(fn func(row Record)) Option {
	return func(t *Table) {
		t.onRowClick = fn
	}
}

// WithSearch enables or disables the search box. Search is on by default.
func WithSearch(enabled bool) Option {
	return func(t *Table) {
		t.searchable = enabled
	}
}

// Table holds the view state. It is safe for concurrent use.
type Table struct {
	mu sync.Mutex

	columns    []Column
	data       []Record
	actions    []Action
	onRowClick func(row Record)
	pageSize   int
	searchable bool

	query    string
	sortKey  string
	sortDesc bool
	page     int
}

// New creates a Table on page 1 with no filter and no sort.
func New(columns []Column, data []Record, opts ...Option) *Table {
	t := &Table{
		columns:    columns,
		data:       data,
		pageSize:   DefaultPageSize,
		searchable: true,
		page:       1,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SetData swaps the input collection, keeping query, sort and page.
func (t *Table) SetData(data []Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.data = data
}

// Search filters rows by a case-insensitive substring of any field and returns to page 1.
func (t *Table) Search(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.searchable {
		return
	}
	t.query = query
	t.page = 1
}

// SortBy toggles the direction on the current key or switches to key ascending.
// Unknown and non-sortable columns are ignored.
func (t *Table) SortBy(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.columns, func(c Column) bool { return c.Key == key })
	if idx < 0 || t.columns[idx].DisableSort {
		return
	}

	if t.sortKey == key {
		t.sortDesc = !t.sortDesc

		return
	}
	t.sortKey = key
	t.sortDesc = false
}

// SetPage moves to page n. Out-of-range pages are clamped when the view is computed.
func (t *Table) SetPage(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.page = n
	t.clamp(len(t.filtered()))
}

func (t *Table) NextPage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.page++
	t.clamp(len(t.filtered()))
}

func (t *Table) PrevPage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.page--
	t.clamp(len(t.filtered()))
}

// Page is the current page after clamping.
func (t *Table) Page() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clamp(len(t.filtered()))

	return t.page
}

// Invoke runs action actionIndex on row rowIndex of the current page.
// Hidden and disabled actions do nothing. The row-click handler is never run.
func (t *Table) Invoke(rowIndex, actionIndex int) bool {
	t.mu.Lock()
	rows := t.pageRows()
	if rowIndex < 0 || rowIndex >= len(rows) || actionIndex < 0 || actionIndex >= len(t.actions) {
		t.mu.Unlock()

		return false
	}
	row, action := rows[rowIndex], t.actions[actionIndex]
	t.mu.Unlock()

	if action.OnClick == nil || action.Hidden.Resolve(row) || action.Disabled.Resolve(row) {
		return false
	}
	action.OnClick(row)

	return true
}

// ClickRow runs the row-click handler for row rowIndex of the current page.
func (t *Table) ClickRow(rowIndex int) bool {
	t.mu.Lock()
	rows := t.pageRows()
	fn := t.onRowClick
	t.mu.Unlock()

	if fn == nil || rowIndex < 0 || rowIndex >= len(rows) {
		return false
	}
	fn(rows[rowIndex])

	return true
}

// filtered returns the searched and sorted rows. Callers hold t.mu.
func (t *Table) filtered() []Record {
	rows := make([]Record, 0, len(t.data))
	q := strings.ToLower(strings.TrimSpace(t.query))
	for _, row := range t.data {
		if q == "" || matches(row, q) {
			rows = append(rows, row)
		}
	}

	if t.sortKey != "" {
		key, desc := t.sortKey, t.sortDesc
		slices.SortStableFunc(rows, func(a, b Record) int {
			av, bv := deref(a[key]), deref(b[key])
			// Missing values stay last in both directions.
			switch {
			case av == nil && bv == nil:
				return 0
			case av == nil:
				return 1
			case bv == nil:
				return -1
			}
			c := compareValues(av, bv)
			if desc {
				return -c
			}

			return c
		})
	}

	return rows
}

func matches(row Record, q string) bool {
	for _, v := range row {
		if strings.Contains(strings.ToLower(text(v)), q) {
			return true
		}
	}

	return false
}

func (t *Table) totalPages(total int) int {
	return int(math.Ceil(float64(total) / float64(t.pageSize)))
}

// clamp keeps the page within [1, max(1, totalPages)]. Callers hold t.mu.
func (t *Table) clamp(total int) {
	last := max(1, t.totalPages(total))
	t.page = min(max(t.page, 1), last)
}

// pageRows returns the rows of the current page. Callers hold t.mu.
func (t *Table) pageRows() []Record {
	rows := t.filtered()
	t.clamp(len(rows))

	start := (t.page - 1) * t.pageSize
	end := min(start+t.pageSize, len(rows))

	return rows[start:end]
}

// HeaderCell is one column header of a View.
type HeaderCell struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	Sorted   bool   `json:"sorted"`
	Desc     bool   `json:"desc,omitempty"`
}

// RowAction is a resolved action for one row.
type RowAction struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Icon     string `json:"icon,omitempty"`
	Variant  string `json:"variant,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Row is one rendered row.
type Row struct {
	Record  Record      `json:"record"`
	Cells   []string    `json:"cells"`
	Actions []RowAction `json:"actions,omitempty"`
}

// View is a rendered page.
type View struct {
	Columns    []HeaderCell `json:"columns"`
	Rows       []Row        `json:"rows"`
	Empty      bool         `json:"empty"`
	EmptyText  string       `json:"empty_text,omitempty"`
	Colspan    int          `json:"colspan"`
	HasActions bool         `json:"has_actions"`
	Searchable bool         `json:"searchable"`
	Query      string       `json:"query,omitempty"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Total      int          `json:"total"`
	From       int          `json:"from"`
	To         int          `json:"to"`
}

// Render computes the current page. It never panics on malformed data or render functions.
func (t *Table) Render() View {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := t.filtered()
	t.clamp(len(rows))

	view := View{
		Columns:    make([]HeaderCell, 0, len(t.columns)),
		Rows:       []Row{},
		HasActions: len(t.actions) > 0,
		Searchable: t.searchable,
		Query:      t.query,
		Page:       t.page,
		TotalPages: t.totalPages(len(rows)),
		Total:      len(rows),
		Colspan:    len(t.columns),
	}
	if view.HasActions {
		view.Colspan++
	}
	for _, c := range t.columns {
		view.Columns = append(view.Columns, HeaderCell{
			Key:      c.Key,
			Label:    c.Label,
			Sortable: !c.DisableSort,
			Sorted:   c.Key == t.sortKey,
			Desc:     c.Key == t.sortKey && t.sortDesc,
		})
	}

	if len(rows) == 0 {
		view.Empty = true
		view.EmptyText = EmptyMessage

		return view
	}

	start := (t.page - 1) * t.pageSize
	end := min(start+t.pageSize, len(rows))
	view.From, view.To = start+1, end
	for _, rec := range rows[start:end] {
		view.Rows = append(view.Rows, t.renderRow(rec))
	}

	return view
}

func (t *Table) renderRow(rec Record) Row {
	row := Row{Record: rec, Cells: make([]string, 0, len(t.columns))}
	for _, c := range t.columns {
		row.Cells = append(row.Cells, cell(c, rec))
	}
	for i, a := range t.actions {
		if a.Hidden.Resolve(rec) {
			continue
		}
		row.Actions = append(row.Actions, RowAction{
			Index:    i,
			Label:    a.Label.Resolve(rec),
			Icon:     a.Icon,
			Variant:  a.Variant,
			Disabled: a.Disabled.Resolve(rec),
		})
	}

	return row
}

// cell renders one value. Nil, invalid and panicking renders become blank.
func cell(c Column, rec Record) (out string) {
	if c.Render == nil {
		return text(rec[c.Key])
	}

	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	v := c.Render(rec[c.Key], rec)
	if v == nil {
		return ""
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ""
	}

	return text(v)
}
