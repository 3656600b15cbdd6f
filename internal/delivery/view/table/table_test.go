package table

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(view View) []any {
	out := make([]any, 0, len(view.Rows))
	for _, r := range view.Rows {
		out = append(out, r.Record["id"])
	}

	return out
}

func numberedRows(n int) []Record {
	rows := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Record{"id": i, "name": fmt.Sprintf("row-%02d", i)})
	}

	return rows
}

func TestTable_SortIsStable(t *testing.T) {
	tbl := New([]Column{{Key: "id"}, {Key: "v"}}, []Record{
		{"id": 1, "v": 5},
		{"id": 2, "v": 5},
		{"id": 3, "v": 1},
	})

	tbl.SortBy("v")
	assert.Equal(t, []any{3, 1, 2}, ids(tbl.Render()))

	tbl.SortBy("v")
	view := tbl.Render()
	assert.Equal(t, []any{1, 2, 3}, ids(view))
	assert.True(t, view.Columns[1].Desc)
}

func TestTable_SortSwitchesKeyAscending(t *testing.T) {
	tbl := New([]Column{{Key: "id"}, {Key: "name"}}, []Record{
		{"id": 2, "name": "b"},
		{"id": 1, "name": "c"},
		{"id": 3, "name": "a"},
	})

	tbl.SortBy("id")
	tbl.SortBy("id")
	assert.Equal(t, []any{3, 2, 1}, ids(tbl.Render()))

	tbl.SortBy("name")
	assert.Equal(t, []any{3, 2, 1}, ids(tbl.Render()))
	assert.False(t, tbl.Render().Columns[1].Desc)
}

func TestTable_SortIgnoresUnsortableAndUnknown(t *testing.T) {
	tbl := New([]Column{{Key: "id"}, {Key: "v", DisableSort: true}}, []Record{
		{"id": 1, "v": 9},
		{"id": 2, "v": 1},
	})

	tbl.SortBy("v")
	tbl.SortBy("missing")

	assert.Equal(t, []any{1, 2}, ids(tbl.Render()))
	assert.False(t, tbl.Render().Columns[1].Sortable)
}

func TestTable_SortNaturalOrdering(t *testing.T) {
	tbl := New([]Column{{Key: "id"}, {Key: "when"}, {Key: "n"}}, []Record{
		{"id": "a", "when": "2024-12-27T10:00:00Z", "n": 10},
		{"id": "b", "when": "2024-12-03T10:00:00+05:30", "n": 9.5},
		{"id": "c", "n": 2},
		{"id": "d", "when": "2024-12-10T10:00:00Z"},
	})

	tbl.SortBy("when")
	assert.Equal(t, []any{"b", "d", "a", "c"}, ids(tbl.Render()))
	tbl.SortBy("when")
	assert.Equal(t, []any{"a", "d", "b", "c"}, ids(tbl.Render()))

	tbl.SortBy("n")
	assert.Equal(t, []any{"c", "b", "a", "d"}, ids(tbl.Render()))
}

func TestTable_SearchMatchesHiddenFields(t *testing.T) {
	tbl := New([]Column{{Key: "name", Label: "Name"}}, []Record{
		{"id": 1, "name": "Panel", "sku": "X900"},
		{"id": 2, "name": "Inverter", "sku": "Y100"},
	})

	tbl.Search("x900")

	view := tbl.Render()
	require.Len(t, view.Rows, 1)
	assert.Equal(t, []string{"Panel"}, view.Rows[0].Cells)
}

func TestTable_SearchDisabled(t *testing.T) {
	tbl := New([]Column{{Key: "name"}}, numberedRows(3), WithSearch(false))

	tbl.Search("row-01")

	view := tbl.Render()
	assert.Len(t, view.Rows, 3)
	assert.False(t, view.Searchable)
}

func TestTable_PaginationClampsAfterFilter(t *testing.T) {
	rows := numberedRows(12)
	for i := range 5 {
		rows[i]["tag"] = "keep"
	}
	tbl := New([]Column{{Key: "name"}}, rows)

	tbl.SetPage(2)
	view := tbl.Render()
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, []any{11, 12}, ids(view))
	assert.Equal(t, 11, view.From)
	assert.Equal(t, 12, view.To)

	tbl.Search("keep")
	view = tbl.Render()
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Rows, 5)
	assert.False(t, view.Empty)
}

func TestTable_PageClampWithoutSearch(t *testing.T) {
	tbl := New([]Column{{Key: "name"}}, numberedRows(12), WithPageSize(5))

	tbl.SetPage(3)
	tbl.SetData(numberedRows(4))

	view := tbl.Render()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Rows, 4)

	tbl.SetPage(-2)
	assert.Equal(t, 1, tbl.Page())
	tbl.NextPage()
	assert.Equal(t, 1, tbl.Page())
}

func TestTable_PageNavigation(t *testing.T) {
	tbl := New([]Column{{Key: "name"}}, numberedRows(25), WithPageSize(0))

	tbl.NextPage()
	tbl.NextPage()
	tbl.NextPage()
	assert.Equal(t, 3, tbl.Page())
	assert.Equal(t, 3, tbl.Render().TotalPages)

	tbl.PrevPage()
	assert.Equal(t, 2, tbl.Page())
}

func TestTable_EmptyState(t *testing.T) {
	tbl := New([]Column{{Key: "a"}, {Key: "b"}}, nil, WithActions(Action{Label: Static("Edit")}))

	view := tbl.Render()

	assert.True(t, view.Empty)
	assert.Equal(t, EmptyMessage, view.EmptyText)
	assert.Equal(t, 3, view.Colspan)
	assert.Empty(t, view.Rows)
	assert.Zero(t, view.TotalPages)
	assert.Equal(t, 1, view.Page)
}

func TestTable_RenderNeverPanics(t *testing.T) {
	tbl := New([]Column{
		{Key: "name"},
		{Key: "missing"},
		{Key: "boom", Render: func(any, Record) any { panic("bad render") }},
		{Key: "nil", Render: func(any, Record) any { return nil }},
		{Key: "fn", Render: func(any, Record) any { return func() {} }},
		{Key: "price", Render: func(v any, _ Record) any { return fmt.Sprintf("₹%v", v) }},
		{Key: "label", Render: func(_ any, r Record) any { return fmt.Sprintf("%v (%v)", r["name"], r["price"]) }},
	}, []Record{{"name": "Panel", "price": 299, "extra": true}})

	var view View
	require.NotPanics(t, func() { view = tbl.Render() })

	require.Len(t, view.Rows, 1)
	assert.Equal(t, []string{"Panel", "", "", "", "", "₹299", "Panel (299)"}, view.Rows[0].Cells)
}

func TestTable_ActionsResolvePerRow(t *testing.T) {
	var invoked, clicked []any
	tbl := New([]Column{{Key: "id"}}, []Record{
		{"id": 1, "status": "pending"},
		{"id": 2, "status": "approved"},
	},
		WithActions(
			Action{
				Label:   Computed(func(r Record) string { return "Approve " + text(r["id"]) }),
				Hidden:  Computed(func(r Record) bool { return r["status"] != "pending" }),
				OnClick: func(r Record) { invoked = append(invoked, r["id"]) },
			},
			Action{
				Label:    Static("Delete"),
				Disabled: Computed(func(r Record) bool { return r["status"] == "approved" }),
				OnClick:  func(r Record) { invoked = append(invoked, r["id"]) },
			},
		),
		WithRowClick(func(r Record) { clicked = append(clicked, r["id"]) }),
	)

	view := tbl.Render()
	require.Len(t, view.Rows, 2)
	assert.Equal(t, []RowAction{
		{Index: 0, Label: "Approve 1"},
		{Index: 1, Label: "Delete"},
	}, view.Rows[0].Actions)
	assert.Equal(t, []RowAction{
		{Index: 1, Label: "Delete", Disabled: true},
	}, view.Rows[1].Actions)

	assert.True(t, tbl.Invoke(0, 0))
	assert.False(t, tbl.Invoke(1, 0))
	assert.False(t, tbl.Invoke(1, 1))
	assert.False(t, tbl.Invoke(5, 0))
	assert.Equal(t, []any{1}, invoked)
	assert.Empty(t, clicked)

	assert.True(t, tbl.ClickRow(1))
	assert.Equal(t, []any{2}, clicked)
}

func TestResolver(t *testing.T) {
	row := Record{"n": 2}

	assert.Equal(t, "x", Static("x").Resolve(row))
	assert.Equal(t, 4, Computed(func(r Record) int { return r["n"].(int) * 2 }).Resolve(row))
	assert.Equal(t, 0, Computed(func(r Record) int { return r["missing"].(int) }).Resolve(row))

	var unset Resolver[bool]
	assert.False(t, unset.Resolve(row))
}

type Base struct {
	ID    string `json:"id"`
	Price float64
}

type item struct {
	Base
	Quantity int    `json:"quantity"`
	Secret   string `json:"-"`
	Note     string `json:"note,omitempty"`
}

func TestFromStructs(t *testing.T) {
	records, err := FromStructs([]item{{Base: Base{ID: "p1", Price: 10}, Quantity: 2, Secret: "s"}})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0]["id"])
	assert.Equal(t, 2, records[0]["quantity"])
	assert.NotContains(t, records[0], "Secret")
	assert.NotContains(t, records[0], "note")
}

func TestWriteText(t *testing.T) {
	tbl := New([]Column{{Key: "id", Label: "ID"}, {Key: "name", Label: "Name"}}, numberedRows(12),
		WithActions(Action{Label: Static("View")}))
	tbl.SortBy("id")
	tbl.NextPage()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, tbl.Render()))

	out := buf.String()
	assert.Contains(t, out, "ID ↑")
	assert.Contains(t, out, "row-11")
	assert.Contains(t, out, "Showing 11 to 12 of 12 entries")
	assert.Contains(t, out, "Page 2 of 2")
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, New([]Column{{Key: "id", Label: "ID"}}, nil).Render()))

	assert.Contains(t, buf.String(), EmptyMessage)
	assert.NotContains(t, buf.String(), "Showing")
}
