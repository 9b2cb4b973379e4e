package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installed(t *testing.T, opts Options) *core.Registry {
	t.Helper()
	reg := core.NewRegistry()
	Install(reg, opts)
	return reg
}

func view(t *testing.T, reg *core.Registry, key string, q core.Query) *core.TableView {
	t.Helper()
	p, ok := reg.Get(key)
	require.True(t, ok, "page %s not registered", key)
	v, err := p.View(context.Background(), q)
	require.NoError(t, err)
	return v
}

// column returns the cell text of column id for every displayed row.
func column(t *testing.T, v *core.TableView, id string) []string {
	t.Helper()
	idx := -1
	for i, h := range v.Headers {
		if h.ID == id {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx, "column %s not found", id)

	out := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Cells[idx].Text
	}
	return out
}

func filter(col string, op core.FilterOperator, value string) core.FilterSet {
	return core.FilterSet{Filters: []core.ColumnFilter{{Column: col, Operator: op, Value: value}}}
}

func TestInstall_AllFixturesLoad(t *testing.T) {
	reg := installed(t, Options{})

	want := map[string]int{
		"crm_leads":           25,
		"hr_corporate_cards":  8,
		"inventory_items":     12,
		"it_error_logs":       7,
		"quality_inspections": 6,
		"finance_ledger":      10,
	}
	assert.Equal(t, len(want), reg.Count())

	for key, n := range want {
		t.Run(key, func(t *testing.T) {
			v := view(t, reg, key, core.Query{})
			assert.Equal(t, n, v.TotalRecords)
			assert.False(t, v.Empty)
			assert.True(t, v.Sort.IsSorted(), "default sort")
		})
	}
}

func TestInstall_Groups(t *testing.T) {
	reg := installed(t, Options{})
	assert.Equal(t, []string{"CRM", "Finance", "HR", "IT", "Inventory", "Quality"}, reg.Groups())
}

func TestLeads_FirstPageIsAlphabetical(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{})

	assert.Equal(t, []string{
		"Ahmed Rahman", "Beatrice Moreau", "Chloe Bennett", "Derek Olsen", "Ellen Park",
		"Fatima Haddad", "Grace Liu", "Hannah Keller", "Isabel Duarte", "Jonas Weber",
	}, column(t, v, "name"))
	assert.Equal(t, 3, v.Pager.TotalPages)
	assert.Equal(t, 1, v.Pager.FirstRow)
	assert.Equal(t, 10, v.Pager.LastRow)
}

func TestLeads_LastPageHoldsRemainder(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{Page: 3})

	assert.Equal(t, []string{"Ursula Brandt", "Victor Novak", "Wendy Tran", "Yusuf Demir", "Zara Malik"},
		column(t, v, "name"))
	assert.Equal(t, 21, v.Pager.FirstRow)
	assert.Equal(t, 25, v.Pager.LastRow)
	assert.False(t, v.Pager.HasNext)
}

func TestLeads_PageBeyondRangeClamps(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{Page: 9})
	assert.Equal(t, 3, v.Pager.CurrentPage)
	assert.Len(t, v.Rows, 5)
}

func TestLeads_StatusFilter(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{Filters: filter("status", core.OpEquals, "new")})

	assert.Equal(t, []string{"Isabel Duarte", "Maria Gonzalez", "Oscar Lindqvist", "Quentin Hale"},
		column(t, v, "name"))
	assert.Equal(t, []string{"New", "New", "New", "New"}, column(t, v, "status"))
	assert.True(t, v.Filtered)
	assert.Equal(t, 25, v.TotalRecords)
}

func TestLeads_SearchMatchesCompanyAndEmail(t *testing.T) {
	reg := installed(t, Options{})

	v := view(t, reg, "crm_leads", core.Query{Search: "CONTOSO"})
	assert.Equal(t, []string{"Derek Olsen"}, column(t, v, "name"))

	v = view(t, reg, "crm_leads", core.Query{Search: "zmalik@"})
	assert.Equal(t, []string{"Zara Malik"}, column(t, v, "name"))
}

func TestLeads_NoMatchEmptyState(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{Search: "no such lead"})

	assert.True(t, v.Empty)
	assert.Equal(t, "No leads found", v.EmptyTitle)
	assert.Equal(t, core.NoMatchDescription, v.EmptyDescription)
	assert.Equal(t, 1, v.Pager.TotalPages)
}

func TestLeads_SortByValueDescending(t *testing.T) {
	reg := installed(t, Options{})
	sort := datatable.SortBy("value", datatable.Desc)
	v := view(t, reg, "crm_leads", core.Query{Sort: &sort})

	names := column(t, v, "name")
	assert.Equal(t, "Wendy Tran", names[0])
	assert.Equal(t, "Rosa Jimenez", names[1])
	assert.Equal(t, "$92,331.00", column(t, v, "value")[0])
}

func TestLeads_ExplicitlyUnsortedKeepsFixtureOrder(t *testing.T) {
	reg := installed(t, Options{})
	none := datatable.Unsorted()
	v := view(t, reg, "crm_leads", core.Query{Sort: &none, PageSize: 3})

	assert.Equal(t, []string{"Maria Gonzalez", "Derek Olsen", "Priya Raman"}, column(t, v, "name"))
}

func TestLeads_MissingLastContactRendersPlaceholder(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "crm_leads", core.Query{Search: "Yusuf"})
	assert.Equal(t, []string{core.Placeholder}, column(t, v, "last_contact"))
}

func TestErrorLogs_SeveritySortsByRank(t *testing.T) {
	reg := installed(t, Options{})
	sort := datatable.SortBy("severity", datatable.Desc)
	v := view(t, reg, "it_error_logs", core.Query{Sort: &sort})

	assert.Equal(t, []string{"ERR-5001", "ERR-5005", "ERR-5003", "ERR-5006", "ERR-5002", "ERR-5007", "ERR-5004"},
		column(t, v, "error_id"))
	assert.Equal(t, "Critical", column(t, v, "severity")[0])
	assert.Equal(t, "Info", column(t, v, "severity")[6])
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, SeverityRank("info"), SeverityRank("warning"))
	assert.Less(t, SeverityRank("error"), SeverityRank("CRITICAL"))
	assert.Zero(t, SeverityRank("unknown"))
}

func TestCorporateCards_MasksNumbers(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "hr_corporate_cards", core.Query{Search: "Carla"})

	assert.Equal(t, []string{"•••• 0005"}, column(t, v, "card_number"))
	assert.Equal(t, []string{"32.0%"}, column(t, v, "utilization"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "•••• 4242", MaskCardNumber("4242-4242-4242-4242"))
	assert.Equal(t, core.Placeholder, MaskCardNumber("12"))
}

func TestInventory_DerivedStockStatus(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "inventory_items", core.Query{Filters: filter("stock_status", core.OpEquals, StockLow)})
	assert.Equal(t, []string{"CP-2210", "CS-4150"}, column(t, v, "sku"))

	v = view(t, reg, "inventory_items", core.Query{Filters: filter("stock_status", core.OpIn, "out_of_stock,overstock")})
	assert.Equal(t, []string{"FG-3005", "RM-1050"}, column(t, v, "sku"))
}

func TestInspections_UncomputableRateSortsLast(t *testing.T) {
	reg := installed(t, Options{})
	sort := datatable.SortBy("defect_rate", datatable.Asc)
	v := view(t, reg, "quality_inspections", core.Query{Sort: &sort})

	assert.Equal(t, []string{"QI-0704", "QI-0701", "QI-0706", "QI-0702", "QI-0703", "QI-0705"},
		column(t, v, "inspection_no"))
	assert.Equal(t, core.Placeholder, column(t, v, "defect_rate")[5])
}

func TestInspections_DefectRateFilter(t *testing.T) {
	reg := installed(t, Options{})

	tests := []struct {
		name  string
		op    core.FilterOperator
		value string
		want  []string
	}{
		{"above every rate", core.OpGreater, "1000", nil},
		{"at least half a percent", core.OpGreaterEq, "0.5", []string{"QI-0706", "QI-0703", "QI-0702", "QI-0701"}},
		{"percent sign accepted", core.OpGreaterEq, "10%", []string{"QI-0703"}},
		{"below one percent", core.OpLess, "1", []string{"QI-0706", "QI-0704", "QI-0701"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := view(t, reg, "quality_inspections", core.Query{Filters: filter("defect_rate", tt.op, tt.value)})
			if tt.want == nil {
				assert.True(t, v.Empty)
				return
			}
			assert.Equal(t, tt.want, column(t, v, "inspection_no"))
			assert.NotContains(t, column(t, v, "defect_rate"), core.Placeholder)
		})
	}
}

func TestCards_UtilizationFilterInPercent(t *testing.T) {
	reg := installed(t, Options{})
	v := view(t, reg, "hr_corporate_cards", core.Query{Filters: filter("utilization", core.OpGreaterEq, "90")})

	assert.Equal(t, []string{"Bruno Costa", "Elif Kaya"}, column(t, v, "cardholder_name"))
	assert.Equal(t, []string{"gte:90"}, v.ActiveFilters["utilization"])
}

func TestLedger_BoolFilterAndCurrency(t *testing.T) {
	reg := installed(t, Options{})

	v := view(t, reg, "finance_ledger", core.Query{Filters: filter("reconciled", core.OpEquals, "yes")})
	assert.Len(t, v.Rows, 6)

	v = view(t, reg, "finance_ledger", core.Query{Search: "Berlin"})
	assert.Equal(t, []string{"€1,875.40", "-€1,875.40"}, column(t, v, "net"))
}

type downQuerier struct{}

func (downQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("connection refused")
}

func TestInstall_DatabaseSourceErrors(t *testing.T) {
	reg := installed(t, Options{DB: downQuerier{}})
	p, ok := reg.Get("finance_ledger")
	require.True(t, ok)

	_, err := p.View(context.Background(), core.Query{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.Equal(t, "DB004", core.MapError(err).Code)
}

func TestInstall_DefaultPageSize(t *testing.T) {
	reg := installed(t, Options{DefaultPageSize: 4})

	p, _ := reg.Get("inventory_items")
	assert.Equal(t, 4, p.DefaultPageSize())

	p, _ = reg.Get("crm_leads")
	assert.Equal(t, 10, p.DefaultPageSize())
}
