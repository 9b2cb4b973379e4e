package pages

import (
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// LedgerEntry is one posted general ledger line.
type LedgerEntry struct {
	EntryNo     string    `yaml:"entry_no" db:"entry_no"`
	PostedOn    time.Time `yaml:"posted_on" db:"posted_on"`
	Account     string    `yaml:"account" db:"account"`
	AccountName string    `yaml:"account_name" db:"account_name"`
	Description string    `yaml:"description" db:"description"`
	Debit       float64   `yaml:"debit" db:"debit"`
	Credit      float64   `yaml:"credit" db:"credit"`
	Currency    string    `yaml:"currency" db:"currency"`
	Reconciled  bool      `yaml:"reconciled" db:"reconciled"`
}

// Net is debit minus credit.
func (e LedgerEntry) Net() float64 { return e.Debit - e.Credit }

func registerFinanceLedger(reg *core.Registry, opts Options) {
	currency := func(e LedgerEntry) string { return e.Currency }

	reg.Register(core.NewPage(core.PageDef[LedgerEntry]{
		Info: core.PageInfo{
			Key:              "finance_ledger",
			Group:            "Finance",
			Label:            "General Ledger",
			Description:      "Posted journal lines across all accounts",
			SearchHint:       "Search by entry, account, or description...",
			EmptyMessage:     "No journal entries posted",
			EmptyDescription: "Posted entries will appear here.",
			NoMatchMessage:   "No entries found",
		},
		Columns: []datatable.Column[LedgerEntry]{
			text("entry_no", "Entry", func(e LedgerEntry) string { return e.EntryNo }),
			date("posted_on", "Posted", func(e LedgerEntry) time.Time { return e.PostedOn }),
			text("account", "Account", func(e LedgerEntry) string { return e.Account }),
			text("account_name", "Account Name", func(e LedgerEntry) string { return e.AccountName }),
			{ID: "description", Header: "Description", Accessor: datatable.Field(func(e LedgerEntry) string { return e.Description })},
			money("debit", "Debit", func(e LedgerEntry) float64 { return e.Debit }, currency),
			money("credit", "Credit", func(e LedgerEntry) float64 { return e.Credit }, currency),
			money("net", "Net", LedgerEntry.Net, currency),
			{ID: "reconciled", Header: "Reconciled", Sortable: true, Align: datatable.AlignCenter,
				Accessor: datatable.Field(func(e LedgerEntry) bool { return e.Reconciled }),
				Render:   func(v any, _ LedgerEntry) string { return core.FormatCell(v) }},
		},
		Fields: []core.FieldSpec{
			{Column: "account", Type: core.FieldText},
			{Column: "posted_on", Type: core.FieldDate},
			{Column: "net", Type: core.FieldNumeric},
			{Column: "reconciled", Type: core.FieldBool},
		},
		Source: sourceFor[LedgerEntry](opts, "finance_ledger"),
		SearchFields: func(e LedgerEntry) []string {
			return []string{e.EntryNo, e.Account, e.AccountName, e.Description}
		},
		Key:         func(e LedgerEntry) string { return e.EntryNo },
		DefaultSort: datatable.SortBy("posted_on", datatable.Desc),
		PageSize:    opts.pageSize(0),
		PagerWindow: opts.PagerWindow,
	}))
}
