package pages

import (
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// LeadStatuses lists the pipeline stages in order.
var LeadStatuses = []string{"new", "contacted", "qualified", "proposal", "negotiation", "won", "lost"}

// Lead is a sales lead in the CRM pipeline.
type Lead struct {
	ID          string     `yaml:"id" db:"id"`
	Name        string     `yaml:"name" db:"name"`
	Company     string     `yaml:"company" db:"company"`
	Email       string     `yaml:"email" db:"email"`
	Phone       string     `yaml:"phone" db:"phone"`
	Status      string     `yaml:"status" db:"status"`
	Source      string     `yaml:"source" db:"source"`
	Value       float64    `yaml:"value" db:"value"`
	AssignedTo  string     `yaml:"assigned_to" db:"assigned_to"`
	CreatedAt   time.Time  `yaml:"created_at" db:"created_at"`
	LastContact *time.Time `yaml:"last_contact" db:"last_contact"`
}

func registerCrmLeads(reg *core.Registry, opts Options) {
	reg.Register(core.NewPage(core.PageDef[Lead]{
		Info: core.PageInfo{
			Key:              "crm_leads",
			Group:            "CRM",
			Label:            "Leads",
			Description:      "Track and manage your sales leads",
			SearchHint:       "Search leads by name, company, or email...",
			EmptyMessage:     "No leads yet",
			EmptyDescription: "Get started by adding your first lead to the system.",
			NoMatchMessage:   "No leads found",
		},
		Columns: []datatable.Column[Lead]{
			text("name", "Lead", func(l Lead) string { return l.Name }),
			text("company", "Company", func(l Lead) string { return l.Company }),
			{ID: "email", Header: "Contact", Accessor: datatable.Field(func(l Lead) string { return l.Email })},
			{ID: "source", Header: "Source", Accessor: datatable.Field(func(l Lead) string { return l.Source }),
				Render: func(v any, _ Lead) string { return core.TitleCase(v.(string)) }},
			enum("status", "Status", func(l Lead) string { return l.Status }),
			money("value", "Value", func(l Lead) float64 { return l.Value }, nil),
			text("assigned_to", "Owner", func(l Lead) string { return l.AssignedTo }),
			optionalDate("last_contact", "Last Contact", func(l Lead) *time.Time { return l.LastContact }),
		},
		Fields: []core.FieldSpec{
			{Column: "status", Type: core.FieldEnum, EnumValues: LeadStatuses},
			{Column: "source", Type: core.FieldEnum, EnumValues: []string{"website", "referral", "trade_show", "cold_call", "partner"}},
			{Column: "company", Type: core.FieldText},
			{Column: "value", Type: core.FieldNumeric},
			{Column: "last_contact", Type: core.FieldDate},
		},
		Source:       sourceFor[Lead](opts, "crm_leads"),
		SearchFields: func(l Lead) []string { return []string{l.Name, l.Company, l.Email} },
		Key:          func(l Lead) string { return l.ID },
		DefaultSort:  datatable.SortBy("name", datatable.Asc),
		PageSize:     opts.pageSize(10),
		PagerWindow:  opts.PagerWindow,
	}))
}
