package pages

import (
	"strings"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// severityRank orders severities from least to most urgent.
var severityRank = map[string]int{
	"info":     1,
	"warning":  2,
	"error":    3,
	"critical": 4,
}

// SeverityRank returns the sort rank of a severity label, or 0 when unknown.
func SeverityRank(severity string) int {
	return severityRank[strings.ToLower(severity)]
}

// ErrorLog is an aggregated application error.
type ErrorLog struct {
	ErrorID       string    `yaml:"error_id" db:"error_id"`
	Severity      string    `yaml:"severity" db:"severity"`
	ErrorType     string    `yaml:"error_type" db:"error_type"`
	Source        string    `yaml:"source" db:"source"`
	Message       string    `yaml:"message" db:"message"`
	AffectedUsers int       `yaml:"affected_users" db:"affected_users"`
	Occurrences   int       `yaml:"occurrences" db:"occurrences"`
	FirstSeen     time.Time `yaml:"first_seen" db:"first_seen"`
	LastSeen      time.Time `yaml:"last_seen" db:"last_seen"`
	Status        string    `yaml:"status" db:"status"`
	AssignedTo    string    `yaml:"assigned_to" db:"assigned_to"`
}

func registerItErrorLogs(reg *core.Registry, opts Options) {
	reg.Register(core.NewPage(core.PageDef[ErrorLog]{
		Info: core.PageInfo{
			Key:              "it_error_logs",
			Group:            "IT",
			Label:            "Error Logs",
			Description:      "Application errors grouped by signature",
			SearchHint:       "Search by error id, source, or message...",
			EmptyMessage:     "No errors logged",
			EmptyDescription: "Everything is running smoothly.",
			NoMatchMessage:   "No errors found",
		},
		Columns: []datatable.Column[ErrorLog]{
			text("error_id", "Error ID", func(e ErrorLog) string { return e.ErrorID }),
			{ID: "severity", Header: "Severity", Sortable: true,
				Accessor: datatable.Field(func(e ErrorLog) int { return SeverityRank(e.Severity) }),
				Render:   func(_ any, e ErrorLog) string { return core.TitleCase(e.Severity) }},
			text("error_type", "Type", func(e ErrorLog) string { return e.ErrorType }),
			text("source", "Source", func(e ErrorLog) string { return e.Source }),
			{ID: "message", Header: "Message", Accessor: datatable.Field(func(e ErrorLog) string { return e.Message })},
			count("occurrences", "Occurrences", func(e ErrorLog) int { return e.Occurrences }),
			count("affected_users", "Users", func(e ErrorLog) int { return e.AffectedUsers }),
			timestamp("last_seen", "Last Seen", func(e ErrorLog) time.Time { return e.LastSeen }),
			enum("status", "Status", func(e ErrorLog) string { return e.Status }),
		},
		Fields: []core.FieldSpec{
			{Column: "status", Type: core.FieldEnum, EnumValues: []string{"open", "investigating", "resolved", "ignored"}},
			{Column: "source", Type: core.FieldText},
			{Column: "occurrences", Type: core.FieldNumeric},
			{Column: "last_seen", Type: core.FieldDate},
		},
		Source: sourceFor[ErrorLog](opts, "it_error_logs"),
		SearchFields: func(e ErrorLog) []string {
			return []string{e.ErrorID, e.Source, e.Message}
		},
		Key:         func(e ErrorLog) string { return e.ErrorID },
		DefaultSort: datatable.SortBy("last_seen", datatable.Desc),
		PageSize:    opts.pageSize(0),
		PagerWindow: opts.PagerWindow,
	}))
}
