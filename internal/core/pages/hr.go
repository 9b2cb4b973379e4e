package pages

import (
	"strings"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// CorporateCard is a company card issued to an employee.
type CorporateCard struct {
	CardNumber     string    `yaml:"card_number" db:"card_number"`
	CardholderName string    `yaml:"cardholder_name" db:"cardholder_name"`
	EmployeeCode   string    `yaml:"employee_code" db:"employee_code"`
	Department     string    `yaml:"department" db:"department"`
	CardType       string    `yaml:"card_type" db:"card_type"`
	CardLevel      string    `yaml:"card_level" db:"card_level"`
	CreditLimit    float64   `yaml:"credit_limit" db:"credit_limit"`
	CurrentBalance float64   `yaml:"current_balance" db:"current_balance"`
	MonthlySpend   float64   `yaml:"monthly_spend" db:"monthly_spend"`
	IssueDate      time.Time `yaml:"issue_date" db:"issue_date"`
	ExpiryDate     time.Time `yaml:"expiry_date" db:"expiry_date"`
	Status         string    `yaml:"status" db:"status"`
}

// Utilization is the share of the credit limit in use. Cards without a
// limit report NaN, which sorts last.
func (c CorporateCard) Utilization() float64 {
	if c.CreditLimit <= 0 {
		return nanFloat
	}
	return c.CurrentBalance / c.CreditLimit
}

// MaskCardNumber keeps the last four digits of a card number.
func MaskCardNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) < 4 {
		return core.Placeholder
	}
	return "•••• " + digits[len(digits)-4:]
}

func registerHrCorporateCards(reg *core.Registry, opts Options) {
	reg.Register(core.NewPage(core.PageDef[CorporateCard]{
		Info: core.PageInfo{
			Key:              "hr_corporate_cards",
			Group:            "HR",
			Label:            "Corporate Cards",
			Description:      "Company cards, limits and monthly spend by cardholder",
			SearchHint:       "Search by cardholder, employee code, or department...",
			EmptyMessage:     "No corporate cards issued",
			EmptyDescription: "Issued cards will appear here.",
			NoMatchMessage:   "No cards found",
		},
		Columns: []datatable.Column[CorporateCard]{
			{ID: "card_number", Header: "Card", Accessor: datatable.Field(func(c CorporateCard) string { return c.CardNumber }),
				Render: func(v any, _ CorporateCard) string { return MaskCardNumber(v.(string)) }},
			text("cardholder_name", "Cardholder", func(c CorporateCard) string { return c.CardholderName }),
			text("department", "Department", func(c CorporateCard) string { return c.Department }),
			enum("card_type", "Network", func(c CorporateCard) string { return c.CardType }),
			enum("card_level", "Level", func(c CorporateCard) string { return c.CardLevel }),
			money("credit_limit", "Limit", func(c CorporateCard) float64 { return c.CreditLimit }, nil),
			money("current_balance", "Balance", func(c CorporateCard) float64 { return c.CurrentBalance }, nil),
			{ID: "utilization", Header: "Utilization", Sortable: true, Align: datatable.AlignRight,
				Accessor: datatable.Field(CorporateCard.Utilization),
				Render:   func(v any, _ CorporateCard) string { return core.FormatPercent(v.(float64)) }},
			money("monthly_spend", "Monthly Spend", func(c CorporateCard) float64 { return c.MonthlySpend }, nil),
			date("expiry_date", "Expires", func(c CorporateCard) time.Time { return c.ExpiryDate }),
			enum("status", "Status", func(c CorporateCard) string { return c.Status }),
		},
		Fields: []core.FieldSpec{
			{Column: "department", Type: core.FieldText},
			{Column: "card_type", Type: core.FieldEnum, EnumValues: []string{"visa", "mastercard", "amex"}},
			{Column: "card_level", Type: core.FieldEnum, EnumValues: []string{"silver", "gold", "platinum"}},
			{Column: "status", Type: core.FieldEnum, EnumValues: []string{"active", "blocked", "expired", "pending_activation"}},
			{Column: "credit_limit", Type: core.FieldNumeric},
			{Column: "utilization", Type: core.FieldNumeric, Percent: true},
			{Column: "expiry_date", Type: core.FieldDate},
		},
		Source: sourceFor[CorporateCard](opts, "hr_corporate_cards"),
		SearchFields: func(c CorporateCard) []string {
			return []string{c.CardholderName, c.EmployeeCode, c.Department}
		},
		Key:         func(c CorporateCard) string { return c.EmployeeCode + "/" + c.CardNumber },
		DefaultSort: datatable.SortBy("cardholder_name", datatable.Asc),
		PageSize:    opts.pageSize(0),
		PagerWindow: opts.PagerWindow,
	}))
}
