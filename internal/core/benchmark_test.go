package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// ============================================================================
// Conversion Function Benchmarks
// ============================================================================

// BenchmarkParseNumber benchmarks numeric filter value parsing.
func BenchmarkParseNumber(b *testing.B) {
	testCases := []string{
		"123",
		"-456.78",
		"$1,234.56",
		"(123.45)",     // Accounting negative
		"1,234,567.89", // Thousands separators
		"  999.99  ",   // Whitespace
		"€1234.56",     // Euro
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ParseNumber(tc)
		}
	}
}

// BenchmarkParseDate benchmarks date filter value parsing.
func BenchmarkParseDate(b *testing.B) {
	testCases := []string{
		"2024-01-15",   // ISO format
		"01/15/2024",   // US format
		"Jan 15, 2024", // Text month
		"20240115",     // Compact
		"1/5/24",       // 2-digit year
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ParseDate(tc)
		}
	}
}

// ============================================================================
// Page View Benchmarks
// ============================================================================

func benchAccounts(n int) []account {
	statuses := []string{"open", "closed", "on_hold"}
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]account, n)
	for i := range out {
		out[i] = account{
			ID:      fmt.Sprintf("a%d", i),
			Name:    fmt.Sprintf("Account %05d", (i*7919)%n),
			Status:  statuses[i%len(statuses)],
			Balance: float64((i*31)%10000) - 2500,
			Opened:  base.AddDate(0, 0, i%1500),
			Active:  i%2 == 0,
		}
	}
	return out
}

// BenchmarkPageView_Sorted benchmarks a full sort + page over 10k records.
func BenchmarkPageView_Sorted(b *testing.B) {
	p := accountPage(StaticSource(benchAccounts(10000)), 50)
	sort := datatable.SortBy("balance", datatable.Desc)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.View(ctx, Query{Sort: &sort, Page: 7}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPageView_TextSort benchmarks collated string sorting over 10k records.
func BenchmarkPageView_TextSort(b *testing.B) {
	p := accountPage(StaticSource(benchAccounts(10000)), 50)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.View(ctx, Query{Page: 1}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPageView_Filtered benchmarks search + filter narrowing before sort.
func BenchmarkPageView_Filtered(b *testing.B) {
	p := accountPage(StaticSource(benchAccounts(10000)), 50)
	ctx := context.Background()
	q := Query{
		Search: "account 0",
		Filters: FilterSet{Filters: []ColumnFilter{
			{Column: "status", Operator: OpIn, Value: "open,on_hold"},
			{Column: "balance", Operator: OpGreater, Value: "0"},
		}},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.View(ctx, q); err != nil {
			b.Fatal(err)
		}
	}
}
