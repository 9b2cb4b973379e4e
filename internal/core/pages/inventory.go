package pages

import (
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// Stock levels derived from on-hand quantity and reorder point.
const (
	StockOut      = "out_of_stock"
	StockLow      = "low_stock"
	StockInStock  = "in_stock"
	StockOverflow = "overstock"
)

// InventoryItem is one SKU held in one warehouse.
type InventoryItem struct {
	SKU          string    `yaml:"sku" db:"sku"`
	Name         string    `yaml:"name" db:"name"`
	Category     string    `yaml:"category" db:"category"`
	Warehouse    string    `yaml:"warehouse" db:"warehouse"`
	OnHand       int       `yaml:"on_hand" db:"on_hand"`
	ReorderPoint int       `yaml:"reorder_point" db:"reorder_point"`
	MaxStock     int       `yaml:"max_stock" db:"max_stock"`
	UnitCost     float64   `yaml:"unit_cost" db:"unit_cost"`
	LastCounted  time.Time `yaml:"last_counted" db:"last_counted"`
}

// StockStatus classifies the on-hand quantity.
func (i InventoryItem) StockStatus() string {
	switch {
	case i.OnHand <= 0:
		return StockOut
	case i.OnHand <= i.ReorderPoint:
		return StockLow
	case i.MaxStock > 0 && i.OnHand > i.MaxStock:
		return StockOverflow
	default:
		return StockInStock
	}
}

// StockValue is on-hand quantity at unit cost.
func (i InventoryItem) StockValue() float64 {
	return float64(i.OnHand) * i.UnitCost
}

func registerInventoryItems(reg *core.Registry, opts Options) {
	reg.Register(core.NewPage(core.PageDef[InventoryItem]{
		Info: core.PageInfo{
			Key:              "inventory_items",
			Group:            "Inventory",
			Label:            "Stock Levels",
			Description:      "On-hand quantities and valuation by warehouse",
			SearchHint:       "Search by SKU or item name...",
			EmptyMessage:     "No stock on record",
			EmptyDescription: "Receive items into a warehouse to see them here.",
			NoMatchMessage:   "No items found",
		},
		Columns: []datatable.Column[InventoryItem]{
			text("sku", "SKU", func(i InventoryItem) string { return i.SKU }),
			text("name", "Item", func(i InventoryItem) string { return i.Name }),
			enum("category", "Category", func(i InventoryItem) string { return i.Category }),
			text("warehouse", "Warehouse", func(i InventoryItem) string { return i.Warehouse }),
			count("on_hand", "On Hand", func(i InventoryItem) int { return i.OnHand }),
			count("reorder_point", "Reorder At", func(i InventoryItem) int { return i.ReorderPoint }),
			money("unit_cost", "Unit Cost", func(i InventoryItem) float64 { return i.UnitCost }, nil),
			money("stock_value", "Value", InventoryItem.StockValue, nil),
			enum("stock_status", "Status", InventoryItem.StockStatus),
			date("last_counted", "Last Counted", func(i InventoryItem) time.Time { return i.LastCounted }),
		},
		Fields: []core.FieldSpec{
			{Column: "category", Type: core.FieldEnum, EnumValues: []string{"raw_material", "component", "finished_good", "consumable"}},
			{Column: "warehouse", Type: core.FieldText},
			{Column: "stock_status", Type: core.FieldEnum, EnumValues: []string{StockOut, StockLow, StockInStock, StockOverflow}},
			{Column: "on_hand", Type: core.FieldNumeric},
			{Column: "stock_value", Type: core.FieldNumeric},
			{Column: "last_counted", Type: core.FieldDate},
		},
		Source:       sourceFor[InventoryItem](opts, "inventory_items"),
		SearchFields: func(i InventoryItem) []string { return []string{i.SKU, i.Name} },
		Key:          func(i InventoryItem) string { return i.Warehouse + "/" + i.SKU },
		DefaultSort:  datatable.SortBy("sku", datatable.Asc),
		PageSize:     opts.pageSize(0),
		PagerWindow:  opts.PagerWindow,
	}))
}
