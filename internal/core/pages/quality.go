package pages

import (
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// Inspection is a lot inspection recorded by quality control.
type Inspection struct {
	InspectionNo string    `yaml:"inspection_no" db:"inspection_no"`
	LotNumber    string    `yaml:"lot_number" db:"lot_number"`
	Product      string    `yaml:"product" db:"product"`
	Supplier     string    `yaml:"supplier" db:"supplier"`
	Inspector    string    `yaml:"inspector" db:"inspector"`
	InspectedOn  time.Time `yaml:"inspected_on" db:"inspected_on"`
	SampleSize   int       `yaml:"sample_size" db:"sample_size"`
	Defects      int       `yaml:"defects" db:"defects"`
	Result       string    `yaml:"result" db:"result"`
}

// DefectRate is defects per sampled unit, NaN when nothing was sampled.
func (i Inspection) DefectRate() float64 {
	if i.SampleSize <= 0 {
		return nanFloat
	}
	return float64(i.Defects) / float64(i.SampleSize)
}

func registerQualityInspections(reg *core.Registry, opts Options) {
	reg.Register(core.NewPage(core.PageDef[Inspection]{
		Info: core.PageInfo{
			Key:              "quality_inspections",
			Group:            "Quality",
			Label:            "Inspections",
			Description:      "Incoming lot inspections and defect rates",
			SearchHint:       "Search by inspection, lot, product, or supplier...",
			EmptyMessage:     "No inspections recorded",
			EmptyDescription: "Completed inspections will be listed here.",
			NoMatchMessage:   "No inspections found",
		},
		Columns: []datatable.Column[Inspection]{
			text("inspection_no", "Inspection", func(i Inspection) string { return i.InspectionNo }),
			text("lot_number", "Lot", func(i Inspection) string { return i.LotNumber }),
			text("product", "Product", func(i Inspection) string { return i.Product }),
			text("supplier", "Supplier", func(i Inspection) string { return i.Supplier }),
			date("inspected_on", "Inspected", func(i Inspection) time.Time { return i.InspectedOn }),
			count("sample_size", "Sample", func(i Inspection) int { return i.SampleSize }),
			count("defects", "Defects", func(i Inspection) int { return i.Defects }),
			{ID: "defect_rate", Header: "Defect Rate", Sortable: true, Align: datatable.AlignRight,
				Accessor: datatable.Field(Inspection.DefectRate),
				Render:   func(v any, _ Inspection) string { return core.FormatPercent(v.(float64)) }},
			enum("result", "Result", func(i Inspection) string { return i.Result }),
			text("inspector", "Inspector", func(i Inspection) string { return i.Inspector }),
		},
		Fields: []core.FieldSpec{
			{Column: "result", Type: core.FieldEnum, EnumValues: []string{"pass", "fail", "conditional"}},
			{Column: "supplier", Type: core.FieldText},
			{Column: "defect_rate", Type: core.FieldNumeric, Percent: true},
			{Column: "inspected_on", Type: core.FieldDate},
		},
		Source: sourceFor[Inspection](opts, "quality_inspections"),
		SearchFields: func(i Inspection) []string {
			return []string{i.InspectionNo, i.LotNumber, i.Product, i.Supplier}
		},
		Key:         func(i Inspection) string { return i.InspectionNo },
		DefaultSort: datatable.SortBy("inspected_on", datatable.Desc),
		PageSize:    opts.pageSize(0),
		PagerWindow: opts.PagerWindow,
	}))
}
