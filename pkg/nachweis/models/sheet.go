package models

// LabelMatch describes where a header label was found.
type LabelMatch struct {
	// Field is the logical field the label anchors.
	Field string `json:"field"`
	// Label is the template text that matched.
	Label string `json:"label,omitempty"`
	// LabelCell is the label's own cell.
	LabelCell string `json:"label_cell,omitempty"`
	// ValueCell is where a value for the field would be written.
	ValueCell string `json:"value_cell,omitempty"`
	// Fallback is true when the label was missing and a fixed address is used.
	Fallback bool `json:"fallback,omitempty"`
}

// TableInfo describes the resolved worker table.
type TableInfo struct {
	// HeaderRow is the first row of the table header.
	HeaderRow int `json:"header_row"`
	// DataRow is the first worker row.
	DataRow int `json:"data_row"`
	// Columns maps logical column key to its cell in the first data row.
	Columns map[string]string `json:"columns"`
}

// BlockInfo describes a merged block and its rendered pixel size.
type BlockInfo struct {
	// Range is the block in A1 notation.
	Range string `json:"range"`
	// W is the estimated width in pixels.
	W int `json:"w"`
	// H is the estimated height in pixels.
	H int `json:"h"`
}

// TemplateInfo is the diagnostic view of a template as the locator sees it.
type TemplateInfo struct {
	// BookName is the template file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet that is populated.
	SheetName string `json:"sheet_name"`
	// Merges is the number of merged regions on the sheet.
	Merges int `json:"merges"`
	// Labels lists the header field resolutions.
	Labels []LabelMatch `json:"labels"`
	// Table is nil when no worker table header was found.
	Table *TableInfo `json:"table,omitempty"`
	// Total is the resolution of the total-hours label.
	Total *LabelMatch `json:"total,omitempty"`
	// Description is the free-text block.
	Description BlockInfo `json:"description"`
	// PrintArea is the sheet's current print area, if any.
	PrintArea *PrintArea `json:"print_area,omitempty"`
}
