package sheet

import "github.com/xuri/excelize/v2"

// Style is the subset of cell formatting the populator controls.
type Style struct {
	// Horizontal is left|center|right; empty keeps the cell's value.
	Horizontal string
	// Vertical is top|center|bottom; empty keeps the cell's value.
	Vertical string
	// Wrap enables text wrapping.
	Wrap bool
}

var (
	// Left is used for header values and table cells.
	Left = Style{Horizontal: "left"}
	// WrappedTop is used for free text that spans several rows.
	WrappedTop = Style{Horizontal: "left", Vertical: "top", Wrap: true}
)

// applyStyle merges st into the cell's current style so borders, fonts and
// fills of the template survive.
func (s *Sheet) applyStyle(cell string, st Style) error {
	base, err := s.f.GetCellStyle(s.name, cell)
	if err != nil {
		return err
	}
	key := styleKey{base: base, style: st}
	if id, ok := s.styles[key]; ok {
		return s.f.SetCellStyle(s.name, cell, cell, id)
	}

	current, err := s.f.GetStyle(base)
	if err != nil {
		return err
	}
	if current == nil {
		current = &excelize.Style{}
	}
	align := excelize.Alignment{}
	if current.Alignment != nil {
		align = *current.Alignment
	}
	if st.Horizontal != "" {
		align.Horizontal = st.Horizontal
	}
	if st.Vertical != "" {
		align.Vertical = st.Vertical
	}
	align.WrapText = st.Wrap
	current.Alignment = &align

	id, err := s.f.NewStyle(current)
	if err != nil {
		return err
	}
	s.styles[key] = id
	return s.f.SetCellStyle(s.name, cell, cell, id)
}
