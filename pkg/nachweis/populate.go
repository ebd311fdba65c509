package nachweis

import (
	"fmt"
	"strings"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/grid"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/hours"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/sheet"
)

// Populate writes sub into s. Every section is best-effort: a missing label,
// a missing table header or a malformed time is recorded in the report and
// the remaining fields are still written.
func Populate(s *sheet.Sheet, sub models.Submission, layout Layout, policy hours.Policy) models.Report {
	p := &populator{s: s, g: s.Grid(), layout: layout, policy: policy}
	t := resolveTargets(p.g, layout)
	p.headers(sub, t)
	p.description(sub.Description, t)
	p.table(sub.ActiveWorkers(), t)
	return p.report
}

type populator struct {
	s      *sheet.Sheet
	g      *grid.Grid
	layout Layout
	policy hours.Policy
	report models.Report
}

// targets are the template positions of every section. They are resolved
// before the first write, so submitted text never acts as a label.
type targets struct {
	headers map[string]models.Address

	descAnchor models.Address
	descArea   models.Rect

	table    grid.TableHeader
	hasTable bool

	total    models.Address
	hasTotal bool
}

func resolveTargets(g *grid.Grid, layout Layout) targets {
	t := targets{headers: make(map[string]models.Address)}
	for _, hf := range layout.HeaderFields {
		if a, ok := headerTarget(g, hf); ok {
			t.headers[hf.Key] = a
		}
	}
	t.descAnchor, t.descArea = descriptionArea(g, layout.Description)
	t.table, t.hasTable = g.FindTableHeader(layout.Table, layout.HeaderSpan)
	if label, ok := findTotalLabel(g, layout.TotalLabels); ok {
		t.total, t.hasTotal = g.RightOrAdjacent(label), true
	}
	return t
}

func (p *populator) problem(field string, err error) {
	p.report.Problems = append(p.report.Problems, NewFieldError(field, err))
}

func (p *populator) write(field string, a models.Address, value any, style sheet.Style) {
	target, err := p.s.Write(a, value, style)
	if err != nil {
		p.problem(field, err)
		return
	}
	p.report.Placements = append(p.report.Placements, models.Placement{Field: field, Cell: target.String()})
}

func (p *populator) headers(sub models.Submission, t targets) {
	values := map[string]string{
		FieldDate:       FormatDate(sub.Date),
		FieldSite:       sub.Site,
		FieldSupervisor: sub.Supervisor,
		FieldEquipment:  sub.Equipment,
	}
	for _, hf := range p.layout.HeaderFields {
		value := values[hf.Key]
		if value == "" {
			continue
		}
		a, ok := t.headers[hf.Key]
		if !ok {
			p.problem(hf.Key, ErrNotFound)
			continue
		}
		p.write(hf.Key, a, value, sheet.Left)
	}
}

// headerTarget resolves the value cell of a header field.
func headerTarget(g *grid.Grid, hf HeaderField) (models.Address, bool) {
	if label, ok := findAnyLabel(g, hf.Labels); ok {
		return g.RightOrAdjacent(label), true
	}
	if hf.Fallback != nil {
		return g.TopLeft(*hf.Fallback), true
	}
	return models.Address{}, false
}

func (p *populator) description(text string, t targets) {
	if text == "" {
		return
	}
	if p.layout.Description.MinRowHeight > 0 {
		for r := t.descArea.MinRow; r <= t.descArea.MaxRow; r++ {
			if err := p.s.EnsureRowHeight(r, p.layout.Description.MinRowHeight); err != nil {
				p.problem("description", err)
				break
			}
		}
	}
	p.write("description", t.descAnchor, text, sheet.WrappedTop)
}

// descriptionArea returns the cell the description is written to and the
// area it fills. Below a description label that is the block directly
// under the label. Without a label it is the layout's fixed block from its
// anchor column on, since the first column carries the row caption.
func descriptionArea(g *grid.Grid, spec DescriptionSpec) (models.Address, models.Rect) {
	if label, ok := findAnyLabel(g, spec.Labels); ok {
		lb := g.Block(label)
		b := g.Block(models.Address{Row: lb.MaxRow + 1, Col: lb.MinCol})
		return b.TopLeft(), b
	}
	area := spec.Block
	area.MinCol = spec.anchorCol()
	if area.MinCol > area.MaxCol {
		area.MinCol = area.MaxCol
	}
	anchor := g.TopLeft(models.Address{Row: area.MinRow, Col: area.MinCol})
	return anchor, area
}

func (p *populator) table(workers []models.Worker, t targets) {
	if !t.hasTable {
		p.problem("table", ErrNoTableHeader)
		return
	}
	header := t.table

	limit := p.layout.MaxWorkers
	if limit <= 0 {
		limit = models.MaxWorkers
	}
	if len(workers) > limit {
		for i := limit; i < len(workers); i++ {
			p.problem(workerField(i, ""), fmt.Errorf("%w: template holds %d rows", ErrTooManyWorkers, limit))
		}
		workers = workers[:limit]
	}

	total := 0.0
	for i, w := range workers {
		row := header.DataRow + i
		cells := []struct {
			col   string
			value string
		}{
			{ColLastName, w.LastName},
			{ColFirstName, w.FirstName},
			{ColID, w.IDNumber},
			{ColStart, w.Start},
			{ColEnd, w.End},
		}
		for _, c := range cells {
			col, ok := header.Column(c.col)
			if !ok || c.value == "" {
				continue
			}
			p.write(workerField(i, c.col), models.Address{Row: row, Col: col}, c.value, sheet.Left)
		}
		if col, ok := header.Column(ColEquipment); ok && w.Equipment != "" {
			p.write(workerField(i, ColEquipment), models.Address{Row: row, Col: col}, w.Equipment, sheet.WrappedTop)
		}

		h := p.workerHours(i, w)
		if col, ok := header.Column(ColHours); ok {
			p.write(workerField(i, ColHours), models.Address{Row: row, Col: col}, h, sheet.Left)
		}
		p.report.Workers = append(p.report.Workers, models.WorkerHours{
			Row:   row,
			Name:  displayName(w),
			Hours: h,
		})
		total += h
	}

	total = hours.Round2(total)
	p.report.TotalHours = total

	if !t.hasTotal {
		p.problem("total", ErrNotFound)
		return
	}
	p.write("total", t.total, total, sheet.Left)
}

// workerHours is 0 for a row without times; only malformed times are
// reported.
func (p *populator) workerHours(i int, w models.Worker) float64 {
	if strings.TrimSpace(w.Start) == "" && strings.TrimSpace(w.End) == "" {
		return 0
	}
	h, err := p.policy.NetString(w.Start, w.End)
	if err != nil {
		p.problem(workerField(i, ColHours), err)
		return 0
	}
	return h
}

func workerField(i int, col string) string {
	if col == "" {
		return fmt.Sprintf("worker[%d]", i+1)
	}
	return fmt.Sprintf("worker[%d].%s", i+1, col)
}

func displayName(w models.Worker) string {
	switch {
	case w.LastName != "" && w.FirstName != "":
		return w.LastName + ", " + w.FirstName
	case w.LastName != "":
		return w.LastName
	default:
		return w.FirstName
	}
}

func findAnyLabel(g *grid.Grid, labels []string) (models.Address, bool) {
	for _, l := range labels {
		if a, ok := g.FindLabel(l); ok {
			return a, true
		}
	}
	return models.Address{}, false
}

func findTotalLabel(g *grid.Grid, labels []string) (models.Address, bool) {
	if a, ok := findAnyLabel(g, labels); ok {
		return a, true
	}
	for _, l := range labels {
		if a, ok := g.FindLabelContaining(l); ok {
			return a, true
		}
	}
	return models.Address{}, false
}
