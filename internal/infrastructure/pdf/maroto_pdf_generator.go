// Package pdf implementa la exportación imprimible del backlog.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: título + nombre de la app   │  Fecha + total de ideas        │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: US | Epic | Story | Prio | SP | MoSCoW | Estado | Votos       │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  RESUMEN: ideas por estado + votos totales                            │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

var _ usecase.BacklogPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// caracteres aproximados que caben por línea en la columna story
const storyCharsPerLine = 70

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.BacklogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. appName aparece en la cabecera.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName, now: time.Now}
}

// GenerateBacklogPDF genera el PDF con las ideas en el orden recibido y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBacklogPDF(ctx context.Context, ideas []*entity.Idea) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Backlog", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, g.now(), len(ideas)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for i, idea := range ideas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(ideaRow(idea, i%2 == 1))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(ideas)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, at time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("BACKLOG", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(strconv.Itoa(total)+" ideas", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("US", 1, align.Left),
		h("Epic", 2, align.Left),
		h("Story", 4, align.Left),
		h("Prio.", 1, align.Center),
		h("SP", 1, align.Center),
		h("MoSCoW", 1, align.Center),
		h("Estado", 1, align.Center),
		h("Votos", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// ideaRow: una fila por idea; la altura crece con el largo de story.
func ideaRow(idea *entity.Idea, striped bool) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	r := row.New(rowHeight(idea.Story)).Add(
		cell(idea.USNumber, 1, align.Left),
		cell(dash(idea.Epic), 2, align.Left),
		cell(idea.Story, 4, align.Left),
		cell(dash(string(idea.Priority)), 1, align.Center),
		cell(dash(string(idea.StoryPoints)), 1, align.Center),
		cell(dash(string(idea.MoSCoW)), 1, align.Center),
		cell(string(idea.State), 1, align.Center),
		cell(strconv.Itoa(idea.Votes), 1, align.Right),
	)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// summaryRows: conteo por estado y votos totales.
func summaryRows(ideas []*entity.Idea) []core.Row {
	byState := map[entity.State]int{}
	votes := 0
	for _, i := range ideas {
		byState[i.State]++
		votes += i.Votes
	}
	states := []entity.State{entity.StateToValidate, entity.StateInProgress, entity.StateDone, entity.StateToArchive}
	cols := make([]core.Col, 0, len(states)+1)
	for _, s := range states {
		cols = append(cols, col.New(2).Add(text.New(
			fmt.Sprintf("%s: %d", s, byState[s]),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)))
	}
	cols = append(cols, col.New(4).Add(text.New(
		fmt.Sprintf("Votos totales: %d", votes),
		props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary},
	)))
	return []core.Row{row.New(8).Add(cols...)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func rowHeight(story string) float64 {
	lines := utf8.RuneCountInString(story)/storyCharsPerLine + 1
	return float64(lines)*4 + 3
}
