package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/render"
)

// CellResolver returns the logo resource and status to render for token
type CellResolver func(token model.Token) (fyne.Resource, model.ImageStatus)

// TokenGrid lays tokens out in fixed-size cells. Lists above the threshold
// only get cells for the rows intersecting the viewport; cells that scroll
// away are recycled.
type TokenGrid struct {
	widget.BaseWidget

	localization *Localization
	tokens       []model.Token
	threshold    int
	overscan     int
	hoveredKey   string

	scroll  *container.Scroll
	content *fyne.Container
	spacer  *canvas.Rectangle

	active map[int]*TokenCell
	pool   []*TokenCell
	plan   render.Plan

	resolve     CellResolver
	onHover     func(key string, entered bool)
	onTap       func(token model.Token)
	onSecondary func(token model.Token)
}

// NewTokenGrid creates an empty grid
func NewTokenGrid(localization *Localization, threshold int) *TokenGrid {
	g := &TokenGrid{
		localization: localization,
		threshold:    threshold,
		overscan:     render.DefaultOverscan,
		active:       make(map[int]*TokenCell),
		spacer:       canvas.NewRectangle(color.Transparent),
	}
	g.content = container.NewWithoutLayout(g.spacer)
	g.scroll = container.NewVScroll(g.content)
	g.scroll.OnScrolled = func(fyne.Position) {
		g.reflow()
	}
	g.ExtendBaseWidget(g)
	return g
}

// SetCallbacks sets the cell resolver and the interaction callbacks
func (g *TokenGrid) SetCallbacks(
	resolve CellResolver,
	onHover func(key string, entered bool),
	onTap func(token model.Token),
	onSecondary func(token model.Token),
) {
	g.resolve = resolve
	g.onHover = onHover
	g.onTap = onTap
	g.onSecondary = onSecondary
}

// SetTokens replaces the shown list and scrolls back to the top
func (g *TokenGrid) SetTokens(tokens []model.Token) {
	g.releaseAll()
	g.tokens = tokens
	g.scroll.Offset = fyne.NewPos(0, 0)
	g.reflow()
	g.scroll.Refresh()
}

// SetThreshold changes the list size above which the grid is windowed
func (g *TokenGrid) SetThreshold(threshold int) {
	if g.threshold == threshold {
		return
	}
	g.threshold = threshold
	g.reflow()
	g.scroll.Refresh()
}

// SetHoveredKey shows the tooltip on the cell for key and hides the others
func (g *TokenGrid) SetHoveredKey(key string) {
	g.hoveredKey = key
	for _, cell := range g.active {
		cell.SetHovered(key != "" && cell.Token().Key() == key)
	}
}

// RefreshCells re-resolves the logo of every materialised cell. Cells
// whose status did not change are left alone.
func (g *TokenGrid) RefreshCells() {
	if g.resolve == nil {
		return
	}
	for i, cell := range g.active {
		token := g.tokens[i]
		res, status := g.resolve(token)
		if cell.Status() == status && cell.Token().Key() == token.Key() {
			continue
		}
		cell.Update(token, res, status)
	}
}

// Rebind updates every materialised cell from scratch
func (g *TokenGrid) Rebind() {
	for i, cell := range g.active {
		g.bind(cell, g.tokens[i])
	}
}

// Plan returns the layout decision of the last reflow
func (g *TokenGrid) Plan() render.Plan {
	return g.plan
}

// Len returns the number of tokens in the grid
func (g *TokenGrid) Len() int {
	return len(g.tokens)
}

// MaterialisedCount returns the number of cells currently on the canvas
func (g *TokenGrid) MaterialisedCount() int {
	return len(g.active)
}

// Cell returns the cell showing token index i, if materialised
func (g *TokenGrid) Cell(i int) (*TokenCell, bool) {
	cell, ok := g.active[i]
	return cell, ok
}

// ScrollTo moves the viewport to offset y
func (g *TokenGrid) ScrollTo(y float32) {
	g.scroll.Offset = fyne.NewPos(0, y)
	g.scroll.Refresh()
	g.reflow()
}

func (g *TokenGrid) viewport() render.Viewport {
	size := g.scroll.Size()
	return render.Viewport{
		Width:      size.Width - 2*GridSidePadding,
		Height:     size.Height,
		Offset:     g.scroll.Offset.Y,
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
		Gap:        CellGap,
		Overscan:   g.overscan,
	}
}

// reflow materialises the cells of the planned range and positions them
func (g *TokenGrid) reflow() {
	v := g.viewport()
	plan := render.Compute(len(g.tokens), g.threshold, v)
	g.plan = plan

	for i, cell := range g.active {
		if !plan.Contains(i) {
			g.release(i, cell)
		}
	}

	rowWidth := float32(plan.Columns)*CellWidth + float32(plan.Columns-1)*CellGap
	left := (g.scroll.Size().Width - rowWidth) / 2
	if left < GridSidePadding {
		left = GridSidePadding
	}

	objects := make([]fyne.CanvasObject, 0, plan.Len()+1)
	objects = append(objects, g.spacer)
	for i := plan.First; i < plan.Last; i++ {
		cell, ok := g.active[i]
		if !ok {
			cell = g.acquire()
			g.active[i] = cell
			g.bind(cell, g.tokens[i])
		}
		x, y := plan.Position(i, v)
		cell.Move(fyne.NewPos(left+x, y))
		cell.Resize(fyne.NewSize(CellWidth, CellHeight))
		objects = append(objects, cell)
	}

	g.spacer.SetMinSize(fyne.NewSize(CellWidth, plan.Extent+CellGap))
	g.content.Objects = objects
	g.content.Refresh()
}

func (g *TokenGrid) bind(cell *TokenCell, token model.Token) {
	var (
		res    fyne.Resource
		status = model.ImageStatusPending
	)
	if g.resolve != nil {
		res, status = g.resolve(token)
	}
	cell.Update(token, res, status)
	cell.SetHovered(g.hoveredKey != "" && token.Key() == g.hoveredKey)
}

func (g *TokenGrid) acquire() *TokenCell {
	if n := len(g.pool); n > 0 {
		cell := g.pool[n-1]
		g.pool = g.pool[:n-1]
		return cell
	}
	cell := NewTokenCell(g.localization)
	cell.SetCallbacks(g.cellHover, g.cellTap, g.cellSecondary)
	return cell
}

func (g *TokenGrid) release(i int, cell *TokenCell) {
	cell.Release()
	delete(g.active, i)
	g.pool = append(g.pool, cell)
}

func (g *TokenGrid) releaseAll() {
	for i, cell := range g.active {
		g.release(i, cell)
	}
}

func (g *TokenGrid) cellHover(key string, entered bool) {
	if g.onHover != nil {
		g.onHover(key, entered)
	}
}

func (g *TokenGrid) cellTap(token model.Token) {
	if g.onTap != nil {
		g.onTap(token)
	}
}

func (g *TokenGrid) cellSecondary(token model.Token) {
	if g.onSecondary != nil {
		g.onSecondary(token)
	}
}

// CreateRenderer creates the widget renderer
func (g *TokenGrid) CreateRenderer() fyne.WidgetRenderer {
	return &tokenGridRenderer{grid: g}
}

// tokenGridRenderer renders the token grid widget
type tokenGridRenderer struct {
	grid *TokenGrid
}

// Layout resizes the scroller and recomputes the window for the new size
func (r *tokenGridRenderer) Layout(size fyne.Size) {
	r.grid.scroll.Resize(size)
	r.grid.reflow()
}

// MinSize returns the minimum size
func (r *tokenGridRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CellWidth+2*GridSidePadding, CellHeight)
}

// Refresh refreshes the renderer
func (r *tokenGridRenderer) Refresh() {
	r.grid.reflow()
	r.grid.scroll.Refresh()
}

// Objects returns the canvas objects
func (r *tokenGridRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.grid.scroll}
}

// Destroy cleans up the renderer
func (r *tokenGridRenderer) Destroy() {
	r.grid.releaseAll()
}
