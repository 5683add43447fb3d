package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/snapshot/internal/model"
)

// TokenCell shows one token logo. Until the logo settles a skeleton pulses
// behind it; a failed logo is replaced with the placeholder icon. Hovering
// the cell reveals a tooltip with the token name and an "Open Image" hint.
type TokenCell struct {
	widget.BaseWidget

	token        model.Token
	status       model.ImageStatus
	hovered      bool
	localization *Localization

	// UI components
	skeleton *Skeleton
	image    *canvas.Image
	tipBg    *canvas.Rectangle
	tipName  *canvas.Text
	tipUnit  *canvas.Text
	tipLink  *canvas.Text

	// Callbacks
	onHover     func(key string, entered bool)
	onTap       func(token model.Token)
	onSecondary func(token model.Token)
}

var (
	_ desktop.Hoverable      = (*TokenCell)(nil)
	_ desktop.Cursorable     = (*TokenCell)(nil)
	_ fyne.Tappable          = (*TokenCell)(nil)
	_ fyne.SecondaryTappable = (*TokenCell)(nil)
)

// NewTokenCell creates an empty cell
func NewTokenCell(localization *Localization) *TokenCell {
	tc := &TokenCell{localization: localization}
	tc.ExtendBaseWidget(tc)
	tc.createUI()
	return tc
}

func (tc *TokenCell) createUI() {
	tc.skeleton = NewSkeleton()

	tc.image = canvas.NewImageFromResource(nil)
	tc.image.FillMode = canvas.ImageFillContain
	tc.image.ScaleMode = canvas.ImageScaleSmooth
	tc.image.Hide()

	tc.tipBg = canvas.NewRectangle(ColorTooltip)
	tc.tipBg.CornerRadius = SkeletonCornerSize

	tc.tipName = canvas.NewText("", ColorTooltipText)
	tc.tipName.TextSize = TooltipTextSize
	tc.tipName.TextStyle = fyne.TextStyle{Bold: true}
	tc.tipName.Alignment = fyne.TextAlignCenter

	tc.tipUnit = canvas.NewText("", ColorTooltipText)
	tc.tipUnit.TextSize = TooltipTextSize
	tc.tipUnit.Alignment = fyne.TextAlignCenter

	tc.tipLink = canvas.NewText("", ColorTooltipLink)
	tc.tipLink.TextSize = TooltipTextSize
	tc.tipLink.Alignment = fyne.TextAlignCenter

	tc.setTooltipVisible(false)
}

// SetCallbacks sets the interaction callbacks
func (tc *TokenCell) SetCallbacks(
	onHover func(key string, entered bool),
	onTap func(token model.Token),
	onSecondary func(token model.Token),
) {
	tc.onHover = onHover
	tc.onTap = onTap
	tc.onSecondary = onSecondary
}

// Update binds the cell to token. res is used when status is Loaded.
func (tc *TokenCell) Update(token model.Token, res fyne.Resource, status model.ImageStatus) {
	tc.token = token
	tc.status = status

	switch status {
	case model.ImageStatusFailed:
		tc.image.Resource = PlaceholderResource()
	case model.ImageStatusLoaded:
		if res == nil {
			res = PlaceholderResource()
		}
		tc.image.Resource = res
	default:
		tc.image.Resource = nil
	}

	if status.IsSettled() {
		tc.skeleton.Stop()
		tc.skeleton.Hide()
		tc.image.Show()
	} else {
		tc.image.Hide()
		tc.skeleton.Show()
		tc.skeleton.Start()
	}

	tc.updateTooltipText()
	tc.Refresh()
}

// SetHovered shows or hides the tooltip
func (tc *TokenCell) SetHovered(hovered bool) {
	if tc.hovered == hovered {
		return
	}
	tc.hovered = hovered
	tc.setTooltipVisible(hovered)
	tc.Refresh()
}

// Token returns the bound token
func (tc *TokenCell) Token() model.Token {
	return tc.token
}

// Status returns the logo status the cell renders
func (tc *TokenCell) Status() model.ImageStatus {
	return tc.status
}

// Hovered reports whether the tooltip is shown
func (tc *TokenCell) Hovered() bool {
	return tc.hovered
}

// Release stops the skeleton of a cell that leaves the screen
func (tc *TokenCell) Release() {
	tc.skeleton.Stop()
	tc.hovered = false
	tc.setTooltipVisible(false)
}

func (tc *TokenCell) updateTooltipText() {
	tc.tipName.Text = tc.token.GetDisplayName()
	unit := tc.localization.GetText(KeySmallestUnit) + ": " + tc.token.SmallestUnit()
	if tc.token.Symbol != "" {
		unit += " " + tc.token.Symbol
	}
	tc.tipUnit.Text = unit
	tc.tipLink.Text = tc.localization.GetText(KeyOpenImage)
}

func (tc *TokenCell) setTooltipVisible(visible bool) {
	for _, obj := range []fyne.CanvasObject{tc.tipBg, tc.tipName, tc.tipUnit, tc.tipLink} {
		if visible {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
}

// MouseIn is called when a desktop pointer enters the widget
func (tc *TokenCell) MouseIn(*desktop.MouseEvent) {
	if tc.onHover != nil {
		tc.onHover(tc.token.Key(), true)
	}
}

// MouseMoved is called when a desktop pointer hovers over the widget
func (tc *TokenCell) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer exits the widget
func (tc *TokenCell) MouseOut() {
	if tc.onHover != nil {
		tc.onHover(tc.token.Key(), false)
	}
}

// Tapped opens the logo
func (tc *TokenCell) Tapped(*fyne.PointEvent) {
	if tc.onTap != nil {
		tc.onTap(tc.token)
	}
}

// TappedSecondary copies the logo link
func (tc *TokenCell) TappedSecondary(*fyne.PointEvent) {
	if tc.onSecondary != nil {
		tc.onSecondary(tc.token)
	}
}

// Cursor shows a pointer over the cell
func (tc *TokenCell) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (tc *TokenCell) CreateRenderer() fyne.WidgetRenderer {
	return &tokenCellRenderer{
		cell: tc,
		objects: []fyne.CanvasObject{
			tc.skeleton, tc.image, tc.tipBg, tc.tipName, tc.tipUnit, tc.tipLink,
		},
	}
}

// tokenCellRenderer renders the token cell widget
type tokenCellRenderer struct {
	cell    *TokenCell
	objects []fyne.CanvasObject
}

// Layout arranges the components
func (r *tokenCellRenderer) Layout(size fyne.Size) {
	tc := r.cell

	tc.skeleton.Move(fyne.NewPos(0, 0))
	tc.skeleton.Resize(size)

	inset := fyne.NewSize(size.Width*(1-ImageScale)/2, size.Height*(1-ImageScale)/2)
	tc.image.Move(fyne.NewPos(inset.Width, inset.Height))
	tc.image.Resize(fyne.NewSize(size.Width*ImageScale, size.Height*ImageScale))

	lines := []*canvas.Text{tc.tipName, tc.tipUnit, tc.tipLink}
	tipHeight := 2 * TooltipPadding
	for _, line := range lines {
		tipHeight += line.MinSize().Height
	}

	top := size.Height - tipHeight
	if top < 0 {
		top = 0
	}
	tc.tipBg.Move(fyne.NewPos(0, top))
	tc.tipBg.Resize(fyne.NewSize(size.Width, size.Height-top))

	y := top + TooltipPadding
	for _, line := range lines {
		h := line.MinSize().Height
		line.Move(fyne.NewPos(0, y))
		line.Resize(fyne.NewSize(size.Width, h))
		y += h
	}
}

// MinSize returns the minimum size
func (r *tokenCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CellWidth, CellHeight)
}

// Refresh refreshes the renderer
func (r *tokenCellRenderer) Refresh() {
	r.Layout(r.cell.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

// Objects returns the canvas objects
func (r *tokenCellRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *tokenCellRenderer) Destroy() {
	r.cell.skeleton.Stop()
}
