package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// CategoryBar shows one button per category. The selected category is
// highlighted.
type CategoryBar struct {
	categories []string
	selected   string
	buttons    map[string]*widget.Button

	// UI components
	row       *fyne.Container
	container *fyne.Container

	onSelect func(category string)
}

// NewCategoryBar creates an empty category bar
func NewCategoryBar(onSelect func(category string)) *CategoryBar {
	cb := &CategoryBar{
		buttons:  make(map[string]*widget.Button),
		onSelect: onSelect,
	}
	cb.row = container.NewHBox()
	cb.container = container.NewHBox(layout.NewSpacer(), cb.row, layout.NewSpacer())
	return cb
}

// Container returns the canvas object to place in the window
func (cb *CategoryBar) Container() fyne.CanvasObject {
	return cb.container
}

// SetCategories rebuilds the buttons when the category list changed
func (cb *CategoryBar) SetCategories(categories []string) {
	if slices.Equal(cb.categories, categories) {
		return
	}
	cb.categories = append([]string(nil), categories...)
	cb.buttons = make(map[string]*widget.Button, len(categories))

	objects := make([]fyne.CanvasObject, 0, len(categories))
	for _, category := range categories {
		name := category
		btn := widget.NewButton(name, func() {
			if cb.onSelect != nil {
				cb.onSelect(name)
			}
		})
		cb.buttons[name] = btn
		objects = append(objects, btn)
	}
	cb.row.Objects = objects
	cb.applySelection()
	cb.row.Refresh()
}

// SetSelected highlights category
func (cb *CategoryBar) SetSelected(category string) {
	if cb.selected == category {
		return
	}
	cb.selected = category
	cb.applySelection()
}

// Selected returns the highlighted category
func (cb *CategoryBar) Selected() string {
	return cb.selected
}

// Categories returns the categories shown
func (cb *CategoryBar) Categories() []string {
	return cb.categories
}

// Button returns the button for category
func (cb *CategoryBar) Button(category string) (*widget.Button, bool) {
	btn, ok := cb.buttons[category]
	return btn, ok
}

func (cb *CategoryBar) applySelection() {
	for name, btn := range cb.buttons {
		importance := widget.MediumImportance
		if name == cb.selected {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
}
