package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Skeleton is a pulsing placeholder drawn while content loads.
// It does not react to input.
type Skeleton struct {
	widget.BaseWidget

	rect    *canvas.Rectangle
	anim    *fyne.Animation
	running bool
}

// NewSkeleton creates a stopped skeleton
func NewSkeleton() *Skeleton {
	s := &Skeleton{rect: canvas.NewRectangle(ColorSkeletonLow)}
	s.rect.CornerRadius = SkeletonCornerSize
	s.anim = canvas.NewColorRGBAAnimation(ColorSkeletonLow, ColorSkeletonHigh, SkeletonPulse, func(c color.Color) {
		s.rect.FillColor = c
		s.rect.Refresh()
	})
	s.anim.AutoReverse = true
	s.anim.RepeatCount = fyne.AnimationRepeatForever
	s.anim.Curve = fyne.AnimationEaseInOut
	s.ExtendBaseWidget(s)
	return s
}

// Start begins the pulse
func (s *Skeleton) Start() {
	if s.running {
		return
	}
	s.running = true
	s.anim.Start()
}

// Stop ends the pulse
func (s *Skeleton) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.anim.Stop()
}

// Running reports whether the pulse is active
func (s *Skeleton) Running() bool {
	return s.running
}

// CreateRenderer creates the widget renderer
func (s *Skeleton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// SkeletonGrid shows a fixed number of skeleton cells in place of the token grid
type SkeletonGrid struct {
	container *fyne.Container
	skeletons []*Skeleton
}

// NewSkeletonGrid creates a hidden grid of count skeletons
func NewSkeletonGrid(count int) *SkeletonGrid {
	sg := &SkeletonGrid{skeletons: make([]*Skeleton, 0, count)}
	objects := make([]fyne.CanvasObject, 0, count)
	for i := 0; i < count; i++ {
		s := NewSkeleton()
		sg.skeletons = append(sg.skeletons, s)
		objects = append(objects, s)
	}
	sg.container = container.NewGridWrap(fyne.NewSize(CellWidth, CellHeight), objects...)
	sg.container.Hide()
	return sg
}

// Container returns the canvas object to place in the window
func (sg *SkeletonGrid) Container() fyne.CanvasObject {
	return sg.container
}

// Show makes the grid visible and starts the pulse
func (sg *SkeletonGrid) Show() {
	for _, s := range sg.skeletons {
		s.Start()
	}
	sg.container.Show()
}

// Hide hides the grid and stops the pulse
func (sg *SkeletonGrid) Hide() {
	for _, s := range sg.skeletons {
		s.Stop()
	}
	sg.container.Hide()
}

// Visible reports whether the grid is shown
func (sg *SkeletonGrid) Visible() bool {
	return sg.container.Visible()
}

// Len returns the number of skeletons
func (sg *SkeletonGrid) Len() int {
	return len(sg.skeletons)
}
