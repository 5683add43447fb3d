package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
	IconClose    = "×"
)

// Grid sizing
const (
	CellWidth  float32 = 150
	CellHeight float32 = 150
	CellGap    float32 = 30

	// ImageScale shrinks the logo inside its cell
	ImageScale float32 = 0.8

	GridSidePadding    float32 = 24
	SearchEntryWidth   float32 = 400
	TitleTextSize      float32 = 48
	HeadingTextSize    float32 = 26
	TooltipTextSize    float32 = 11
	TooltipPadding     float32 = 6
	SkeletonCornerSize float32 = 8
)

// Loading placeholders
const (
	SkeletonCount = 8
	SkeletonPulse = 900 * time.Millisecond
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 60
	ToastMargin   float32 = 20
	ToastAutoHide         = 2 * time.Second
)

// Window
const (
	WindowWidth  float32 = 1024
	WindowHeight float32 = 768
)
