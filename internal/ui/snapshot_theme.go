package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	ColorBrand        = color.NRGBA{R: 0x2B, G: 0x2B, B: 0x47, A: 0xFF}
	ColorSkeletonLow  = color.NRGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	ColorSkeletonHigh = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	ColorTooltip      = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xCC}
	ColorTooltipText  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorTooltipLink  = color.NRGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF}
)

// SnapshotTheme is the application theme: the default Fyne theme with the
// brand colour for primary actions and slightly tighter spacing.
type SnapshotTheme struct{}

// NewSnapshotTheme creates the application theme
func NewSnapshotTheme() fyne.Theme {
	return &SnapshotTheme{}
}

// Color returns theme colors
func (t *SnapshotTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x7C, G: 0x7C, B: 0xB8, A: 0xFF}
		}
		return ColorBrand
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 40, G: 40, B: 40, A: 255}
		}
		return color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 55, G: 65, B: 81, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SnapshotTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SnapshotTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SnapshotTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return HeadingTextSize
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
