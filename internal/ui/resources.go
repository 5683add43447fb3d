package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "snapshot.png"
)

// LoadLogoResource loads the application icon from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderResource is shown in place of a logo that failed to load
func PlaceholderResource() fyne.Resource {
	return theme.QuestionIcon()
}
