package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI adapts sizes for touch devices
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// ShowAddressBar reports whether the route entry is shown. Mobile builds
// have no address bar; routes still come from the command line or settings.
func (m *MobileUI) ShowAddressBar() bool {
	return !m.IsMobileDevice()
}

// SearchEntryWidth returns the search box width
func (m *MobileUI) SearchEntryWidth() float32 {
	if m.IsMobileDevice() {
		return SearchEntryWidth * 0.6
	}
	return SearchEntryWidth
}
