package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/snapshot/internal/config"
)

// SettingsChange tells the caller what a save touched
type SettingsChange struct {
	// NeedsRestart is set when a source setting changed; those are read once at startup
	NeedsRestart bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// language codes in the order shown by languageSelect
	languageCodes []string

	// UI components
	baseURLEntry       *widget.Entry
	categoriesURLEntry *widget.Entry
	discoverCheck      *widget.Check
	searchDelayEntry   *widget.Entry
	httpTimeoutEntry   *widget.Entry
	thresholdEntry     *widget.Entry
	maxParallelEntry   *widget.Entry
	languageSelect     *widget.Select
}

// ShowSettingsDialog creates the dialog and shows it
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsChange)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultTokensBaseURL)

	sd.categoriesURLEntry = widget.NewEntry()
	sd.categoriesURLEntry.SetPlaceHolder(config.DefaultCategoriesURL)

	sd.discoverCheck = widget.NewCheck(text(KeyDiscoverCategories), nil)

	sd.searchDelayEntry = widget.NewEntry()
	sd.searchDelayEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxSearchDelayMS))

	sd.httpTimeoutEntry = widget.NewEntry()
	sd.httpTimeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinHTTPTimeoutSec) + "-" + strconv.Itoa(config.MaxHTTPTimeoutSec))

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(strconv.Itoa(config.DefaultVirtualizeThreshold))

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-32")

	// Language selection, shown by display name
	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(options))
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	labels := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		labels = append(labels, options[code])
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeySourceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyTokensBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(text(KeyCategoriesURL)+":"),
		sd.categoriesURLEntry,
		sd.discoverCheck,

		widget.NewLabel(text(KeyHTTPTimeout)+":"),
		sd.httpTimeoutEntry,

		widget.NewLabel(text(KeySearchDelay)+":"),
		sd.searchDelayEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyDisplaySettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyVirtualizeThreshold)+":"),
		sd.thresholdEntry,

		widget.NewLabel(text(KeyMaxParallelLogos)+":"),
		sd.maxParallelEntry,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetTokensBaseURL())
	sd.categoriesURLEntry.SetText(sd.settings.GetCategoriesURL())
	sd.discoverCheck.SetChecked(sd.settings.GetDiscoverCategories())
	sd.searchDelayEntry.SetText(strconv.Itoa(int(sd.settings.GetSearchDelay() / time.Millisecond)))
	sd.httpTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetHTTPTimeout() / time.Second)))
	sd.thresholdEntry.SetText(strconv.Itoa(sd.settings.GetVirtualizeThreshold()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelLogos()))

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	change := sd.save()

	if sd.onSaved != nil {
		sd.onSaved(change)
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if change.NeedsRestart {
		message += "\n" + sd.localization.GetText(KeyRestartNotice)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// save writes the form to the settings. Empty or malformed numeric fields
// keep the stored value.
func (sd *SettingsDialog) save() SettingsChange {
	var change SettingsChange

	if baseURL := strings.TrimSpace(sd.baseURLEntry.Text); baseURL != sd.settings.GetTokensBaseURL() {
		sd.settings.SetTokensBaseURL(baseURL)
		change.NeedsRestart = true
	}
	if categoriesURL := strings.TrimSpace(sd.categoriesURLEntry.Text); categoriesURL != sd.settings.GetCategoriesURL() {
		sd.settings.SetCategoriesURL(categoriesURL)
		change.NeedsRestart = true
	}
	if sd.discoverCheck.Checked != sd.settings.GetDiscoverCategories() {
		sd.settings.SetDiscoverCategories(sd.discoverCheck.Checked)
		change.NeedsRestart = true
	}

	if ms, ok := parseField(sd.searchDelayEntry.Text); ok {
		delay := time.Duration(ms) * time.Millisecond
		if delay != sd.settings.GetSearchDelay() {
			sd.settings.SetSearchDelay(delay)
			change.NeedsRestart = true
		}
	}
	if sec, ok := parseField(sd.httpTimeoutEntry.Text); ok {
		timeout := time.Duration(sec) * time.Second
		if timeout != sd.settings.GetHTTPTimeout() {
			sd.settings.SetHTTPTimeout(timeout)
			change.NeedsRestart = true
		}
	}

	if threshold, ok := parseField(sd.thresholdEntry.Text); ok {
		sd.settings.SetVirtualizeThreshold(threshold)
	}
	if maxParallel, ok := parseField(sd.maxParallelEntry.Text); ok {
		sd.settings.SetMaxParallelLogos(maxParallel)
	}

	if i := sd.languageSelect.SelectedIndex(); i >= 0 && i < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}

	return change
}

func parseField(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
