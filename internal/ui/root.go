package ui

import (
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/snapshot/internal/config"
	"github.com/ytget/snapshot/internal/logo"
	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/session"
	"github.com/ytget/snapshot/internal/state"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      session.Browser
	logos        logo.Fetcher
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// UI components
	addressEntry *widget.Entry
	titleText    *canvas.Text
	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	categoryBar  *CategoryBar
	heading      *canvas.Text
	grid         *TokenGrid
	skeletons    *SkeletonGrid
	toast        *widget.PopUp
	toastLabel   *widget.Label

	// Rendering state, owned by the UI goroutine
	lastVersion      uint64
	current          state.Snapshot
	renderedCategory string
	renderedRoute    string
	savedRoute       string
	suppressSearch   bool

	// keysByURL maps the logo URLs of the current list to token keys
	keysMu        sync.Mutex
	keysByURL     map[string][]string
	tokensVersion uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, browser session.Browser, logos logo.Fetcher, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      browser,
		logos:        logos,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		keysByURL:    make(map[string][]string),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.logos.SetUpdateCallback(ui.onLogoSettled)
	ui.session.SetUpdateCallback(ui.onSessionUpdate)

	// Render whatever the session already holds
	ui.current = browser.Snapshot()
	ui.indexLogoURLs(0, ui.current.Tokens)
	ui.render(ui.current, ^state.Change(0))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Address bar
	ui.addressEntry = widget.NewEntry()
	ui.addressEntry.SetPlaceHolder(ui.localization.GetText(KeyAddressPlaceholder))
	ui.addressEntry.OnSubmitted = ui.onAddressSubmitted

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	reloadBtn := widget.NewButton(IconReload, ui.onReload)
	reloadBtn.Importance = widget.LowImportance

	leading := container.NewHBox(settingsBtn, reloadBtn)
	if icon, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(icon)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, settingsBtn, reloadBtn)
	}
	addressBar := container.NewBorder(nil, nil, leading, nil, ui.addressEntry)
	if !ui.mobile.ShowAddressBar() {
		addressBar.Hide()
	}

	// Title
	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), theme.Color(theme.ColorNameForeground))
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.Alignment = fyne.TextAlignCenter

	// Search row
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchSubmitted()
	}
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchSubmitted)
	ui.searchBtn.Importance = widget.HighImportance

	searchSize := fyne.NewSize(ui.mobile.SearchEntryWidth(), ui.searchEntry.MinSize().Height)
	searchRow := container.NewHBox(
		layout.NewSpacer(),
		container.NewGridWrap(searchSize, ui.searchEntry),
		ui.searchBtn,
		layout.NewSpacer(),
	)

	ui.categoryBar = NewCategoryBar(ui.onCategorySelected)

	ui.heading = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.heading.TextSize = HeadingTextSize
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}
	ui.heading.Alignment = fyne.TextAlignCenter

	header := container.NewVBox(
		addressBar,
		ui.titleText,
		searchRow,
		ui.categoryBar.Container(),
		ui.heading,
	)

	// Grid and the skeletons that replace it while loading
	ui.grid = NewTokenGrid(ui.localization, ui.settings.GetVirtualizeThreshold())
	ui.grid.SetCallbacks(ui.resolveLogo, ui.onCellHover, ui.onCellTapped, ui.onCellSecondary)
	ui.skeletons = NewSkeletonGrid(SkeletonCount)

	body := container.NewStack(ui.grid, container.NewPadded(ui.skeletons.Container()))

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, body))
	log.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.onReload)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.addressEntry.SetPlaceHolder(ui.localization.GetText(KeyAddressPlaceholder))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))

	ui.renderHeading(ui.current)
	ui.grid.Rebind()
}

// onSessionUpdate is called by the session from any goroutine
func (ui *RootUI) onSessionUpdate(u session.Update) {
	if u.Change.Has(state.ChangeTokens) {
		ui.indexLogoURLs(u.Version, u.Snapshot.Tokens)
	}
	fyne.Do(func() {
		ui.applyUpdate(u)
	})
}

// applyUpdate renders u. Updates can arrive out of order; a stale one
// still names what changed, so the newest snapshot is re-rendered for its flags.
func (ui *RootUI) applyUpdate(u session.Update) {
	if u.Version > ui.lastVersion {
		ui.lastVersion = u.Version
		ui.current = u.Snapshot
	}
	ui.render(ui.current, u.Change)
}

// render brings the widgets in line with snap
func (ui *RootUI) render(snap state.Snapshot, change state.Change) {
	ui.categoryBar.SetCategories(snap.Categories)
	ui.categoryBar.SetSelected(snap.Category)

	if snap.Category != ui.renderedCategory {
		if ui.renderedCategory != "" {
			if dropped := ui.logos.DropQueued(); dropped > 0 {
				log.Debug("dropped queued logos", "count", dropped, "category", ui.renderedCategory)
			}
		}
		ui.renderedCategory = snap.Category
	}

	if ui.searchEntry.Text != snap.Term {
		ui.suppressSearch = true
		ui.searchEntry.SetText(snap.Term)
		ui.suppressSearch = false
	}

	if snap.Route != ui.renderedRoute {
		ui.renderedRoute = snap.Route
		ui.addressEntry.SetText(snap.Route)
	}
	// typing alone does not persist the route
	if change.Has(state.ChangeCategory|state.ChangeFiltered) && snap.Route != ui.savedRoute {
		ui.savedRoute = snap.Route
		ui.settings.SetLastRoute(snap.Route)
	}

	ui.renderHeading(snap)

	if snap.Status.IsLoading() {
		ui.grid.Hide()
		ui.skeletons.Show()
	} else {
		ui.skeletons.Hide()
		ui.grid.Show()
	}

	if change.Has(state.ChangeFiltered) {
		ui.grid.SetTokens(snap.Filtered)
	}
	if change.Has(state.ChangeHover) || change.Has(state.ChangeFiltered) {
		key := ""
		if snap.Hovered != nil {
			key = snap.Hovered.Key()
		}
		ui.grid.SetHoveredKey(key)
	}
	if change.Has(state.ChangeImages) {
		ui.grid.RefreshCells()
	}
}

// renderHeading shows "{category} Tokens" over a non-empty grid, else the message
func (ui *RootUI) renderHeading(snap state.Snapshot) {
	text := ui.localization.MessageText(snap.Message)
	if len(snap.Filtered) > 0 {
		text = ui.localization.Format(KeyCategoryTokens, snap.Category)
	}
	if ui.heading.Text != text {
		ui.heading.Text = text
		ui.heading.Refresh()
	}
}

// indexLogoURLs rebuilds the URL to key map from tokens. Lists older than
// the one already indexed are ignored.
func (ui *RootUI) indexLogoURLs(version uint64, tokens []model.Token) {
	index := make(map[string][]string, len(tokens))
	for _, token := range tokens {
		u := strings.TrimSpace(token.LogoURI)
		index[u] = append(index[u], token.Key())
	}

	ui.keysMu.Lock()
	defer ui.keysMu.Unlock()
	if version < ui.tokensVersion {
		return
	}
	ui.tokensVersion = version
	ui.keysByURL = index
}

func (ui *RootUI) keysFor(logoURL string) []string {
	ui.keysMu.Lock()
	defer ui.keysMu.Unlock()
	return ui.keysByURL[logoURL]
}

// onLogoSettled is called by the logo loader from its own goroutines
func (ui *RootUI) onLogoSettled(logoURL string, _ fyne.Resource, err error) {
	for _, key := range ui.keysFor(logoURL) {
		if err != nil {
			ui.session.ImageFailed(key)
		} else {
			ui.session.ImageLoaded(key)
		}
	}
}

// resolveLogo returns what a cell should draw for token and schedules the
// fetch of logos that have not settled yet
func (ui *RootUI) resolveLogo(token model.Token) (fyne.Resource, model.ImageStatus) {
	status := ui.session.ImageStatus(token.Key())
	switch status {
	case model.ImageStatusLoaded:
		if result, ok := ui.logos.Lookup(token.LogoURI); ok && result.Err == nil {
			return result.Resource, status
		}
	case model.ImageStatusPending:
		ui.logos.Request(token.LogoURI)
	}
	return nil, status
}

// onCategorySelected handles a category button click
func (ui *RootUI) onCategorySelected(category string) {
	log.Info("category clicked", "category", category)
	ui.session.SelectCategory(category)
}

// onReload fetches the current category again
func (ui *RootUI) onReload() {
	ui.session.SelectCategory(ui.current.Category)
}

// onSearchChanged mirrors the search field into the session
func (ui *RootUI) onSearchChanged(text string) {
	if ui.suppressSearch {
		return
	}
	ui.session.SetSearchTerm(text)
}

// onSearchSubmitted handles the search button and Enter
func (ui *RootUI) onSearchSubmitted() {
	ui.session.SubmitSearch()
}

// onAddressSubmitted navigates to the typed route
func (ui *RootUI) onAddressSubmitted(path string) {
	if ui.session.Navigate(strings.TrimSpace(path)) {
		return
	}
	ui.showToast(ui.localization.GetText(KeyUnknownRoute))
	ui.addressEntry.SetText(ui.current.Route)
}

func (ui *RootUI) onCellHover(key string, entered bool) {
	if entered {
		ui.session.HoverEnter(key)
	} else {
		ui.session.HoverLeave(key)
	}
}

// onCellTapped opens the logo in the platform browser
func (ui *RootUI) onCellTapped(token model.Token) {
	link := strings.TrimSpace(token.LogoURI)
	if link == "" {
		return
	}
	u, err := url.Parse(link)
	if err == nil {
		err = ui.app.OpenURL(u)
	}
	if err != nil {
		log.Error("failed to open logo", "url", link, "err", err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningLink) + ": " + err.Error())
	}
}

// onCellSecondary copies the logo link to the clipboard
func (ui *RootUI) onCellSecondary(token model.Token) {
	link := strings.TrimSpace(token.LogoURI)
	if link == "" {
		return
	}
	ui.app.Clipboard().SetContent(link)
	ui.showToast(ui.localization.GetText(KeyLinkCopied))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies the settings that take effect without a restart
func (ui *RootUI) onSettingsSaved(change SettingsChange) {
	ui.grid.SetThreshold(ui.settings.GetVirtualizeThreshold())
	ui.logos.SetMaxParallel(ui.settings.GetMaxParallelLogos())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	log.Info("settings saved", "restart", change.NeedsRestart)
}

// showToast shows a short message in the top-right corner
func (ui *RootUI) showToast(message string) {
	if ui.toast != nil {
		ui.toast.Hide()
	}

	ui.toastLabel = widget.NewLabel(message)
	ui.toastLabel.Truncation = fyne.TextTruncateEllipsis

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		popup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	popup = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, ui.toastLabel), ui.window.Canvas())
	ui.toast = popup

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(toastSize)
	popup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	popup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

// Grid returns the token grid
func (ui *RootUI) Grid() *TokenGrid {
	return ui.grid
}
