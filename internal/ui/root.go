package ui

import (
	"context"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/finance-dashboard/internal/config"
	"github.com/ytget/finance-dashboard/internal/model"
)

// QuoteFetcher looks up the recent price history and latest price for a ticker
type QuoteFetcher interface {
	Fetch(ctx context.Context, ticker string) (*model.Quote, error)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	fetcher      QuoteFetcher
	settings     *config.Settings
	localization *Localization

	// Top bar
	searchLabel *widget.Label
	searchEntry *widget.Entry
	spinner     *widget.ProgressBarInfinite
	statusLabel *widget.Label

	// Content area; body holds either a heading with a chart or an error label
	body *fyne.Container

	mu           sync.Mutex
	state        model.FetchState
	lastQuote    *model.Quote
	showingError bool

	// runAsync starts a lookup off the UI thread, runOnMain applies its result
	runAsync  func(func())
	runOnMain func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetcher QuoteFetcher) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		fetcher:      fetcher,
		settings:     settings,
		localization: localization,
		state:        model.FetchStateIdle,
		runAsync:     func(f func()) { go f() },
		runOnMain:    fyne.Do,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	log.Printf("RootUI initialized, language=%s", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.searchLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeySearch), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	// Create search entry; Enter submits the ticker
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnSubmitted = ui.onSearchSubmitted
	if last := ui.settings.GetLastTicker(); last != "" {
		ui.searchEntry.SetText(last)
	}

	// Busy indicator, hidden while idle
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Hide()

	entryBox := container.NewGridWrap(fyne.NewSize(SearchEntryMinWidth, ui.searchEntry.MinSize().Height), ui.searchEntry)
	searchRow := container.NewHBox(ui.searchLabel, entryBox)
	busyRow := container.NewHBox(ui.spinner, ui.statusLabel)

	topBar := container.NewStack(
		canvas.NewRectangle(TopBarColor),
		container.NewCenter(container.NewVBox(searchRow, busyRow)),
	)

	ui.body = container.NewStack()
	content := container.NewStack(canvas.NewRectangle(ContentColor), ui.body)

	ui.window.SetContent(container.New(newSplitLayout(TopBarFraction), topBar, content))
	ui.window.Canvas().Focus(ui.searchEntry)

	log.Printf("UI setup completed successfully")
}

// createMenu builds the File menu with the language submenu
func (ui *RootUI) createMenu() {
	languageItem := fyne.NewMenuItem(ui.localization.GetText(KeyLanguage), nil)

	languageOptions := ui.settings.GetLanguageOptions()
	current := ui.settings.GetLanguage()
	var langItems []*fyne.MenuItem
	for _, code := range []string{"system", "en", "ru", "pt"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(languageOptions[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if current == code {
			langItem.Checked = true
		}

		langItems = append(langItems, langItem)
	}
	languageItem.ChildMenu = fyne.NewMenu("", langItems...)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), languageItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchLabel.SetText(ui.localization.GetText(KeySearch))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))

	ui.mu.Lock()
	q, showingError := ui.lastQuote, ui.showingError
	ui.mu.Unlock()

	// Redraw whatever the content area shows with the new labels
	switch {
	case showingError:
		ui.showError()
	case q != nil:
		ui.showQuote(q)
	}
}

// State returns the current fetch state
func (ui *RootUI) State() model.FetchState {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.state
}

// onSearchSubmitted starts a lookup for the entered ticker unless one is already running
func (ui *RootUI) onSearchSubmitted(text string) {
	ticker := strings.TrimSpace(text)
	if ticker == "" {
		log.Printf("Empty search submitted, ignoring")
		return
	}

	ui.mu.Lock()
	if !ui.state.AcceptsSubmit() {
		ui.mu.Unlock()
		log.Printf("Lookup in progress, ignoring search for %q", ticker)
		return
	}
	ui.state = model.FetchStateFetching
	ui.mu.Unlock()

	log.Printf("Search submitted: %q", ticker)
	ui.setBusy(true, ticker)

	ui.runAsync(func() {
		q, err := ui.fetcher.Fetch(context.Background(), ticker)
		ui.runOnMain(func() {
			ui.finishLookup(q, err)
		})
	})
}

// finishLookup renders the lookup result and returns to Idle; must run on the UI thread
func (ui *RootUI) finishLookup(q *model.Quote, err error) {
	if err != nil || q == nil || !q.HasData() {
		if err != nil {
			log.Printf("Lookup failed: %v", err)
		}
		ui.showError()
	} else {
		ui.showQuote(q)
		ui.settings.SetLastTicker(q.Ticker)
	}

	ui.mu.Lock()
	ui.state = model.FetchStateIdle
	ui.mu.Unlock()

	ui.setBusy(false, "")
}

// setBusy toggles the busy indicator and the entry while a lookup runs
func (ui *RootUI) setBusy(busy bool, ticker string) {
	if busy {
		ui.searchEntry.Disable()
		ui.statusLabel.SetText(ui.localization.Textf(KeyFetching, ticker))
		ui.statusLabel.Show()
		ui.spinner.Show()
		ui.spinner.Start()
		return
	}

	ui.spinner.Stop()
	ui.spinner.Hide()
	ui.statusLabel.Hide()
	ui.searchEntry.Enable()
	ui.window.Canvas().Focus(ui.searchEntry)
}

// showQuote replaces the content area with the heading and the price chart
func (ui *RootUI) showQuote(q *model.Quote) {
	heading := widget.NewLabelWithStyle(
		q.Heading(ui.localization.GetText(KeyLastPrice)),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)

	chart := NewPriceChart(
		ui.localization.Textf(KeyPricesOf, q.Ticker),
		ui.localization.GetText(KeyDate),
		ui.localization.GetText(KeyPrice),
		q.Prices.Dates(),
		q.Prices.Closes(),
	)

	ui.replaceContent(container.NewBorder(heading, nil, nil, nil, chart))

	ui.mu.Lock()
	ui.lastQuote = q
	ui.showingError = false
	ui.mu.Unlock()

	log.Printf("Charted %s: %d points, last price %s", q.Ticker, len(q.Prices), q.Latest.StringFixed(2))
}

// showError replaces the content area with the not-found message
func (ui *RootUI) showError() {
	label := widget.NewLabelWithStyle(ui.localization.GetText(KeyScripNotFound), fyne.TextAlignCenter, fyne.TextStyle{})
	ui.replaceContent(label)

	ui.mu.Lock()
	ui.lastQuote = nil
	ui.showingError = true
	ui.mu.Unlock()
}

// replaceContent destroys the current content and forces a redraw
func (ui *RootUI) replaceContent(obj fyne.CanvasObject) {
	ui.body.RemoveAll()
	ui.body.Add(obj)
	ui.body.Refresh()
	ui.window.Canvas().Refresh(ui.window.Content())
}
