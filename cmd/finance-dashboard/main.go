package main

import (
	"fmt"
	"log"
	_ "time/tzdata" // exchange zones on hosts without a tz database

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/finance-dashboard/internal/config"
	"github.com/ytget/finance-dashboard/internal/httpx"
	"github.com/ytget/finance-dashboard/internal/market"
	"github.com/ytget/finance-dashboard/internal/market/financego"
	"github.com/ytget/finance-dashboard/internal/market/yahoo"
	"github.com/ytget/finance-dashboard/internal/quote"
	"github.com/ytget/finance-dashboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.finance-dashboard"
	AppName = "Finance Dashboard"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		log.Fatalf("failed to create market data provider: %v", err)
	}
	log.Printf("Using market data provider %s", provider.Name())

	fetcher := quote.NewFetcher(provider,
		quote.WithMinDays(cfg.Fetch.MinDays),
		quote.WithWidenSpan(cfg.Fetch.WidenSpan),
	)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())
	if logo, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(logo)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fetcher)

	// Show and run
	myWindow.ShowAndRun()
}

// newProvider builds the configured market data provider
func newProvider(cfg *config.Config) (market.Provider, error) {
	switch cfg.Provider.Name {
	case config.ProviderFinanceGo:
		return financego.New(), nil
	default:
		httpClient, err := httpx.NewClient(httpx.Options{
			Timeout:   cfg.Provider.Timeout,
			Proxy:     cfg.Provider.Proxy,
			UserAgent: cfg.Provider.UserAgent,
		})
		if err != nil {
			return nil, err
		}
		return yahoo.NewClient(
			yahoo.WithBaseURL(cfg.Provider.BaseURL),
			yahoo.WithHTTPClient(httpClient),
		), nil
	}
}
