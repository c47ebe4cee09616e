package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeyScripNotFound     = "scrip_not_found"
	KeyLastPrice         = "last_price"
	KeyPricesOf          = "prices_of"
	KeyDate              = "date"
	KeyPrice             = "price"
	KeyFetching          = "fetching"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Finance Dashboard",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySearch:            "Search",
		KeySearchPlaceholder: "Ticker, e.g. AAPL",
		KeyScripNotFound:     "Could not find the scrip.",
		KeyLastPrice:         "Last Price",
		KeyPricesOf:          "Prices of %s",
		KeyDate:              "Date",
		KeyPrice:             "Price",
		KeyFetching:          "Fetching %s...",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Финансовая панель",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySearch:            "Поиск",
		KeySearchPlaceholder: "Тикер, например AAPL",
		KeyScripNotFound:     "Не удалось найти бумагу.",
		KeyLastPrice:         "Последняя цена",
		KeyPricesOf:          "Цены %s",
		KeyDate:              "Дата",
		KeyPrice:             "Цена",
		KeyFetching:          "Загрузка %s...",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Painel Financeiro",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySearch:            "Pesquisar",
		KeySearchPlaceholder: "Ticker, ex. AAPL",
		KeyScripNotFound:     "Não foi possível encontrar o ativo.",
		KeyLastPrice:         "Último Preço",
		KeyPricesOf:          "Preços de %s",
		KeyDate:              "Data",
		KeyPrice:             "Preço",
		KeyFetching:          "Buscando %s...",
	}
}
