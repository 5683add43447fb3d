package ui

import (
	"fmt"

	"github.com/ytget/snapshot/internal/state"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySearch              = "search"
	KeySearchPlaceholder   = "search_placeholder"
	KeyAddress             = "address"
	KeyAddressPlaceholder  = "address_placeholder"
	KeyCategoryTokens      = "category_tokens"
	KeyNoResults           = "no_results"
	KeyFailedTokens        = "failed_tokens"
	KeyFailedCategories    = "failed_categories"
	KeyUnknownRoute        = "unknown_route"
	KeyOpenImage           = "open_image"
	KeySmallestUnit        = "smallest_unit"
	KeyLinkCopied          = "link_copied"
	KeyReload              = "reload"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyView                = "view"
	KeyLanguage            = "language"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyRestartNotice       = "restart_notice"
	KeySourceSettings      = "source_settings"
	KeyDisplaySettings     = "display_settings"
	KeyTokensBaseURL       = "tokens_base_url"
	KeyCategoriesURL       = "categories_url"
	KeyDiscoverCategories  = "discover_categories"
	KeySearchDelay         = "search_delay"
	KeyHTTPTimeout         = "http_timeout"
	KeyVirtualizeThreshold = "virtualize_threshold"
	KeyMaxParallelLogos    = "max_parallel_logos"
	KeyErrorOpeningLink    = "error_opening_link"
)

// messageKeys maps state messages to text keys
var messageKeys = map[string]string{
	state.MessageNoResults:        KeyNoResults,
	state.MessageFailedTokens:     KeyFailedTokens,
	state.MessageFailedCategories: KeyFailedCategories,
}

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

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// MessageText translates a status message produced by the session.
// Unknown messages are returned unchanged.
func (l *Localization) MessageText(message string) string {
	if key, ok := messageKeys[message]; ok {
		return l.GetText(key)
	}
	return message
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "SnapShot",
		KeySearch:              "Search",
		KeySearchPlaceholder:   "Search...",
		KeyAddress:             "Route",
		KeyAddressPlaceholder:  "/Ethereum/usdc",
		KeyCategoryTokens:      "%s Tokens",
		KeyNoResults:           "No Tokens Found",
		KeyFailedTokens:        "Failed to load tokens",
		KeyFailedCategories:    "Failed to load categories",
		KeyUnknownRoute:        "Unknown category in route",
		KeyOpenImage:           "Open Image",
		KeySmallestUnit:        "Unit",
		KeyLinkCopied:          "Image link copied",
		KeyReload:              "Reload",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyView:                "View",
		KeyLanguage:            "Language",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartNotice:       "Source settings apply after restart.",
		KeySourceSettings:      "Token Source",
		KeyDisplaySettings:     "Display",
		KeyTokensBaseURL:       "Token Lists URL",
		KeyCategoriesURL:       "Categories Listing URL",
		KeyDiscoverCategories:  "Discover categories",
		KeySearchDelay:         "Search Delay (ms)",
		KeyHTTPTimeout:         "Request Timeout (s)",
		KeyVirtualizeThreshold: "Windowing Threshold",
		KeyMaxParallelLogos:    "Max Parallel Logo Downloads",
		KeyErrorOpeningLink:    "Error opening link",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "SnapShot",
		KeySearch:              "Найти",
		KeySearchPlaceholder:   "Поиск...",
		KeyAddress:             "Путь",
		KeyAddressPlaceholder:  "/Ethereum/usdc",
		KeyCategoryTokens:      "Токены %s",
		KeyNoResults:           "Токены не найдены",
		KeyFailedTokens:        "Не удалось загрузить токены",
		KeyFailedCategories:    "Не удалось загрузить категории",
		KeyUnknownRoute:        "Неизвестная категория в пути",
		KeyOpenImage:           "Открыть изображение",
		KeySmallestUnit:        "Единица",
		KeyLinkCopied:          "Ссылка на изображение скопирована",
		KeyReload:              "Обновить",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyView:                "Вид",
		KeyLanguage:            "Язык",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartNotice:       "Настройки источника применятся после перезапуска.",
		KeySourceSettings:      "Источник токенов",
		KeyDisplaySettings:     "Отображение",
		KeyTokensBaseURL:       "URL списков токенов",
		KeyCategoriesURL:       "URL списка категорий",
		KeyDiscoverCategories:  "Загружать категории",
		KeySearchDelay:         "Задержка поиска (мс)",
		KeyHTTPTimeout:         "Таймаут запроса (с)",
		KeyVirtualizeThreshold: "Порог виртуализации",
		KeyMaxParallelLogos:    "Макс. параллельных загрузок логотипов",
		KeyErrorOpeningLink:    "Ошибка открытия ссылки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "SnapShot",
		KeySearch:              "Buscar",
		KeySearchPlaceholder:   "Buscar...",
		KeyAddress:             "Rota",
		KeyAddressPlaceholder:  "/Ethereum/usdc",
		KeyCategoryTokens:      "Tokens %s",
		KeyNoResults:           "Nenhum token encontrado",
		KeyFailedTokens:        "Falha ao carregar tokens",
		KeyFailedCategories:    "Falha ao carregar categorias",
		KeyUnknownRoute:        "Categoria desconhecida na rota",
		KeyOpenImage:           "Abrir imagem",
		KeySmallestUnit:        "Unidade",
		KeyLinkCopied:          "Link da imagem copiado",
		KeyReload:              "Recarregar",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyView:                "Exibir",
		KeyLanguage:            "Idioma",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartNotice:       "As configurações da fonte valem após reiniciar.",
		KeySourceSettings:      "Fonte de tokens",
		KeyDisplaySettings:     "Exibição",
		KeyTokensBaseURL:       "URL das listas de tokens",
		KeyCategoriesURL:       "URL da lista de categorias",
		KeyDiscoverCategories:  "Descobrir categorias",
		KeySearchDelay:         "Atraso da busca (ms)",
		KeyHTTPTimeout:         "Tempo limite (s)",
		KeyVirtualizeThreshold: "Limite de virtualização",
		KeyMaxParallelLogos:    "Max downloads de logos paralelos",
		KeyErrorOpeningLink:    "Erro ao abrir link",
	}
}
