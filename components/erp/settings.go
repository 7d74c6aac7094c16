package erp

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// SettingsScope tags notifications raised by settings changes.
const SettingsScope = "settings"

// Settings holds the account preferences of one viewer.
type Settings struct {
	EmailNotifications bool   `json:"email_notifications" yaml:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications" yaml:"push_notifications"`
	MarketingEmails    bool   `json:"marketing_emails" yaml:"marketing_emails"`
	TwoFactorAuth      bool   `json:"two_factor_auth" yaml:"two_factor_auth"`
	Language           string `json:"language" yaml:"language"`
	Timezone           string `json:"timezone" yaml:"timezone"`
	Currency           string `json:"currency" yaml:"currency"`
}

// Supported setting values.
var (
	SettingsLanguages  = []string{"en", "es", "fr", "de"}
	SettingsTimezones  = []string{"utc", "est", "pst", "cet"}
	SettingsCurrencies = []string{"usd", "eur", "gbp", "jpy"}
)

// DefaultSettings returns the preferences of a viewer that never saved any.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  true,
		Language:           "en",
		Timezone:           "utc",
		Currency:           "usd",
	}
}

// SettingsStore persists settings per viewer.
type SettingsStore interface {
	Settings(ctx context.Context, viewer ViewerContext) (Settings, error)
	SaveSettings(ctx context.Context, viewer ViewerContext, settings Settings) error
}

// InMemorySettingsStore keeps settings in memory, keyed by viewer user id.
type InMemorySettingsStore struct {
	mu   sync.RWMutex
	data map[string]Settings
}

// NewInMemorySettingsStore creates an empty settings store.
func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{
		data: make(map[string]Settings),
	}
}

// Settings returns stored settings or defaults. Anonymous viewers get the
// defaults with their request locale when it is supported.
func (s *InMemorySettingsStore) Settings(_ context.Context, viewer ViewerContext) (Settings, error) {
	if viewer.UserID != "" {
		s.mu.RLock()
		settings, ok := s.data[viewer.UserID]
		s.mu.RUnlock()
		if ok {
			return settings, nil
		}
	}
	settings := DefaultSettings()
	if lang := localeLanguage(viewer.Locale); lang != "" {
		settings.Language = lang
	}
	return settings, nil
}

// SaveSettings persists settings for a viewer.
func (s *InMemorySettingsStore) SaveSettings(_ context.Context, viewer ViewerContext, settings Settings) error {
	if viewer.UserID == "" {
		return fmt.Errorf("%w: settings require a viewer user id", ErrInvalidRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[viewer.UserID] = settings
	return nil
}

// localeLanguage maps "fr-CA" style locales to a supported language code.
func localeLanguage(locale string) string {
	lang := strings.ToLower(locale)
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	for _, supported := range SettingsLanguages {
		if lang == supported {
			return lang
		}
	}
	return ""
}

// Settings returns the viewer's settings.
func (s *Service) Settings(ctx context.Context, viewer ViewerContext) (Settings, error) {
	return s.opts.Settings.Settings(ctx, viewer)
}

// SaveSettings validates and stores the viewer's settings. Empty choices fall
// back to the defaults.
func (s *Service) SaveSettings(ctx context.Context, viewer ViewerContext, settings Settings) (Settings, error) {
	defaults := DefaultSettings()
	settings.Language = strings.ToLower(strings.TrimSpace(settings.Language))
	settings.Timezone = strings.ToLower(strings.TrimSpace(settings.Timezone))
	settings.Currency = strings.ToLower(strings.TrimSpace(settings.Currency))
	if settings.Language == "" {
		settings.Language = defaults.Language
	}
	if settings.Timezone == "" {
		settings.Timezone = defaults.Timezone
	}
	if settings.Currency == "" {
		settings.Currency = defaults.Currency
	}
	if err := s.opts.Validator.Validate("erp.settings", settingsSchema, settings); err != nil {
		return Settings{}, err
	}
	if err := s.opts.Settings.SaveSettings(ctx, viewer, settings); err != nil {
		return Settings{}, err
	}
	s.recordTelemetry(ctx, "erp.settings.save", map[string]any{
		"user_id":  viewer.UserID,
		"language": settings.Language,
	})
	s.notify(ctx, newNotification(LevelSuccess, "Settings saved successfully!", "Your preferences have been updated.", SettingsScope, viewer.UserID))
	return settings, nil
}
