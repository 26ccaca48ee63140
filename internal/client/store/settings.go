package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/client/models"
	"github.com/hsaleh/talentdesk/internal/logging"
)

// SettingsStore manages the AppSettings singleton. Reads return the defaults
// merged under whatever partial record was persisted; writes apply a partial
// merge and persist the merged record whole. Last write wins.
type SettingsStore struct {
	mu  sync.Mutex
	kv  kv.Store
	log logging.Logger
}

// Get never fails: a storage or decode error is logged and the defaults are
// returned.
func (s *SettingsStore) Get(ctx context.Context) models.AppSettings {
	settings := models.DefaultSettings()

	raw, ok, err := s.kv.Get(ctx, kv.KeySettings)
	if err != nil {
		s.log.Error(ctx, "failed to read settings, using defaults", "error", err)
		return settings
	}
	if !ok {
		return settings
	}
	// Unmarshalling over the defaults keeps default values for keys the
	// persisted partial never mentions.
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Error(ctx, "failed to decode settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Update merges the patch into the current settings and persists the result.
func (s *SettingsStore) Update(ctx context.Context, p models.SettingsPatch) (models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.Get(ctx)
	applySettingsPatch(&settings, p)

	raw, err := json.Marshal(settings)
	if err != nil {
		return settings, err
	}
	if err := s.kv.Set(ctx, kv.KeySettings, string(raw)); err != nil {
		return settings, fmt.Errorf("failed to persist settings: %w", err)
	}
	return settings, nil
}

func applySettingsPatch(s *models.AppSettings, p models.SettingsPatch) {
	if p.MonthlyReminderEnabled != nil {
		s.MonthlyReminderEnabled = *p.MonthlyReminderEnabled
	}
	if p.ReminderDayOfMonth != nil {
		s.ReminderDayOfMonth = *p.ReminderDayOfMonth
	}
	if p.DefaultProfitMargin != nil {
		s.DefaultProfitMargin = *p.DefaultProfitMargin
	}
	if p.DefaultCurrency != nil {
		s.DefaultCurrency = *p.DefaultCurrency
	}
	if p.ViewMode != nil {
		s.ViewMode = *p.ViewMode
	}
	if p.SortBy != nil {
		s.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.ThemeColor != nil {
		s.ThemeColor = *p.ThemeColor
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.WhatsappMessage != nil {
		s.WhatsappMessage = *p.WhatsappMessage
	}
	if p.MessageTemplates != nil {
		s.MessageTemplates = *p.MessageTemplates
	}
}
