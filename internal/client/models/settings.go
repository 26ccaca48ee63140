package models

import "github.com/shopspring/decimal"

// ViewMode selects the talent list presentation.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// SortOrder direction for list views.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// MessageTemplate is a reusable outbound message with {name}-style
// substitution handled by the UI.
type MessageTemplate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AppSettings is the process-wide singleton preferences record. It is not a
// collection: reads return defaults merged under whatever partial was
// persisted, writes persist the merged record whole. Last write wins, no
// versioning.
type AppSettings struct {
	MonthlyReminderEnabled bool              `json:"monthlyReminderEnabled"`
	ReminderDayOfMonth     int               `json:"reminderDayOfMonth"`
	DefaultProfitMargin    decimal.Decimal   `json:"defaultProfitMargin"`
	DefaultCurrency        string            `json:"defaultCurrency"`
	ViewMode               ViewMode          `json:"viewMode"`
	SortBy                 string            `json:"sortBy"`
	SortOrder              SortOrder         `json:"sortOrder"`
	DarkMode               bool              `json:"darkMode"`
	ThemeColor             string            `json:"themeColor"`
	Language               string            `json:"language"`
	WhatsappMessage        string            `json:"whatsappMessage"`
	MessageTemplates       []MessageTemplate `json:"messageTemplates,omitempty"`
}

// SettingsPatch carries updatable AppSettings fields; nil means "leave as is".
type SettingsPatch struct {
	MonthlyReminderEnabled *bool              `json:"monthlyReminderEnabled,omitempty"`
	ReminderDayOfMonth     *int               `json:"reminderDayOfMonth,omitempty"`
	DefaultProfitMargin    *decimal.Decimal   `json:"defaultProfitMargin,omitempty"`
	DefaultCurrency        *string            `json:"defaultCurrency,omitempty"`
	ViewMode               *ViewMode          `json:"viewMode,omitempty"`
	SortBy                 *string            `json:"sortBy,omitempty"`
	SortOrder              *SortOrder         `json:"sortOrder,omitempty"`
	DarkMode               *bool              `json:"darkMode,omitempty"`
	ThemeColor             *string            `json:"themeColor,omitempty"`
	Language               *string            `json:"language,omitempty"`
	WhatsappMessage        *string            `json:"whatsappMessage,omitempty"`
	MessageTemplates       *[]MessageTemplate `json:"messageTemplates,omitempty"`
}

// DefaultSettings returns the baseline preferences used when nothing has been
// persisted yet, and as the underlay for partial persisted records.
func DefaultSettings() AppSettings {
	return AppSettings{
		MonthlyReminderEnabled: true,
		ReminderDayOfMonth:     1,
		DefaultProfitMargin:    decimal.NewFromInt(15),
		DefaultCurrency:        "KWD",
		ViewMode:               ViewGrid,
		SortBy:                 "name",
		SortOrder:              SortAsc,
		DarkMode:               false,
		ThemeColor:             "#6C5CE7",
		Language:               "ar",
		WhatsappMessage:        "مرحبا {name}، هل أنت متاح للمشروع القادم؟",
		MessageTemplates: []MessageTemplate{
			{ID: "tpl-availability", Title: "Availability", Body: "مرحبا {name}، هل أنت متاح بتاريخ {date}؟"},
			{ID: "tpl-booking", Title: "Booking confirmation", Body: "تم تأكيد حجزك لمشروع {project} بتاريخ {date}."},
		},
	}
}
