// Package wire defines the JSON contract between the client push path and
// the sync endpoint. Both halves import it; neither half's model types leak
// into it.
//
// The wire shape is not the local shape: numerics travel as decimal strings
// to avoid cross-language float loss, the local record id travels as odId,
// and numeric category/talent references are sent as a placeholder the
// server resolves during upsert (see PlaceholderRefID).
package wire

import "time"

// PlaceholderRefID is sent where the wire format expects a server-side
// numeric reference (category id on talents, talent id on bookings). The
// client has no view of the server's numeric keys; the server resolves the
// real reference from the accompanying odId fields during upsert. This
// two-phase resolve-on-server contract is deliberate, not a gap to fix
// client-side.
const PlaceholderRefID int64 = 0

// Batch is the full push payload. Absent sections are skipped by the
// server. Categories are the exception: they are replaced wholesale, so an
// empty list is a meaningful instruction (clear the remote set) and must
// travel even when zero-length. The field therefore carries no omitempty.
type Batch struct {
	Talents    []Talent   `json:"talents,omitempty"`
	Projects   []Project  `json:"projects,omitempty"`
	Categories []Category `json:"categories"`
	Bookings   []Booking  `json:"bookings,omitempty"`
	Settings   *Settings  `json:"settings,omitempty"`
}

type Talent struct {
	OdID            string            `json:"odId"`
	Name            string            `json:"name"`
	CategoryID      int64             `json:"categoryId"`
	CategoryOdID    string            `json:"categoryOdId,omitempty"`
	Gender          string            `json:"gender"`
	Photos          []string          `json:"photos"`
	ProfilePhoto    string            `json:"profilePhoto"`
	PhoneNumbers    []string          `json:"phoneNumbers"`
	SocialMedia     map[string]string `json:"socialMedia,omitempty"`
	PricePerProject string            `json:"pricePerProject"`
	Currency        string            `json:"currency"`
	Notes           string            `json:"notes,omitempty"`
	CustomFields    map[string]string `json:"customFields,omitempty"`
	Rating          *int              `json:"rating,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	IsFavorite      bool              `json:"isFavorite"`
	IsArchived      bool              `json:"isArchived"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
	LastPhotoUpdate time.Time         `json:"lastPhotoUpdate"`
}

type ProjectTalent struct {
	TalentOdID  string  `json:"talentOdId"`
	CustomPrice *string `json:"customPrice,omitempty"`
	BookingOdID string  `json:"bookingOdId,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Payment is one partial client payment; the amount travels as a decimal
// string like every other wire numeric.
type Payment struct {
	Amount string    `json:"amount"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

type Project struct {
	OdID                string          `json:"odId"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	StartDate           *time.Time      `json:"startDate"`
	EndDate             *time.Time      `json:"endDate"`
	Status              string          `json:"status" validate:"oneof=draft active completed negotiating cancelled postponed"`
	Talents             []ProjectTalent `json:"talents"`
	ProfitMarginPercent string          `json:"profitMarginPercent"`
	Currency            string          `json:"currency"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	PdfTemplate         string          `json:"pdfTemplate,omitempty" validate:"omitempty,oneof=invoice quotation"`
	Phase               string          `json:"phase,omitempty"`
	ClientName          string          `json:"clientName,omitempty"`
	ClientPhone         string          `json:"clientPhone,omitempty"`
	Payments            []Payment       `json:"payments,omitempty"`
	TotalPaid           string          `json:"totalPaid"`
}

type Category struct {
	OdID   string `json:"odId"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr,omitempty"`
	Order  int    `json:"order"`
}

type Booking struct {
	OdID        string    `json:"odId"`
	TalentID    int64     `json:"talentId"`
	TalentOdID  string    `json:"talentOdId"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	AllDay      bool      `json:"allDay"`
	Notes       string    `json:"notes,omitempty"`
	ProjectOdID string    `json:"projectOdId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageTemplate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Settings struct {
	MonthlyReminderEnabled bool              `json:"monthlyReminderEnabled"`
	ReminderDayOfMonth     string            `json:"reminderDayOfMonth"`
	DefaultProfitMargin    string            `json:"defaultProfitMargin"`
	DefaultCurrency        string            `json:"defaultCurrency"`
	ViewMode               string            `json:"viewMode"`
	SortBy                 string            `json:"sortBy"`
	SortOrder              string            `json:"sortOrder"`
	DarkMode               bool              `json:"darkMode"`
	ThemeColor             string            `json:"themeColor"`
	Language               string            `json:"language"`
	WhatsappMessage        string            `json:"whatsappMessage"`
	MessageTemplates       []MessageTemplate `json:"messageTemplates,omitempty"`
}
