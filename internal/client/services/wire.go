package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/hsaleh/talentdesk/internal/client/models"
	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/wire"
)

var validate = validator.New()

func decimalString(d decimal.Decimal) string { return d.String() }

// TalentToWire maps a local talent to its wire shape. The numeric categoryId
// is the placeholder: the server re-resolves the category from categoryOdId.
func TalentToWire(t models.Talent) wire.Talent {
	return wire.Talent{
		OdID:            t.ID,
		Name:            t.Name,
		CategoryID:      wire.PlaceholderRefID,
		CategoryOdID:    t.CategoryID,
		Gender:          string(t.Gender),
		Photos:          t.Photos,
		ProfilePhoto:    t.ProfilePhoto,
		PhoneNumbers:    t.PhoneNumbers,
		SocialMedia:     t.SocialMedia,
		PricePerProject: decimalString(t.PricePerProject),
		Currency:        t.Currency,
		Notes:           t.Notes,
		CustomFields:    t.CustomFields,
		Rating:          t.Rating,
		Tags:            t.Tags,
		IsFavorite:      t.IsFavorite,
		IsArchived:      t.IsArchived,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		LastPhotoUpdate: t.LastPhotoUpdate,
	}
}

// ProjectToWire maps a local project to its wire shape. Status and
// pdfTemplate are closed enums, validated before anything is sent: an
// invalid value is a programmer error and fails fast here.
func ProjectToWire(p models.Project) (wire.Project, error) {
	lines := make([]wire.ProjectTalent, 0, len(p.Talents))
	for _, line := range p.Talents {
		w := wire.ProjectTalent{
			TalentOdID:  line.TalentID,
			BookingOdID: line.BookingID,
			Notes:       line.Notes,
		}
		if line.CustomPrice != nil {
			s := decimalString(*line.CustomPrice)
			w.CustomPrice = &s
		}
		lines = append(lines, w)
	}

	var payments []wire.Payment
	for _, pay := range p.Payments {
		payments = append(payments, wire.Payment{
			Amount: decimalString(pay.Amount),
			Date:   pay.Date,
			Note:   pay.Note,
		})
	}

	out := wire.Project{
		OdID:                p.ID,
		Name:                p.Name,
		Description:         p.Description,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		Status:              string(p.Status),
		Talents:             lines,
		ProfitMarginPercent: decimalString(p.ProfitMarginPercent),
		Currency:            p.Currency,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		PdfTemplate:         string(p.PdfTemplate),
		Phase:               p.Phase,
		ClientName:          p.ClientName,
		ClientPhone:         p.ClientPhone,
		Payments:            payments,
		TotalPaid:           decimalString(p.TotalPaid),
	}
	if err := validate.Struct(out); err != nil {
		return wire.Project{}, fmt.Errorf("%w: project %s: %v", common.ErrValidation, p.ID, err)
	}
	return out, nil
}

func CategoryToWire(c models.Category) wire.Category {
	return wire.Category{OdID: c.ID, Name: c.Name, NameAr: c.NameAr, Order: c.Order}
}

// BookingToWire maps a local booking to its wire shape. The numeric talentId
// carries the same placeholder-resolution contract as the talent's category.
func BookingToWire(b models.TalentBooking) wire.Booking {
	return wire.Booking{
		OdID:        b.ID,
		TalentID:    wire.PlaceholderRefID,
		TalentOdID:  b.TalentID,
		Title:       b.Title,
		Location:    b.Location,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		AllDay:      b.AllDay,
		Notes:       b.Notes,
		ProjectOdID: b.ProjectID,
		CreatedAt:   b.CreatedAt,
	}
}

// SettingsToWire maps settings; every numeric travels as a decimal string.
func SettingsToWire(s models.AppSettings) wire.Settings {
	var templates []wire.MessageTemplate
	for _, t := range s.MessageTemplates {
		templates = append(templates, wire.MessageTemplate{ID: t.ID, Title: t.Title, Body: t.Body})
	}
	return wire.Settings{
		MonthlyReminderEnabled: s.MonthlyReminderEnabled,
		ReminderDayOfMonth:     fmt.Sprintf("%d", s.ReminderDayOfMonth),
		DefaultProfitMargin:    decimalString(s.DefaultProfitMargin),
		DefaultCurrency:        s.DefaultCurrency,
		ViewMode:               string(s.ViewMode),
		SortBy:                 s.SortBy,
		SortOrder:              string(s.SortOrder),
		DarkMode:               s.DarkMode,
		ThemeColor:             s.ThemeColor,
		Language:               s.Language,
		WhatsappMessage:        s.WhatsappMessage,
		MessageTemplates:       templates,
	}
}
