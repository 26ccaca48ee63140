package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusDraft       ProjectStatus = "draft"
	StatusActive      ProjectStatus = "active"
	StatusCompleted   ProjectStatus = "completed"
	StatusNegotiating ProjectStatus = "negotiating"
	StatusCancelled   ProjectStatus = "cancelled"
	StatusPostponed   ProjectStatus = "postponed"
)

// PdfTemplate selects the layout used when a project is exported.
type PdfTemplate string

const (
	TemplateInvoice   PdfTemplate = "invoice"
	TemplateQuotation PdfTemplate = "quotation"
)

// ProjectTalent is one line item of a project: a talent reference with an
// optional price override. TalentID may reference a talent that no longer
// exists; readers filter such lines defensively instead of failing.
type ProjectTalent struct {
	TalentID    string           `json:"talentId"`
	CustomPrice *decimal.Decimal `json:"customPrice,omitempty"`
	BookingID   string           `json:"bookingId,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// Payment records a partial client payment against a project.
type Payment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
}

// Project bundles talents with pricing. ID and CreatedAt are immutable after
// creation; every update refreshes UpdatedAt.
type Project struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	StartDate           *time.Time      `json:"startDate,omitempty"`
	EndDate             *time.Time      `json:"endDate,omitempty"`
	Status              ProjectStatus   `json:"status"`
	Talents             []ProjectTalent `json:"talents"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	Currency            string          `json:"currency"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	PdfTemplate         PdfTemplate     `json:"pdfTemplate,omitempty"`
	Phase               string          `json:"phase,omitempty"`
	ClientName          string          `json:"clientName,omitempty"`
	ClientPhone         string          `json:"clientPhone,omitempty"`
	Payments            []Payment       `json:"payments,omitempty"`
	TotalPaid           decimal.Decimal `json:"totalPaid,omitempty"`
}

// ProjectPatch carries updatable Project fields; nil means "leave as is".
type ProjectPatch struct {
	Name                *string          `json:"name,omitempty"`
	Description         *string          `json:"description,omitempty"`
	StartDate           *time.Time       `json:"startDate,omitempty"`
	EndDate             *time.Time       `json:"endDate,omitempty"`
	Status              *ProjectStatus   `json:"status,omitempty"`
	Talents             *[]ProjectTalent `json:"talents,omitempty"`
	ProfitMarginPercent *decimal.Decimal `json:"profitMarginPercent,omitempty"`
	Currency            *string          `json:"currency,omitempty"`
	PdfTemplate         *PdfTemplate     `json:"pdfTemplate,omitempty"`
	Phase               *string          `json:"phase,omitempty"`
	ClientName          *string          `json:"clientName,omitempty"`
	ClientPhone         *string          `json:"clientPhone,omitempty"`
	Payments            *[]Payment       `json:"payments,omitempty"`
	TotalPaid           *decimal.Decimal `json:"totalPaid,omitempty"`
}
