package costs

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func talent(id, price string) models.Talent {
	return models.Talent{ID: id, PricePerProject: dec(price)}
}

func TestCalculateProjectCosts(t *testing.T) {
	talents := []models.Talent{
		talent("t1", "500"),
		talent("t2", "120.250"),
	}

	tests := []struct {
		name     string
		lines    []models.ProjectTalent
		margin   decimal.Decimal
		subtotal string
		profit   string
		total    string
	}{
		{
			name:     "single talent with default price",
			lines:    []models.ProjectTalent{{TalentID: "t1"}},
			margin:   dec("15"),
			subtotal: "500",
			profit:   "75",
			total:    "575",
		},
		{
			name: "custom price overrides talent price",
			lines: []models.ProjectTalent{
				{TalentID: "t1", CustomPrice: ptr(dec("450"))},
				{TalentID: "t2"},
			},
			margin:   dec("10"),
			subtotal: "570.250",
			profit:   "57.0250",
			total:    "627.2750",
		},
		{
			name:     "dangling talent reference contributes zero",
			lines:    []models.ProjectTalent{{TalentID: "t1"}, {TalentID: "gone"}},
			margin:   dec("15"),
			subtotal: "500",
			profit:   "75",
			total:    "575",
		},
		{
			name:     "dangling reference keeps its custom price out too",
			lines:    []models.ProjectTalent{{TalentID: "gone", CustomPrice: ptr(dec("999"))}},
			margin:   dec("15"),
			subtotal: "0",
			profit:   "0",
			total:    "0",
		},
		{
			name:     "zero margin yields zero profit",
			lines:    []models.ProjectTalent{{TalentID: "t1"}},
			margin:   decimal.Zero,
			subtotal: "500",
			profit:   "0",
			total:    "500",
		},
		{
			name:     "negative margin is a discount",
			lines:    []models.ProjectTalent{{TalentID: "t1"}},
			margin:   dec("-10"),
			subtotal: "500",
			profit:   "-50",
			total:    "450",
		},
		{
			name:     "empty project",
			lines:    nil,
			margin:   dec("15"),
			subtotal: "0",
			profit:   "0",
			total:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateProjectCosts(talents, tt.lines, tt.margin)
			assert.True(t, b.Subtotal.Equal(dec(tt.subtotal)), "subtotal %s", b.Subtotal)
			assert.True(t, b.Profit.Equal(dec(tt.profit)), "profit %s", b.Profit)
			assert.True(t, b.Total.Equal(dec(tt.total)), "total %s", b.Total)
		})
	}
}

func TestCalculateProjectCosts_Deterministic(t *testing.T) {
	talents := []models.Talent{talent("t1", "333.333"), talent("t2", "0.001")}
	lines := []models.ProjectTalent{{TalentID: "t1"}, {TalentID: "t2"}}

	first := CalculateProjectCosts(talents, lines, dec("17.5"))
	for i := 0; i < 100; i++ {
		again := CalculateProjectCosts(talents, lines, dec("17.5"))
		assert.True(t, first.Total.Equal(again.Total))
	}
}

func TestNeedsPhotoUpdate(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want bool
	}{
		{"fresh photo", now.AddDate(0, 0, -1), false},
		{"29 whole days", now.AddDate(0, 0, -29), false},
		{"just under 30 days", now.AddDate(0, 0, -30).Add(time.Hour), false},
		{"exactly 30 days", now.AddDate(0, 0, -30), true},
		{"long stale", now.AddDate(0, -6, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talent := models.Talent{LastPhotoUpdate: tt.last}
			assert.Equal(t, tt.want, NeedsPhotoUpdate(talent, now))
		})
	}
}

func ptr[T any](v T) *T { return &v }
