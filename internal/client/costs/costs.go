// Package costs computes derived financial figures for projects and
// time-based talent flags. Everything here is pure: no I/O, no clocks other
// than the ones passed in.
package costs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

// PhotoStaleAfterDays is the age at which a talent photo is due for renewal.
const PhotoStaleAfterDays = 30

// Breakdown is the cost summary for a project.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Profit   decimal.Decimal `json:"profit"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateProjectCosts resolves each project talent line against the talent
// list and sums the effective prices.
//
// A line whose talent no longer exists contributes zero; that is a tolerated
// dangling reference, not an error. CustomPrice overrides the talent's
// per-project price. profit = subtotal * margin / 100, total = subtotal +
// profit, exactly; a zero margin yields zero profit and a negative margin a
// discount, with no special cases.
func CalculateProjectCosts(talents []models.Talent, lines []models.ProjectTalent, profitMarginPercent decimal.Decimal) Breakdown {
	byID := make(map[string]*models.Talent, len(talents))
	for i := range talents {
		byID[talents[i].ID] = &talents[i]
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		t, ok := byID[line.TalentID]
		if !ok {
			continue
		}
		if line.CustomPrice != nil {
			subtotal = subtotal.Add(*line.CustomPrice)
		} else {
			subtotal = subtotal.Add(t.PricePerProject)
		}
	}

	// Shift(-2) divides by 100 without the rounding Div would apply.
	profit := subtotal.Mul(profitMarginPercent).Shift(-2)
	return Breakdown{
		Subtotal: subtotal,
		Profit:   profit,
		Total:    subtotal.Add(profit),
	}
}

// NeedsPhotoUpdate reports whether the talent's photos are stale: true once
// at least 30 whole days have passed since LastPhotoUpdate as of now.
func NeedsPhotoUpdate(t models.Talent, now time.Time) bool {
	days := int(now.Sub(t.LastPhotoUpdate).Hours() / 24)
	return days >= PhotoStaleAfterDays
}
