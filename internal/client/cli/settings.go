package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func (a *App) settingsCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.settingsShow(ctx)
		return
	}
	switch args[0] {
	case "margin":
		a.settingsSetMargin(ctx)
	case "currency":
		a.settingsSetCurrency(ctx)
	default:
		fmt.Println("Usage: settings [margin|currency]")
	}
}

func (a *App) settingsShow(ctx context.Context) {
	s := a.stores.Settings.Get(ctx)
	fmt.Println("Default profit margin:", s.DefaultProfitMargin.String()+"%")
	fmt.Println("Default currency:     ", s.DefaultCurrency)
	fmt.Println("Language:             ", s.Language)
	fmt.Println("View mode:            ", s.ViewMode)
	fmt.Printf("Monthly reminder:      enabled=%v day=%d\n", s.MonthlyReminderEnabled, s.ReminderDayOfMonth)
	for _, t := range s.MessageTemplates {
		fmt.Printf("Template %s: %s\n", t.ID, t.Title)
	}
}

func (a *App) settingsSetMargin(ctx context.Context) {
	current := a.stores.Settings.Get(ctx).DefaultProfitMargin
	margin, err := GetDecimal(a.reader, "New default profit margin %", current, os.Stdout)
	if err != nil {
		fmt.Println("Invalid margin:", err)
		return
	}
	if _, err := a.stores.Settings.Update(ctx, models.SettingsPatch{DefaultProfitMargin: &margin}); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Saved.")
	a.pushQuietly(ctx)
}

func (a *App) settingsSetCurrency(ctx context.Context) {
	currency, err := GetSimpleText(a.reader, "New default currency code", os.Stdout)
	if err != nil || currency == "" {
		fmt.Println("Currency is required.")
		return
	}
	if _, err := a.stores.Settings.Update(ctx, models.SettingsPatch{DefaultCurrency: &currency}); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Saved.")
	a.pushQuietly(ctx)
}
