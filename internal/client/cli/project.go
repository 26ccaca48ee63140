package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hsaleh/talentdesk/internal/client/costs"
	"github.com/hsaleh/talentdesk/internal/client/models"
)

func (a *App) projectCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: project add|list|costs|rm")
		return
	}
	switch args[0] {
	case "add":
		a.projectAdd(ctx)
	case "list":
		a.projectList(ctx)
	case "costs":
		a.projectCosts(ctx, args[1:])
	case "rm":
		a.projectRemove(ctx, args[1:])
	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}

func (a *App) projectAdd(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Project name", os.Stdout)
	if err != nil || name == "" {
		fmt.Println("Name is required.")
		return
	}

	settings := a.stores.Settings.Get(ctx)
	margin, err := GetDecimal(a.reader,
		fmt.Sprintf("Profit margin %% (empty for %s)", settings.DefaultProfitMargin.String()),
		settings.DefaultProfitMargin, os.Stdout)
	if err != nil {
		fmt.Println("Invalid margin:", err)
		return
	}

	p := models.Project{
		Name:                name,
		ProfitMarginPercent: margin,
		Currency:            settings.DefaultCurrency,
	}

	for {
		id, err := GetSimpleText(a.reader, "Add talent id (empty to finish)", os.Stdout)
		if err != nil || id == "" {
			break
		}
		if a.stores.Talents.GetByID(ctx, id) == nil {
			fmt.Println("No such talent, skipped.")
			continue
		}
		custom, err := GetOptionalDecimal(a.reader, "Custom price (empty to use talent price)", os.Stdout)
		if err != nil {
			fmt.Println("Invalid price, skipped.")
			continue
		}
		p.Talents = append(p.Talents, models.ProjectTalent{TalentID: id, CustomPrice: custom})
	}

	created, err := a.stores.Projects.Create(ctx, p)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created project %s (%s), status %s\n", created.Name, created.ID, created.Status)
	a.pushQuietly(ctx)
}

func (a *App) projectList(ctx context.Context) {
	projects := a.stores.Projects.List(ctx)
	if len(projects) == 0 {
		fmt.Println("No projects yet.")
		return
	}
	for _, p := range projects {
		fmt.Printf("%s  %-20s %-12s %d talents\n", p.ID, p.Name, p.Status, len(p.Talents))
	}
}

func (a *App) projectCosts(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: project costs <id>")
		return
	}
	p := a.stores.Projects.GetByID(ctx, args[0])
	if p == nil {
		fmt.Println("Project not found.")
		return
	}

	b := costs.CalculateProjectCosts(a.stores.Talents.List(ctx), p.Talents, p.ProfitMarginPercent)
	fmt.Printf("Subtotal: %s %s\n", b.Subtotal.String(), p.Currency)
	fmt.Printf("Profit:   %s %s (%s%%)\n", b.Profit.String(), p.Currency, p.ProfitMarginPercent.String())
	fmt.Printf("Total:    %s %s\n", b.Total.String(), p.Currency)
}

func (a *App) projectRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: project rm <id>")
		return
	}
	deleted, err := a.stores.Projects.Delete(ctx, args[0])
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !deleted {
		fmt.Println("Project not found.")
		return
	}
	fmt.Println("Project removed.")
	a.pushQuietly(ctx)
}
