package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func (a *App) categoryCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.categoryList(ctx)
		return
	}
	switch args[0] {
	case "list":
		a.categoryList(ctx)
	case "add":
		a.categoryAdd(ctx)
	case "rm":
		a.categoryRemove(ctx, args[1:])
	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}

func (a *App) categoryList(ctx context.Context) {
	for _, c := range a.stores.Categories.List(ctx) {
		name := c.Name
		if c.NameAr != "" {
			name = fmt.Sprintf("%s / %s", c.Name, c.NameAr)
		}
		fmt.Printf("%s  %s\n", c.ID, name)
	}
}

func (a *App) categoryAdd(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil || name == "" {
		fmt.Println("Name is required.")
		return
	}
	nameAr, err := GetSimpleText(a.reader, "Arabic name (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	order := len(a.stores.Categories.List(ctx)) + 1
	created, err := a.stores.Categories.Create(ctx, models.Category{Name: name, NameAr: nameAr, Order: order})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created category %s (%s)\n", created.Name, created.ID)
	a.pushQuietly(ctx)
}

func (a *App) categoryRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: category rm <id>")
		return
	}
	deleted, err := a.stores.Categories.Delete(ctx, args[0])
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !deleted {
		fmt.Println("Category not found.")
		return
	}
	fmt.Println("Category removed. Talents keep their reference and show as Unknown.")
	a.pushQuietly(ctx)
}
