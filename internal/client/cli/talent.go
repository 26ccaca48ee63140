package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hsaleh/talentdesk/internal/client/costs"
	"github.com/hsaleh/talentdesk/internal/client/models"
)

func (a *App) talentCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: talent add|list|show|photo|rm")
		return
	}
	switch args[0] {
	case "add":
		a.talentAdd(ctx)
	case "list":
		a.talentList(ctx)
	case "show":
		a.talentShow(ctx, args[1:])
	case "photo":
		a.talentPhoto(ctx, args[1:])
	case "rm":
		a.talentRemove(ctx, args[1:])
	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}

func (a *App) talentAdd(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil || name == "" {
		fmt.Println("Name is required.")
		return
	}

	a.categoryList(ctx)
	categoryID, err := GetSimpleText(a.reader, "Category id (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	settings := a.stores.Settings.Get(ctx)
	price, err := GetDecimal(a.reader, "Price per project (empty for 0)", decimal.Zero, os.Stdout)
	if err != nil {
		fmt.Println("Invalid price:", err)
		return
	}
	if price.IsNegative() {
		fmt.Println("Price cannot be negative.")
		return
	}

	phone, err := GetSimpleText(a.reader, "Phone number (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	t := models.Talent{
		Name:            name,
		CategoryID:      categoryID,
		PricePerProject: price,
		Currency:        settings.DefaultCurrency,
	}
	if phone != "" {
		t.PhoneNumbers = []string{phone}
	}

	created, err := a.stores.Talents.Create(ctx, t)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created talent %s (%s)\n", created.Name, created.ID)
	a.pushQuietly(ctx)
}

func (a *App) talentList(ctx context.Context) {
	talents := a.stores.Talents.List(ctx)
	if len(talents) == 0 {
		fmt.Println("No talents yet.")
		return
	}

	now := time.Now()
	for _, t := range talents {
		marker := ""
		if costs.NeedsPhotoUpdate(t, now) {
			marker = "  [photo update due]"
		}
		fmt.Printf("%s  %-20s %-12s %s %s%s\n",
			t.ID, t.Name, a.categoryName(ctx, t.CategoryID),
			t.PricePerProject.String(), t.Currency, marker)
	}
}

func (a *App) talentShow(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: talent show <id>")
		return
	}
	t := a.stores.Talents.GetByID(ctx, args[0])
	if t == nil {
		fmt.Println("Talent not found.")
		return
	}

	fmt.Println("Name:    ", t.Name)
	fmt.Println("Category:", a.categoryName(ctx, t.CategoryID))
	fmt.Println("Price:   ", t.PricePerProject.String(), t.Currency)
	if len(t.PhoneNumbers) > 0 {
		fmt.Println("Phones:  ", t.PhoneNumbers)
	}
	if len(t.Photos) > 0 {
		fmt.Println("Photos:  ", len(t.Photos))
	}
	if t.Notes != "" {
		fmt.Println("Notes:   ", t.Notes)
	}
	fmt.Println("Last photo update:", t.LastPhotoUpdate.Format("2006-01-02"))
	if costs.NeedsPhotoUpdate(*t, time.Now()) {
		fmt.Println("Photo update is due.")
	}

	bookings := a.stores.Bookings.ListByTalent(ctx, t.ID)
	for _, b := range bookings {
		fmt.Printf("Booking %s: %s %s..%s\n", b.ID, b.Title,
			b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"))
	}
}

// talentPhoto uploads a photo straight to object storage via a presigned URL
// and records the storage key on the talent.
func (a *App) talentPhoto(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: talent photo <id>")
		return
	}
	token := a.auth.SessionToken(ctx)
	if token == "" {
		fmt.Println("Log in to upload photos.")
		return
	}
	t := a.stores.Talents.GetByID(ctx, args[0])
	if t == nil {
		fmt.Println("Talent not found.")
		return
	}

	path, err := GetSimpleText(a.reader, "Path to photo file", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer f.Close()

	presigned, err := a.api.PresignPhoto(ctx, token)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := a.api.UploadPhoto(ctx, presigned.URL, f); err != nil {
		fmt.Println("Error:", err)
		return
	}

	if _, err := a.stores.Talents.AddPhoto(ctx, t.ID, presigned.Key); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Photo uploaded as", presigned.Key)
	a.pushQuietly(ctx)
}

func (a *App) talentRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: talent rm <id>")
		return
	}
	deleted, err := a.stores.Talents.Delete(ctx, args[0])
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !deleted {
		fmt.Println("Talent not found.")
		return
	}
	fmt.Println("Talent and its bookings removed.")
	a.pushQuietly(ctx)
}

func (a *App) categoryName(ctx context.Context, id string) string {
	if id == "" {
		return "-"
	}
	if c := a.stores.Categories.GetByID(ctx, id); c != nil {
		return c.Name
	}
	return "Unknown"
}
