package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func (a *App) bookingCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: booking add|list|rm")
		return
	}
	switch args[0] {
	case "add":
		a.bookingAdd(ctx)
	case "list":
		a.bookingList(ctx, args[1:])
	case "rm":
		a.bookingRemove(ctx, args[1:])
	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}

func (a *App) bookingAdd(ctx context.Context) {
	talentID, err := GetSimpleText(a.reader, "Talent id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if a.stores.Talents.GetByID(ctx, talentID) == nil {
		fmt.Println("Talent not found.")
		return
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil || title == "" {
		fmt.Println("Title is required.")
		return
	}
	start, err := GetDate(a.reader, "Start date (2006-01-02)", os.Stdout)
	if err != nil || start.IsZero() {
		fmt.Println("Start date is required.")
		return
	}
	end, err := GetDate(a.reader, "End date (empty for same day)", os.Stdout)
	if err != nil {
		fmt.Println("Invalid date:", err)
		return
	}
	if end.IsZero() {
		end = start
	}
	if end.Before(start) {
		fmt.Println("End date cannot precede start date.")
		return
	}

	b := models.TalentBooking{
		TalentID:  talentID,
		Title:     title,
		StartDate: start,
		EndDate:   end,
		AllDay:    true,
	}
	created, err := a.stores.Bookings.Create(ctx, b)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created booking %s\n", created.ID)
	a.pushQuietly(ctx)
}

func (a *App) bookingList(ctx context.Context, args []string) {
	var bookings []models.TalentBooking
	if len(args) > 0 {
		bookings = a.stores.Bookings.ListByTalent(ctx, args[0])
	} else {
		bookings = a.stores.Bookings.List(ctx)
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings.")
		return
	}
	for _, b := range bookings {
		fmt.Printf("%s  %-20s talent=%s %s..%s\n", b.ID, b.Title, b.TalentID,
			b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"))
	}
}

func (a *App) bookingRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: booking rm <id>")
		return
	}
	deleted, err := a.stores.Bookings.Delete(ctx, args[0])
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !deleted {
		fmt.Println("Booking not found.")
		return
	}
	fmt.Println("Booking removed.")
	a.pushQuietly(ctx)
}
