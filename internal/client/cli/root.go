package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	if a.isLoggedIn() {
		return "(online)"
	}
	return ""
}

// Root runs the interactive command loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to TalentDesk CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("td %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands:")
			fmt.Println("  talent add|list|show|photo|rm")
			fmt.Println("  project add|list|costs|rm")
			fmt.Println("  booking add|list|rm")
			fmt.Println("  category list|add|rm")
			fmt.Println("  settings [margin|currency]")
			fmt.Println("  register, login, logout, sync, exit")

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)

		case "talent":
			a.talentCmd(ctx, args)
		case "project":
			a.projectCmd(ctx, args)
		case "booking":
			a.bookingCmd(ctx, args)
		case "category":
			a.categoryCmd(ctx, args)
		case "settings":
			a.settingsCmd(ctx, args)

		case "sync":
			a.syncNow(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
