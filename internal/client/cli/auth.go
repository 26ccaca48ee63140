package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.auth.Register(ctx, username, string(password)); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.userName = username
	fmt.Println("Registered and logged in.")
}

func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.userName = username
	fmt.Println("Logged in.")
}

func (a *App) logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.userName = ""
	fmt.Println("Logged out. Local data is untouched.")
}
