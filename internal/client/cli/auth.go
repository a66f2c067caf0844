package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/common"
)

// Register collects the new-account form and submits it. Registering does
// not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetSecret("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Username: username, Email: email, Password: string(password)}
	if err := a.authService.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}
	printlnFn("Account created, you can log in now.")
	return nil
}

// Login authenticates and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetSecret("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.authService.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Logged in as %s (%s)", identity.Username, identity.Role))
	return nil
}

// Logout clears the session and the cached paper list.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	a.papers = nil
	a.paperService.Controller().Reset()
	printlnFn("Logged out.")
	return nil
}
