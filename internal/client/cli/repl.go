package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Papers(ctx context.Context) error
	View(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	RequestOTP(ctx context.Context) error
	Upload(ctx context.Context) error
	Users(ctx context.Context) error
	AssignRole(ctx context.Context) error
	BulkUsers(ctx context.Context, args []string) error
	Academic(ctx context.Context, args []string) error
	Logs(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the Quark CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands (role gating happens inside the handlers):
//
//	Not logged in:
//	  - help, register, login, exit | quit
//
//	Logged in:
//	  - papers              list available papers
//	  - view <n>            open one paper (may prompt for its password)
//	  - download <n>        OTP-gated watermarked download
//	  - otp                 request a one-time code by email
//	  - upload              publish a paper (teacher)
//	  - users, assign-role, bulk-users <file>, academic, logs (admin)
//	  - logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("quark %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: papers, view <n>, download <n>, otp, upload, users, assign-role, bulk-users <file>, academic, logs, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "papers", "list":
			_ = a.Papers(ctx)

		case "view":
			_ = a.View(ctx, args)

		case "download":
			_ = a.Download(ctx, args)

		case "otp":
			_ = a.RequestOTP(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "users":
			_ = a.Users(ctx)

		case "assign-role":
			_ = a.AssignRole(ctx)

		case "bulk-users":
			_ = a.BulkUsers(ctx, args)

		case "academic":
			_ = a.Academic(ctx, args)

		case "logs":
			_ = a.Logs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
