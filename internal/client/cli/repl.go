package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ListCalls(ctx context.Context) error
	ShowCall(ctx context.Context, arg string) error
	NewCall(ctx context.Context) error
	EditCall(ctx context.Context, arg string) error
	DeleteCall(ctx context.Context, arg string) error
	ListApps(ctx context.Context, query string) error
	ShowApp(ctx context.Context, arg string) error
	Shortlist(ctx context.Context, arg string) error
	Hire(ctx context.Context, arg string) error
	Reject(ctx context.Context, arg string) error
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                 — show available commands
//	  - login                — authenticate
//	  - exit | quit          — leave the program
//
//	Logged in:
//	  - help                 — show available commands
//	  - dashboard            — show the overview counters
//	  - calls                — list casting calls
//	  - call <id>            — show one casting call with its applications
//	  - newcall              — create a casting call
//	  - editcall <id>        — update a casting call
//	  - delcall <id>         — delete a casting call (asks for confirmation)
//	  - apps [query]         — list applications, optionally filtered, e.g.
//	                           apps status=pending&casting_call_id=3
//	  - app <id>             — show one application
//	  - shortlist <id>       — move an application to shortlisted
//	  - hire <id>            — move an application to hired
//	  - reject <id>          — move an application to rejected (confirmation)
//	  - logout               — log out
//	  - exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("castpro %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, calls, call <id>, newcall, editcall <id>, delcall <id>, apps [query], app <id>, shortlist <id>, hire <id>, reject <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "calls":
			_ = a.ListCalls(ctx)

		case "call":
			if arg == "" {
				printlnFn("Usage: call <id>")
				continue
			}
			_ = a.ShowCall(ctx, arg)

		case "newcall":
			_ = a.NewCall(ctx)

		case "editcall":
			if arg == "" {
				printlnFn("Usage: editcall <id>")
				continue
			}
			_ = a.EditCall(ctx, arg)

		case "delcall":
			if arg == "" {
				printlnFn("Usage: delcall <id>")
				continue
			}
			_ = a.DeleteCall(ctx, arg)

		case "apps":
			_ = a.ListApps(ctx, arg)

		case "app":
			if arg == "" {
				printlnFn("Usage: app <id>")
				continue
			}
			_ = a.ShowApp(ctx, arg)

		case "shortlist":
			if arg == "" {
				printlnFn("Usage: shortlist <id>")
				continue
			}
			_ = a.Shortlist(ctx, arg)

		case "hire":
			if arg == "" {
				printlnFn("Usage: hire <id>")
				continue
			}
			_ = a.Hire(ctx, arg)

		case "reject":
			if arg == "" {
				printlnFn("Usage: reject <id>")
				continue
			}
			_ = a.Reject(ctx, arg)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
