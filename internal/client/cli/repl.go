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
	Open(ctx context.Context, target string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - open <path>    — open a screen (guards may bounce to login)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - open <path>    — open a screen (e.g. /products, /stores)
//	  - whoami         — show the current session
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("stockroom %s> ", statusFn()))
		if !scanner.Scan() {
			return
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
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, whoami, logout, exit")
				printlnFn("Screens: /user-dashboard /profile /products /categories /suppliers /purchases /sales /stores /inventories /transactions")
			} else {
				printlnFn("Available commands: register, login, open <path>, exit")
			}

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
