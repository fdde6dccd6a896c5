package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface runREPL dispatches to. App satisfies it;
// tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Can(ctx context.Context, args []string) error
	Customers(ctx context.Context, kind models.Kind, args []string) error
	Report(ctx context.Context) error
	ResetPassword(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

const (
	helpSignedOut = `Available commands:
  login                            sign in
  theme [toggle|light|dark]        show or change the display theme
  can <capability>                 check a capability of the current session
  help, exit`
	helpSignedIn = `Available commands:
  whoami                           show the signed-in user and capabilities
  can <capability>                 check a capability
  pf|pj list [page]                list active customers
  pf|pj show <publicId>            show one customer
  pf find <cpf> | pj find <cnpj>   look a customer up by document
  pf|pj block|unblock <publicId>   block or unblock a customer
  pf|pj delete|restore <publicId>  soft delete or restore a customer
  report                           active customers and lead origins
  reset-password <publicId> [manual]
  theme [toggle|light|dark]
  logout, help, exit`
)

// runREPL reads commands from scanner and dispatches them to a until the
// user types "exit" or "quit" or the input ends. Command errors are
// printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("yk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "can":
			err = a.Can(ctx, args)

		case "pf", "pj":
			kind, _ := models.ParseKind(cmd)
			err = a.Customers(ctx, kind, args)

		case "report":
			err = a.Report(ctx)

		case "reset-password":
			err = a.ResetPassword(ctx, args)

		case "theme":
			err = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
