package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	capabilities() capability.Set

	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Quotes(ctx context.Context) error
	Quote(ctx context.Context, id int64) error
	Authors(ctx context.Context) error
	Author(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Deleted(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	RestoreAll(ctx context.Context) error
	PurgeAll(ctx context.Context) error
	ChangeRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// runREPL reads commands from reader until EOF or exit/quit and
// dispatches them to a. A failed command prints exactly one message and
// the loop carries on.
//
//	Everyone:      help, home, exit | quit
//	Anonymous:     register, login
//	Signed in:     quotes, quote <id>, authors, author <id>, logout
//	Admin:         dashboard, users, deleted, delete <id>, restore <id>,
//	               purge <id>, restoreall, purgeall, role <userID> <role>,
//	               deluser <userID>
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("yq %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText(a.capabilities()))

		case "home":
			cmdErr = a.Home(ctx)
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "quotes":
			cmdErr = a.Quotes(ctx)
		case "quote":
			cmdErr = withID(args, "quote <id>", func(id int64) error { return a.Quote(ctx, id) })
		case "authors":
			cmdErr = a.Authors(ctx)
		case "author":
			cmdErr = withID(args, "author <id>", func(id int64) error { return a.Author(ctx, id) })

		case "dashboard":
			cmdErr = a.Dashboard(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "deleted":
			cmdErr = a.Deleted(ctx)
		case "delete":
			cmdErr = withID(args, "delete <id>", func(id int64) error { return a.Delete(ctx, id) })
		case "restore":
			cmdErr = withID(args, "restore <id>", func(id int64) error { return a.Restore(ctx, id) })
		case "purge":
			cmdErr = withID(args, "purge <id>", func(id int64) error { return a.Purge(ctx, id) })
		case "restoreall":
			cmdErr = a.RestoreAll(ctx)
		case "purgeall":
			cmdErr = a.PurgeAll(ctx)
		case "role":
			if len(args) != 2 {
				cmdErr = usage("role <userID> <role>")
				break
			}
			cmdErr = withID(args[:1], "role <userID> <role>", func(id int64) error { return a.ChangeRole(ctx, id, args[1]) })
		case "deluser":
			cmdErr = withID(args, "deluser <userID>", func(id int64) error { return a.DeleteUser(ctx, id) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(client.UserMessage(cmdErr))
		}
	}
}

func withID(args []string, use string, fn func(int64) error) error {
	if len(args) != 1 {
		return usage(use)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return usage(use)
	}
	return fn(id)
}

// helpText lists the commands the current capabilities allow.
func helpText(set capability.Set) string {
	cmds := []string{"help", "home"}
	if set.CanNavigate(capability.RouteRegister) {
		cmds = append(cmds, "register")
	}
	if set.CanNavigate(capability.RouteLogin) {
		cmds = append(cmds, "login")
	}
	if set.CanNavigate(capability.RouteQuotes) {
		cmds = append(cmds, "quotes", "quote <id>")
	}
	if set.CanNavigate(capability.RouteAuthors) {
		cmds = append(cmds, "authors", "author <id>")
	}
	if set.CanNavigate(capability.RouteDashboard) {
		cmds = append(cmds, "dashboard")
	}
	if set.Can(capability.ActionListUsers) {
		cmds = append(cmds, "users")
	}
	if set.Can(capability.ActionListQuotes) {
		cmds = append(cmds, "deleted")
	}
	if set.Can(capability.ActionDeleteQuote) {
		cmds = append(cmds, "delete <id>")
	}
	if set.Can(capability.ActionRestoreQuote) {
		cmds = append(cmds, "restore <id>")
	}
	if set.Can(capability.ActionPurgeQuote) {
		cmds = append(cmds, "purge <id>")
	}
	if set.Can(capability.ActionRestoreAll) {
		cmds = append(cmds, "restoreall")
	}
	if set.Can(capability.ActionPurgeAll) {
		cmds = append(cmds, "purgeall")
	}
	if set.Can(capability.ActionChangeRole) {
		cmds = append(cmds, "role <userID> <role>")
	}
	if set.Can(capability.ActionDeleteUser) {
		cmds = append(cmds, "deluser <userID>")
	}
	if set.Authenticated() {
		cmds = append(cmds, "logout")
	}
	cmds = append(cmds, "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
