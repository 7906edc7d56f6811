package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
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
	WhoAmI(ctx context.Context) error
	SessionInfo(ctx context.Context) error
	Stats(ctx context.Context) error
	Today(ctx context.Context) error
	Owners(ctx context.Context) error
	Owner(ctx context.Context, id int64) error
	Pets(ctx context.Context, ownerID int64) error
	Appointments(ctx context.Context, date string) error
	Cancel(ctx context.Context, id int64) error
	DueVaccinations(ctx context.Context) error
	PetVaccinations(ctx context.Context, petID int64) error
	Records(ctx context.Context, petID int64) error
	Services(ctx context.Context, activeOnly bool) error
	Report(ctx context.Context, kind string) error
	Logs(ctx context.Context) error
	Notifications(ctx context.Context) error
	ClearNotifications(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, help, exit"
	helpLoggedIn  = "Available commands: whoami, stats, today, owners, owner <id>, pets [owner_id], " +
		"appointments [date], cancel <id>, vaccinations due|<pet_id>, records <pet_id>, " +
		"services [active], report <kind>, logs, notifications, clear, session, logout, exit"
)

var errUsage = errors.New("usage")

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands other than help, login and exit require a session; without one
// the user is asked to log in. Errors returned by handlers are ignored here;
// handlers report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vet %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please login first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		if err := dispatch(ctx, a, cmd, args); errors.Is(err, errUsage) {
			printlnFn("Usage:", usage[cmd])
		}
	}
}

var usage = map[string]string{
	"owner":        "owner <id>",
	"pets":         "pets [owner_id]",
	"cancel":       "cancel <id>",
	"vaccinations": "vaccinations due|<pet_id>",
	"records":      "records <pet_id>",
	"services":     "services [active]",
	"report":       "report <kind>",
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "session", "stats", "today", "owners", "appointments", "logs", "notifications", "clear":
		return true
	}
	_, ok := usage[cmd]
	return ok
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "session":
		return a.SessionInfo(ctx)
	case "stats":
		return a.Stats(ctx)
	case "today":
		return a.Today(ctx)
	case "owners":
		return a.Owners(ctx)
	case "owner":
		id, err := idArg(args, true)
		if err != nil {
			return err
		}
		return a.Owner(ctx, id)
	case "pets":
		id, err := idArg(args, false)
		if err != nil {
			return err
		}
		return a.Pets(ctx, id)
	case "appointments":
		date := ""
		if len(args) > 0 {
			date = args[0]
		}
		return a.Appointments(ctx, date)
	case "cancel":
		id, err := idArg(args, true)
		if err != nil {
			return err
		}
		return a.Cancel(ctx, id)
	case "vaccinations":
		if len(args) > 0 && args[0] == "due" {
			return a.DueVaccinations(ctx)
		}
		id, err := idArg(args, true)
		if err != nil {
			return err
		}
		return a.PetVaccinations(ctx, id)
	case "records":
		id, err := idArg(args, true)
		if err != nil {
			return err
		}
		return a.Records(ctx, id)
	case "services":
		if len(args) > 0 && args[0] != "active" {
			return errUsage
		}
		return a.Services(ctx, len(args) > 0)
	case "report":
		if len(args) == 0 {
			return errUsage
		}
		return a.Report(ctx, args[0])
	case "logs":
		return a.Logs(ctx)
	case "notifications":
		return a.Notifications(ctx)
	case "clear":
		return a.ClearNotifications(ctx)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

// idArg parses the first argument as a positive id. When the argument is
// optional and missing it returns 0.
func idArg(args []string, required bool) (int64, error) {
	if len(args) == 0 {
		if required {
			return 0, errUsage
		}
		return 0, nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}
