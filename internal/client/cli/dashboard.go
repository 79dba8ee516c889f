package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dkoval85/dashterm/internal/client/services"
)

func (a *App) execDashboard(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn("Available commands: (l)ist, sort <column> [desc], filter <term>, sidebar, whoami, logout, delete, exit")
	case "l", "list":
		_ = a.List(ctx)
	case "sort":
		a.Sort(ctx, args)
	case "filter":
		a.Filter(ctx, args)
	case "sidebar":
		a.ToggleSidebar()
	case "whoami":
		a.WhoAmI(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "delete":
		_ = a.DeleteAccount(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}

// List renders the data table with the current sort and filter applied.
func (a *App) List(ctx context.Context) error {
	recs, err := a.records.List(ctx, a.listOpts)
	if err != nil {
		a.log.Error(ctx, "failed to list records", "error", err)
		printlnFn("Could not load records")
		return err
	}

	printfFn("%-10s %-20s %-10s %10s  %s\n", "ID", "CUSTOMER", "STATUS", "AMOUNT", "CREATED")
	for _, r := range recs {
		printfFn("%-10s %-20s %-10s %10.2f  %s\n",
			r.ID, r.Customer, r.Status, r.Amount, r.CreatedAt.Format("2006-01-02"))
	}
	printfFn("%d record(s)\n", len(recs))
	return nil
}

// Sort sets the sort column (optionally descending) and re-renders the table.
func (a *App) Sort(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: sort <id|customer|status|amount|created> [desc]")
		return
	}

	opts := a.listOpts
	opts.SortBy = args[0]
	opts.Desc = len(args) > 1 && args[1] == "desc"

	if _, err := a.records.List(ctx, opts); err != nil {
		if errors.Is(err, services.ErrUnknownSortColumn) {
			printlnFn("Unknown column:", args[0])
			return
		}
	}

	a.listOpts = opts
	_ = a.List(ctx)
}

// Filter sets the filter term and re-renders; with no argument it clears
// the filter.
func (a *App) Filter(ctx context.Context, args []string) {
	a.listOpts.Filter = strings.Join(args, " ")
	_ = a.List(ctx)
}

// ToggleSidebar flips the collapsible layout state.
func (a *App) ToggleSidebar() {
	a.sidebarOpen = !a.sidebarOpen
	if a.sidebarOpen {
		printlnFn("Sidebar expanded")
	} else {
		printlnFn("Sidebar collapsed")
	}
}

// WhoAmI prints the current session projection: name and email, never the
// secret.
func (a *App) WhoAmI(ctx context.Context) {
	id, active := a.identity.CurrentSession(ctx)
	if !active {
		printlnFn("Not logged in")
		return
	}
	printlnFn(id.Name)
	printlnFn(id.Email)
}

// Logout clears the session and returns to the entry screen on the next
// prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("You have been logged out successfully")
	return nil
}

// DeleteAccount asks for confirmation and then permanently deletes the
// logged-in account, ending the session.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader,
		"This will permanently delete your account and cannot be undone. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.identity.DeleteAccount(ctx); err != nil {
		a.log.Error(ctx, "account deletion failed", "error", err)
		printlnFn("Could not delete account")
		return err
	}

	printlnFn("Your account has been deleted successfully")
	return nil
}
