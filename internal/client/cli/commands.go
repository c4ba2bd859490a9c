package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/models"
)

func (a *App) isAdmin() bool {
	return a.capabilities().Role() == models.RoleAdmin
}

func (a *App) Home(_ context.Context) error {
	if err := a.navigate(capability.RouteHome); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "YouQuote: discover, share, and be inspired by a collection of meaningful quotes.")
	fmt.Fprintln(a.out, helpText(a.capabilities()))
	return nil
}

func (a *App) Quotes(ctx context.Context) error {
	if err := a.navigate(capability.RouteQuotes); err != nil {
		return err
	}
	quotes, err := a.browse.Quotes(ctx)
	if err != nil {
		return err
	}
	renderQuotes(a.out, quotes, a.isAdmin())
	return nil
}

func (a *App) Quote(ctx context.Context, id int64) error {
	if err := a.navigate(capability.RouteQuotes); err != nil {
		return err
	}
	q, err := a.browse.Quote(ctx, id)
	if err != nil {
		return err
	}
	renderQuote(a.out, *q, a.isAdmin())
	return nil
}

func (a *App) Authors(ctx context.Context) error {
	if err := a.navigate(capability.RouteAuthors); err != nil {
		return err
	}
	authors, err := a.browse.Authors(ctx)
	if err != nil {
		return err
	}
	renderAuthors(a.out, authors)
	return nil
}

func (a *App) Author(ctx context.Context, id int64) error {
	if err := a.navigate(capability.RouteAuthors); err != nil {
		return err
	}
	aq, err := a.browse.AuthorQuotes(ctx, id)
	if err != nil {
		return err
	}
	renderAuthorQuotes(a.out, *aq, a.isAdmin())
	return nil
}

// Dashboard renders whatever loaded even when one of the loads failed; the
// failure is still returned.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.navigate(capability.RouteDashboard); err != nil {
		return err
	}
	err := a.moderation.LoadDashboard(ctx)
	renderCounts(a.out, a.users.Count(), a.quotes.CountActive(), a.quotes.CountDeleted())
	renderUsers(a.out, a.users.All())
	return err
}

func (a *App) Users(ctx context.Context) error {
	if err := a.moderation.ReloadUsers(ctx); err != nil {
		return err
	}
	renderUsers(a.out, a.users.All())
	return nil
}

func (a *App) Deleted(ctx context.Context) error {
	if err := a.moderation.ReloadQuotes(ctx); err != nil {
		return err
	}
	renderQuotes(a.out, a.quotes.Deleted(), true)
	return nil
}

func (a *App) printQuoteCounts(done string) {
	fmt.Fprintf(a.out, "%s Active: %d, deleted: %d.\n", done, a.quotes.CountActive(), a.quotes.CountDeleted())
}

func (a *App) Delete(ctx context.Context, id int64) error {
	if err := a.moderation.Delete(ctx, id); err != nil {
		return err
	}
	a.printQuoteCounts(fmt.Sprintf("Quote %d deleted.", id))
	return nil
}

func (a *App) Restore(ctx context.Context, id int64) error {
	if err := a.moderation.Restore(ctx, id); err != nil {
		return err
	}
	a.printQuoteCounts(fmt.Sprintf("Quote %d restored.", id))
	return nil
}

func (a *App) Purge(ctx context.Context, id int64) error {
	if err := a.moderation.Purge(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Quote %d permanently deleted. Deleted: %d.\n", id, a.quotes.CountDeleted())
	return nil
}

func (a *App) RestoreAll(ctx context.Context) error {
	if err := a.moderation.RestoreAll(ctx); err != nil {
		return err
	}
	a.printQuoteCounts("All deleted quotes restored.")
	return nil
}

func (a *App) PurgeAll(ctx context.Context) error {
	if err := a.moderation.PurgeAll(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "All deleted quotes permanently removed. Deleted: %d.\n", a.quotes.CountDeleted())
	return nil
}

func (a *App) ChangeRole(ctx context.Context, userID int64, role string) error {
	if err := a.moderation.ChangeRole(ctx, userID, role); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %d is now %s.\n", userID, role)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.moderation.DeleteUser(ctx, userID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %d deleted. Users: %d.\n", userID, a.users.Count())
	return nil
}
