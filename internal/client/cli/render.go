package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/youquote/internal/models"
)

const (
	timeLayout = "2006-01-02 15:04"
	maxContent = 60
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func deletedStamp(q models.Quote) string {
	if at, ok := q.Lifecycle.DeletedAt(); ok {
		return stamp(at)
	}
	return "-"
}

// renderQuotes prints a listing. Timestamps are only shown to admins.
func renderQuotes(w io.Writer, quotes []models.Quote, withTimes bool) {
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No quotes.")
		return
	}
	tw := newTable(w)
	if withTimes {
		fmt.Fprintln(tw, "ID\tQUOTE\tAUTHOR\tPOPULARITY\tCREATED\tDELETED")
	} else {
		fmt.Fprintln(tw, "ID\tQUOTE\tAUTHOR\tPOPULARITY")
	}
	for _, q := range quotes {
		if withTimes {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", q.ID, truncate(q.Content, maxContent), q.Author,
				q.PopularityCount, stamp(q.CreatedAt), deletedStamp(q))
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", q.ID, truncate(q.Content, maxContent), q.Author, q.PopularityCount)
	}
	_ = tw.Flush()
}

func renderQuote(w io.Writer, q models.Quote, withTimes bool) {
	fmt.Fprintf(w, "\"%s\"\n  - %s\n", q.Content, q.Author)
	fmt.Fprintf(w, "Length: %d  Popularity: %d\n", q.Length, q.PopularityCount)
	if q.User != nil {
		fmt.Fprintf(w, "Shared by: %s\n", q.User.Name)
	}
	if withTimes {
		fmt.Fprintf(w, "Created: %s  Updated: %s\n", stamp(q.CreatedAt), stamp(q.UpdatedAt))
	}
}

func renderAuthors(w io.Writer, authors []models.Author) {
	if len(authors) == 0 {
		fmt.Fprintln(w, "No authors.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tQUOTES")
	for _, a := range authors {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", a.ID, a.Name, len(a.Quotes))
	}
	_ = tw.Flush()
}

func renderAuthorQuotes(w io.Writer, aq models.AuthorQuotes, withTimes bool) {
	fmt.Fprintln(w, aq.Author)
	renderQuotes(w, aq.Quotes, withTimes)
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tVERIFIED\tCREATED")
	for _, u := range users {
		verified := "no"
		if u.EmailVerifiedAt != nil {
			verified = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, verified, stamp(u.CreatedAt))
	}
	_ = tw.Flush()
}

func renderCounts(w io.Writer, users, active, deleted int) {
	tw := newTable(w)
	fmt.Fprintln(tw, "USERS\tACTIVE QUOTES\tDELETED QUOTES")
	fmt.Fprintln(tw, strconv.Itoa(users)+"\t"+strconv.Itoa(active)+"\t"+strconv.Itoa(deleted))
	_ = tw.Flush()
}
