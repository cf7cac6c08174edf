package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"planner/internal/domain"
	"planner/internal/services"
)

// output is the destination for command output, replaceable in tests
var output io.Writer = os.Stdout

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printTasks(tasks []*domain.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Fprintln(output, "No tasks found")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), t.Title, t.Priority, t.Status, services.DueDateLabel(t, now))
	}
	w.Flush()
}

func printGoals(goals []*domain.Goal) {
	if len(goals) == 0 {
		fmt.Fprintln(output, "No goals found")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTIMEFRAME\tSTATUS\tPROGRESS\tMILESTONES")
	for _, g := range goals {
		done := 0
		for _, m := range g.Milestones {
			if m.Completed {
				done++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d%%\t%d/%d\n",
			shortID(g.ID), g.Title, g.Category, g.Timeframe, g.Status, g.Progress, done, len(g.Milestones))
	}
	w.Flush()
}

func printEvents(events []*domain.Event) {
	if len(events) == 0 {
		fmt.Fprintln(output, "No events found")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tTIME\tTYPE\tTITLE\tLOCATION")
	for _, e := range events {
		window := e.StartTime
		if e.EndTime != "" {
			window = e.StartTime + "-" + e.EndTime
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID), e.Date, window, e.EventType, e.Title, e.Location)
	}
	w.Flush()
}

func printNotes(notes []*domain.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(output, "No notes found")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTAGS\tPINNED")
	for _, n := range notes {
		pinned := ""
		if n.IsPinned {
			pinned = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(n.ID), n.Title, n.Category, strings.Join(n.Tags, ","), pinned)
	}
	w.Flush()
}

func printContacts(contacts []*domain.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(output, "No contacts found")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tPHONE\tCATEGORY\tFAV")
	for _, c := range contacts {
		fav := ""
		if c.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(c.ID), c.Name, c.Company, c.Email, c.Phone, c.Category, fav)
	}
	w.Flush()
}
