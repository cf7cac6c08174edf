package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID expands an id prefix to the single full id it matches. An exact
// match always wins; an ambiguous prefix is an error; no match returns the
// input unchanged so delete keeps its no-op semantics for absent rows.
func resolveID(ids []string, prefix string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return prefix, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func (r *RootCommand) resolveTaskID(ctx context.Context, prefix string) (string, error) {
	tasks, err := r.api.ListTasks(ctx)
	if err != nil {
		return "", NewErrorHandler().Handle("list tasks", err)
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID(ids, prefix)
}

func (r *RootCommand) resolveGoalID(ctx context.Context, prefix string) (string, error) {
	goals, err := r.api.ListGoals(ctx)
	if err != nil {
		return "", NewErrorHandler().Handle("list goals", err)
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return resolveID(ids, prefix)
}

func (r *RootCommand) resolveEventID(ctx context.Context, prefix string) (string, error) {
	events, err := r.api.ListEvents(ctx)
	if err != nil {
		return "", NewErrorHandler().Handle("list events", err)
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return resolveID(ids, prefix)
}

func (r *RootCommand) resolveNoteID(ctx context.Context, prefix string) (string, error) {
	notes, err := r.api.ListNotes(ctx)
	if err != nil {
		return "", NewErrorHandler().Handle("list notes", err)
	}
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return resolveID(ids, prefix)
}

func (r *RootCommand) resolveContactID(ctx context.Context, prefix string) (string, error) {
	contacts, err := r.api.ListContacts(ctx)
	if err != nil {
		return "", NewErrorHandler().Handle("list contacts", err)
	}
	ids := make([]string, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	return resolveID(ids, prefix)
}
