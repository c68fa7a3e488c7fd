package main

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hearthapp/hearth-api/internal/core/domain"
	mongodb "github.com/hearthapp/hearth-api/internal/infrastructure/db/mongo"
)

func (a *app) users(ctx context.Context, cmd *cobra.Command) error {
	client, db, err := a.connectMongo(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = mongodb.Disconnect(context.Background(), client) }()

	// An empty id excludes nobody.
	users, err := mongodb.NewUserRepository(db).ListExcept(ctx, "")
	if err != nil {
		return err
	}

	renderUsers(cmd.OutOrStdout(), users)
	return nil
}

// renderUsers prints users as a table.
func renderUsers(w io.Writer, users []*domain.User) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Username", "Created"})

	for _, u := range users {
		created := "-"
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.UTC().Format("2006-01-02 15:04")
		}
		t.AppendRow(table.Row{u.ID, u.Username, created})
	}
	t.AppendFooter(table.Row{"", "Total", len(users)})

	t.Render()
}
