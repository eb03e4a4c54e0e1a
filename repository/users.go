package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mapleleafu/gamenight-bot/responses"
	"github.com/mapleleafu/gamenight-bot/utils"
)

// Users maps Discord accounts to the names people go by in the GL
// spreadsheet. One name per account, one account per name.
type Users struct {
	DB *sql.DB
}

func unknownUser(id string) responses.UserError {
	return responses.Userf("I don't know what name %s goes by in the GL spreadsheet.", utils.Mention(id))
}

// UserName returns the spreadsheet name bound to a Discord account. An
// account with no binding is a UserError, not a failure.
func (u Users) UserName(ctx context.Context, id string) (string, error) {
	var name sql.NullString
	err := u.DB.QueryRowContext(ctx, `SELECT gl_name FROM users WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", unknownUser(id)
	}
	if err != nil {
		return "", err
	}
	if !name.Valid {
		return "", unknownUser(id)
	}
	return name.String, nil
}

// SetUserName binds a spreadsheet name to a Discord account, replacing any
// previous binding for that account. Names are unique across accounts;
// claiming someone else's is a UserError that says whose it is.
func (u Users) SetUserName(ctx context.Context, id, name string) error {
	if _, err := u.DB.ExecContext(ctx,
		`INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, id); err != nil {
		return err
	}

	if _, err := u.DB.ExecContext(ctx,
		`UPDATE users SET gl_name = $1 WHERE id = $2`, name, id); err != nil {
		// Blame the unique index on gl_name only when the reverse lookup
		// confirms someone else holds the name.
		holder, ok, lerr := u.UserIDByName(ctx, name)
		if lerr == nil && ok && holder != id {
			return responses.Userf("That name is already taken by %s.", utils.Mention(holder))
		}
		return err
	}
	return nil
}

// DeleteUser forgets an account entirely. Deleting an unknown account is
// fine.
func (u Users) DeleteUser(ctx context.Context, id string) error {
	_, err := u.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// UserIDByName is the reverse lookup: which account goes by this
// spreadsheet name. ok is false when nobody does.
func (u Users) UserIDByName(ctx context.Context, name string) (id string, ok bool, err error) {
	err = u.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE gl_name = $1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Count reports how many accounts currently have a name bound.
func (u Users) Count(ctx context.Context) (int, error) {
	var n int
	err := u.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE gl_name IS NOT NULL`).Scan(&n)
	return n, err
}
