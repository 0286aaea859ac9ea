package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
)

var ErrUnknownStat = errors.New("unknown stat")

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	IncrementStat(ctx context.Context, stat entity.Stat, usernames ...string) error
	SetCurrentGame(ctx context.Context, gameID string, usernames ...string) error
	DeleteByUsername(ctx context.Context, username string) error
	List(ctx context.Context) ([]*entity.User, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type userRepository struct {
	conn *sql.DB
	now  func() time.Time
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (that *userRepository) Create(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	query := `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?) ON CONFLICT (username) DO NOTHING`

	createdAt := that.now().UTC().Truncate(time.Millisecond)

	result, err := that.conn.ExecContext(ctx, query, username, passwordHash, createdAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("can't save user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("can't save user: %w", err)
	}

	if affected == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUserAlreadyExists, username)
	}

	return &entity.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

func (that *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT username, password_hash, wins, losses, draws, game_id, created_at FROM users WHERE username = ?`

	user, err := scanUser(that.conn.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return user, nil
}

// IncrementStat - adds one to stat for every listed user in a single transaction. Unknown users are skipped.
func (that *userRepository) IncrementStat(ctx context.Context, stat entity.Stat, usernames ...string) error {
	if !stat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}

	// the column name comes from the validated Stat, never from input
	query := fmt.Sprintf(`UPDATE users SET %[1]s = %[1]s + 1 WHERE username = ?`, stat)

	return that.inTx(ctx, func(tx *sql.Tx) error {
		for _, username := range usernames {
			if _, err := tx.ExecContext(ctx, query, username); err != nil {
				return fmt.Errorf("can't increment %s for %s: %w", stat, username, err)
			}
		}
		return nil
	})
}

func (that *userRepository) SetCurrentGame(ctx context.Context, gameID string, usernames ...string) error {
	query := `UPDATE users SET game_id = ? WHERE username = ?`

	return that.inTx(ctx, func(tx *sql.Tx) error {
		for _, username := range usernames {
			if _, err := tx.ExecContext(ctx, query, gameID, username); err != nil {
				return fmt.Errorf("can't set current game for %s: %w", username, err)
			}
		}
		return nil
	})
}

func (that *userRepository) DeleteByUsername(ctx context.Context, username string) error {
	result, err := that.conn.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("can't delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete user: %w", err)
	}

	if affected == 0 {
		return apperror.ErrUserNotFound
	}

	return nil
}

func (that *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT username, password_hash, wins, losses, draws, game_id, created_at FROM users ORDER BY created_at, username`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list users: %w", err)
	}

	return users, nil
}

// Leaderboard - every user ranked by wins, ties broken by username.
func (that *userRepository) Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	query := `SELECT username, wins, losses, draws FROM users ORDER BY wins DESC, username ASC`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't get leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.LeaderboardEntry, 0)
	for rows.Next() {
		var entry entity.LeaderboardEntry
		if err = rows.Scan(&entry.Username, &entry.Wins, &entry.Losses, &entry.Draws); err != nil {
			return nil, fmt.Errorf("can't scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't get leaderboard: %w", err)
	}

	return entries, nil
}

func (that *userRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		user      entity.User
		createdAt int64
	)

	err := row.Scan(&user.Username, &user.PasswordHash, &user.Wins, &user.Losses, &user.Draws, &user.GameID, &createdAt)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &user, nil
}
