package postgres

import (
	"context"
	"database/sql"
	"errors"

	"smart-life-agent/internal/model"

	_ "github.com/lib/pq"
)

// InitializeDatabase creates the tables if they do not exist yet.
func InitializeDatabase(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			google_id TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL,
			name TEXT NOT NULL,
			access_token TEXT NOT NULL DEFAULT '',
			refresh_token TEXT NOT NULL DEFAULT '',
			token_expiry TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user_email TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			priority TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_user_email ON tasks (user_email);`

	_, err := db.Exec(schema)
	return err
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, google_id, email, name, access_token, refresh_token, token_expiry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (google_id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expiry = EXCLUDED.token_expiry,
			updated_at = NOW()`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.GoogleID, user.Email, user.Name,
		user.AccessToken, user.RefreshToken, user.TokenExpiry,
		user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, google_id, email, name, access_token, refresh_token, token_expiry, created_at, updated_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	query := `SELECT id, google_id, email, name, access_token, refresh_token, token_expiry, created_at, updated_at FROM users WHERE google_id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, googleID))
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, google_id, email, name, access_token, refresh_token, token_expiry, created_at, updated_at FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	query := `SELECT id, google_id, email, name, access_token, refresh_token, token_expiry, created_at, updated_at FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(
			&user.ID, &user.GoogleID, &user.Email, &user.Name,
			&user.AccessToken, &user.RefreshToken, &user.TokenExpiry,
			&user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users SET google_id=$1, email=$2, name=$3, access_token=$4,
		refresh_token=$5, token_expiry=$6, updated_at=NOW() WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query,
		user.GoogleID, user.Email, user.Name,
		user.AccessToken, user.RefreshToken, user.TokenExpiry,
		user.ID)
	return err
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *PostgresUserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.GoogleID, &user.Email, &user.Name,
		&user.AccessToken, &user.RefreshToken, &user.TokenExpiry,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Postgres Task repository implementation
type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `
		INSERT INTO tasks (id, user_email, title, description, date, priority, category, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserEmail, task.Title, task.Description,
		task.Date, task.Priority, task.Category, task.Status, task.CreatedAt)
	return err
}

func (r *PostgresTaskRepository) FindByUser(ctx context.Context, userEmail string) ([]*model.Task, error) {
	query := `
		SELECT id, user_email, title, description, date, priority, category, status, created_at
		FROM tasks WHERE user_email = $1 ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*model.Task
	for rows.Next() {
		task := &model.Task{}
		err := rows.Scan(
			&task.ID, &task.UserEmail, &task.Title, &task.Description,
			&task.Date, &task.Priority, &task.Category, &task.Status, &task.CreatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) UpdatePriorityByTitle(ctx context.Context, userEmail, title, priority string) (int, error) {
	query := `UPDATE tasks SET priority = $1 WHERE user_email = $2 AND title = $3`
	result, err := r.db.ExecContext(ctx, query, priority, userEmail, title)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func (r *PostgresTaskRepository) MarkCompleted(ctx context.Context, userEmail, taskID string) (bool, error) {
	query := `UPDATE tasks SET status = $1 WHERE user_email = $2 AND id = $3`
	result, err := r.db.ExecContext(ctx, query, model.StatusCompleted, userEmail, taskID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, userEmail, taskID string) (bool, error) {
	query := `DELETE FROM tasks WHERE user_email = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, userEmail, taskID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PostgresTaskRepository) DeleteAll(ctx context.Context, userEmail string) (int, error) {
	query := `DELETE FROM tasks WHERE user_email = $1`
	result, err := r.db.ExecContext(ctx, query, userEmail)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}
