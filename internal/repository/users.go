package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwaters/ec-api/internal/models"
)

// UsersRepository performs database operations on the users table.
type UsersRepository struct {
	db *pgxpool.Pool
}

func NewUsersRepository(db *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{db: db}
}

// List returns all users ordered by id.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, email
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Address, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID returns one user, or ErrNotFound.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, name, address, email
		FROM users
		WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Address, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and fills in the generated id.
func (r *UsersRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (name, address, email)
		VALUES ($1, $2, $3)
		RETURNING id`, u.Name, u.Address, u.Email).
		Scan(&u.ID)
}

// Update overwrites all mutable columns of a user, or returns
// ErrNotFound when the id does not exist.
func (r *UsersRepository) Update(ctx context.Context, u *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $1, address = $2, email = $3
		WHERE id = $4`, u.Name, u.Address, u.Email, u.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user and, via cascade, their orders.
func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
