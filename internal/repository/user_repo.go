package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"recipebox/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL       = `INSERT INTO users (username, password_hash, image_url, bio) VALUES (?, ?, ?, ?)`
	selectUserByNameSQL = `SELECT id, username, password_hash, image_url, bio FROM users WHERE username = ?`
	selectUserByIDSQL   = `SELECT id, username, password_hash, image_url, bio FROM users WHERE id = ?`
)

// Create inserts a new user inside its own transaction and returns its ID.
// A username collision surfaces as ErrDuplicate (wrapped).
func (r *UserRepository) Create(u *models.User) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin insert user %q: %w", u.Username, err)
	}

	res, err := tx.Exec(insertUserSQL, u.Username, u.PasswordHash, u.ImageURL, u.Bio)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert user %q: %w", u.Username, classifyConstraintErr(err))
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByNameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by primary key. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByIDSQL, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return &u, nil
}
