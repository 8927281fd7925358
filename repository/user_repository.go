package repository

import (
	"database/sql"
	"go-shop-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
}

// UserRepository implements IUserRepository on Postgres.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (username, email, password, first_name, last_name, birth_date, address)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		user.Username, user.Email, user.Password,
		user.FirstName, user.LastName, user.BirthDate, user.Address,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT id, username, email, password, first_name, last_name, birth_date, address, created_at
	          FROM users WHERE email=$1`
	return r.scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	query := `SELECT id, username, email, password, first_name, last_name, birth_date, address, created_at
	          FROM users WHERE id=$1`
	return r.scanUser(r.DB.QueryRow(query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.BirthDate, &user.Address, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
