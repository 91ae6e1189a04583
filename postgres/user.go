package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

type UserStore struct {
	Driver *Driver
}

const userColumns = `id, first_name, last_name, login, password_hash, tier`

func (s *UserStore) Get(id int64) (*docscabinet.User, error) {
	return s.get(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *UserStore) GetByLogin(login string) (*docscabinet.User, error) {
	return s.get(`SELECT `+userColumns+` FROM users WHERE login = $1`, login)
}

func (s *UserStore) get(query string, arg any) (*docscabinet.User, error) {
	user := docscabinet.User{}
	err := s.Driver.db.QueryRow(query, arg).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Login, &user.PasswordHash, &user.Tier,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &user, nil
}

func (s *UserStore) FindAndCount(limit, offset int) ([]docscabinet.User, int, error) {
	total := 0
	if err := s.Driver.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	rows, err := s.Driver.db.Query(
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]docscabinet.User, 0, limit)
	for rows.Next() {
		user := docscabinet.User{}
		err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Login, &user.PasswordHash, &user.Tier)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return users, total, nil
}

func (s *UserStore) Insert(user *docscabinet.User) error {
	query := `INSERT INTO users (first_name, last_name, login, password_hash, tier)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := s.Driver.db.QueryRow(query,
		user.FirstName, user.LastName, user.Login, user.PasswordHash, int(user.Tier),
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *UserStore) Update(user *docscabinet.User) error {
	query := `UPDATE users
	          SET first_name = $1, last_name = $2, login = $3, password_hash = $4, tier = $5
	          WHERE id = $6`

	_, err := s.Driver.db.Exec(query,
		user.FirstName, user.LastName, user.Login, user.PasswordHash, int(user.Tier), user.ID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *UserStore) Delete(id int64) (int, error) {
	res, err := s.Driver.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return int(affected), nil
}
