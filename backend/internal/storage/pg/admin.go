package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

// AdminByEmail fetches a single administrator by exact email match.
func (s *Storage) AdminByEmail(email string) (domain.Admin, error) {
	return s.adminByEmail(s.db, email)
}

// SaveAdmin inserts a new administrator record.
func (s *Storage) SaveAdmin(admin domain.Admin) (domain.AdminId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var id domain.AdminId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveAdmin(tx, admin)
		return err
	})
	return id, err
}

// UpdateAdmin overwrites the username and password hash of the administrator
// with the given email.
func (s *Storage) UpdateAdmin(admin domain.Admin) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateAdmin(tx, admin)
	})
}

func (s *Storage) adminByEmail(q Querier, email string) (domain.Admin, error) {
	var admin domain.Admin
	err := q.QueryRow("SELECT id, username, email, password_hash FROM admins WHERE email = $1", email).
		Scan(&admin.Id, &admin.Username, &admin.Email, &admin.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Admin{}, &internal_errors.ErrorWithStatusCode{Message: "Admin not found", StatusCode: http.StatusNotFound}
		}
		return domain.Admin{}, fmt.Errorf("failed to query admin: %w", err)
	}
	return admin, nil
}

func (s *Storage) saveAdmin(q Querier, admin domain.Admin) (domain.AdminId, error) {
	var id domain.AdminId
	err := q.QueryRow("INSERT INTO admins(username, email, password_hash) VALUES($1, $2, $3) RETURNING id",
		admin.Username, admin.Email, admin.PassHash).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert admin: %w", err)
	}
	return id, nil
}

func (s *Storage) updateAdmin(q Querier, admin domain.Admin) error {
	result, err := q.Exec("UPDATE admins SET username = $1, password_hash = $2 WHERE email = $3",
		admin.Username, admin.PassHash, admin.Email)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for admin update: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Admin not found for update", StatusCode: http.StatusNotFound}
	}
	return nil
}
