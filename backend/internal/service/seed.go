package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	"github.com/diskominfo-bogor/sipmang/shared/errors"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

// AdminSeed is a default account the seeder guarantees to exist.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// DefaultAdmins returns the two bootstrap accounts.
func DefaultAdmins() []AdminSeed {
	return []AdminSeed{
		{Username: "admin", Email: "admin@diskominfo.bogorkab.go.id", Password: "admin123"},
		{Username: "operator", Email: "operator@diskominfo.bogorkab.go.id", Password: "operator123"},
	}
}

type AdminStore interface {
	AdminByEmail(email string) (domain.Admin, error)
	SaveAdmin(admin domain.Admin) (domain.AdminId, error)
	UpdateAdmin(admin domain.Admin) error
}

type Seeder struct {
	storage AdminStore
}

func NewSeeder(storage AdminStore) *Seeder {
	return &Seeder{storage: storage}
}

// EnsureAdmins upserts each seed account: create when the email is unknown,
// otherwise refresh the password hash and backfill an empty username.
// Idempotent; each account is handled independently, so an interruption can
// leave later accounts untouched until the next run.
func (s *Seeder) EnsureAdmins(seeds []AdminSeed) error {
	for _, seed := range seeds {
		if err := s.ensureAdmin(seed); err != nil {
			return fmt.Errorf("ensure admin %s: %w", seed.Email, err)
		}
	}
	return nil
}

func (s *Seeder) ensureAdmin(seed AdminSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	existing, err := s.storage.AdminByEmail(seed.Email)
	if err != nil {
		if !errors.IsNotFound(err) {
			return err
		}
		id, err := s.storage.SaveAdmin(domain.Admin{Username: seed.Username, Email: seed.Email, PassHash: string(hash)})
		if err != nil {
			return err
		}
		logger.Log.Info("created admin", "email", seed.Email, "id", id)
		return nil
	}

	if existing.Username == "" {
		existing.Username = seed.Username
	}
	existing.PassHash = string(hash)
	if err := s.storage.UpdateAdmin(existing); err != nil {
		return err
	}
	logger.Log.Info("updated admin", "email", seed.Email)
	return nil
}
