package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	"github.com/diskominfo-bogor/sipmang/shared/errors"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

// User-facing messages. The 401 message is identical for unknown emails and
// wrong passwords so the endpoint cannot be used to enumerate accounts.
const (
	MsgMissingCredentials = "Email dan password wajib diisi"
	MsgBadCredentials     = "Email atau password salah"
)

type AuthService interface {
	Login(creds domain.Credentials) (domain.AdminProfile, error)
}

type AdminReader interface {
	AdminByEmail(email string) (domain.Admin, error)
}

type Auth struct {
	storage AdminReader
}

func NewAuth(storage AdminReader) *Auth {
	return &Auth{storage: storage}
}

// Login verifies the credential pair against the stored hash and returns the
// public admin profile. The hash itself never leaves this method.
func (a *Auth) Login(creds domain.Credentials) (domain.AdminProfile, error) {
	if creds.Email == "" || creds.Password == "" {
		return domain.AdminProfile{}, &errors.ErrorWithStatusCode{Message: MsgMissingCredentials, StatusCode: http.StatusBadRequest}
	}

	admin, err := a.storage.AdminByEmail(creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.AdminProfile{}, &errors.ErrorWithStatusCode{Message: MsgBadCredentials, StatusCode: http.StatusUnauthorized}
		}
		logger.Log.Error("admin lookup failed", "error", err)
		return domain.AdminProfile{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(creds.Password)); err != nil {
		return domain.AdminProfile{}, &errors.ErrorWithStatusCode{Message: MsgBadCredentials, StatusCode: http.StatusUnauthorized}
	}

	return admin.Profile(), nil
}
