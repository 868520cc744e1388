package handler

import (
	"net/http"

	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
	"github.com/diskominfo-bogor/sipmang/shared/utils"
)

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type loginResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Admin   domain.AdminProfile `json:"admin"`
}

// Login handles POST /api/admin/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		// Missing or malformed fields collapse into the same user-facing 400.
		utils.WriteError(w, &internal_errors.ErrorWithStatusCode{
			Message:    service.MsgMissingCredentials,
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	profile, err := h.auth.Login(domain.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login berhasil",
		Admin:   profile,
	})
}
