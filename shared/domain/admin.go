package domain

type AdminId = int64

// Admin is a privileged account permitted to view and manage submissions.
// PassHash never leaves the auth service.
type Admin struct {
	Id       AdminId
	Username string
	Email    string
	PassHash string
}

// AdminProfile is the public projection of an Admin, safe to serialize.
type AdminProfile struct {
	Id       AdminId `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
}

func (a Admin) Profile() AdminProfile {
	return AdminProfile{Id: a.Id, Username: a.Username, Email: a.Email}
}

type Credentials struct {
	Email    string
	Password string
}
