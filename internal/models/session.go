package models

import "time"

// Role is the authorization role attached to an authenticated user.
type Role string

const (
	RoleClient    Role = "client"
	RoleTherapist Role = "therapist"
	RoleAdmin     Role = "admin"
)

// CanViewClients reports whether the role may view another user's data.
func (r Role) CanViewClients() bool {
	return r == RoleTherapist || r == RoleAdmin
}

// User is an authenticated user of the service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ViewSelection is the persisted "viewing client" choice for a therapist or
// admin. At most one row per user; clients never have one.
type ViewSelection struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	ClientID  string    `json:"client_id" gorm:"column:client_id;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the gorm table name for view selections.
func (ViewSelection) TableName() string {
	return "view_selections"
}

// ActiveUser is the result of active-user resolution: whose records should
// be fetched for this request.
type ActiveUser struct {
	UserID          string `json:"user_id"`
	IsViewingClient bool   `json:"is_viewing_client"`
	PathPrefix      string `json:"path_prefix"`
}
