package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive = "active"
)

// RequestContext carries the authenticated caller.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

func (rc RequestContext) Authenticated() bool {
	return rc.UserID > 0
}

func (rc RequestContext) IsAdmin() bool {
	return rc.Role == RoleAdmin
}
