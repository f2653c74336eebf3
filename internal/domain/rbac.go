package domain

const (
	RoleDirector    = "Director"
	RoleProjectHead = "Project Head"
	RoleEmployee    = "Employee"
)

var Roles = []string{RoleDirector, RoleProjectHead, RoleEmployee}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Actor is the authenticated caller, resolved from the access token on every request.
type Actor struct {
	EmployeeID string
	Name       string
	Role       string
}

func (a Actor) IsDirector() bool {
	return a.Role == RoleDirector
}

func (a Actor) IsProjectHead() bool {
	return a.Role == RoleProjectHead
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
