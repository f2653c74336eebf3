package employee

const DateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Department  string `json:"department" binding:"required"`
	JoiningDate string `json:"joiningDate" binding:"required,datetime=2006-01-02"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// UpdateEmployeeRequest keeps the stored password when Password is blank.
type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Department  string `json:"department" binding:"required"`
	JoiningDate string `json:"joiningDate" binding:"required,datetime=2006-01-02"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"omitempty,min=6"`
	Role        string `json:"role" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	JoiningDate string `json:"joiningDate"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	StatusColor string `json:"statusColor"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}
