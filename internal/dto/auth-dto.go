package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=Admin Supervisor Employee"`
}

type AuthResponseDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}
