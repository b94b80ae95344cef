package dto

// UserResponse never exposes the hashed password.
type UserResponse struct {
	ID        uint64  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FullName  *string `json:"full_name"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Username string  `json:"username" binding:"required,min=3,max=50"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
	Password string  `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}
