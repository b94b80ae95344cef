package dto

type ItemResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
	IsActive    *bool    `json:"is_active" binding:"omitempty"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active" binding:"omitempty"`
}
