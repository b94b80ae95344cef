package domain

import "time"

type Item struct {
	ID          uint64
	Name        string
	Description *string
	Price       float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type CreateItemInput struct {
	Name        string
	Description *string
	Price       float64
	IsActive    bool
}

type UpdateItemInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Price          *float64
	IsActive       *bool
}

type ItemFilter struct {
	IsActive *bool
}
