package domain

import "github.com/google/uuid"

// Category is a named classification referenced by genres and videos.
type Category struct {
	BaseEntity
	name        string
	description string
}

// CategoryOption configures optional category fields.
type CategoryOption func(*categoryOptions)

type categoryOptions struct {
	id          *uuid.UUID
	description string
}

// WithCategoryID uses id instead of generating one.
func WithCategoryID(id uuid.UUID) CategoryOption {
	return func(o *categoryOptions) {
		o.id = &id
	}
}

// WithCategoryDescription sets the category description.
func WithCategoryDescription(description string) CategoryOption {
	return func(o *categoryOptions) {
		o.description = description
	}
}

// NewCategory creates a new Category with validation
func NewCategory(name string, opts ...CategoryOption) (*Category, error) {
	var o categoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	base, err := newBaseEntity(o.id)
	if err != nil {
		return nil, err
	}

	category := &Category{BaseEntity: base}
	if err := category.SetName(name); err != nil {
		return nil, err
	}
	category.SetDescription(o.description)
	return category, nil
}

// Name returns the category name
func (c *Category) Name() string {
	return c.name
}

// SetName sets the category name
func (c *Category) SetName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// Description returns the category description
func (c *Category) Description() string {
	return c.description
}

// SetDescription sets the category description
func (c *Category) SetDescription(description string) {
	c.description = description
}
