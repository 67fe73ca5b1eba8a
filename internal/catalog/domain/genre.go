package domain

import "github.com/google/uuid"

// Genre groups videos and references the categories it belongs to.
type Genre struct {
	BaseEntity
	name       string
	categories []*Category
}

// NewGenre creates a genre with no categories.
func NewGenre(name string) (*Genre, error) {
	genre := &Genre{
		BaseEntity: NewBaseEntity(),
		categories: make([]*Category, 0),
	}
	if err := genre.SetName(name); err != nil {
		return nil, err
	}
	return genre, nil
}

// NewGenreWithCategories creates a genre with a generated id.
func NewGenreWithCategories(name string, categories []*Category) (*Genre, error) {
	return newGenre(NewBaseEntity(), name, categories)
}

// NewGenreWithID creates a genre with a caller-supplied id.
func NewGenreWithID(id uuid.UUID, name string, categories []*Category) (*Genre, error) {
	base, err := NewBaseEntityWithID(id)
	if err != nil {
		return nil, err
	}
	return newGenre(base, name, categories)
}

func newGenre(base BaseEntity, name string, categories []*Category) (*Genre, error) {
	genre := &Genre{BaseEntity: base}
	if err := genre.SetName(name); err != nil {
		return nil, err
	}
	if err := genre.SetCategories(categories); err != nil {
		return nil, err
	}
	return genre, nil
}

// Name returns the genre name
func (g *Genre) Name() string {
	return g.name
}

// SetName sets the genre name
func (g *Genre) SetName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	g.name = name
	return nil
}

// Categories returns a copy of the categories in insertion order
func (g *Genre) Categories() []*Category {
	return copyRefs(g.categories)
}

// SetCategories replaces the categories with a copy of the given slice.
// Elements are not checked.
func (g *Genre) SetCategories(categories []*Category) error {
	if categories == nil {
		return NewValidationError("categories", "is marked non-null but is null")
	}
	g.categories = copyRefs(categories)
	return nil
}

// AddCategory appends a category. Duplicates are kept.
func (g *Genre) AddCategory(category *Category) error {
	if category == nil {
		return NewValidationError("category", "is marked non-null but is null")
	}
	g.categories = append(g.categories, category)
	return nil
}

// RemoveCategory removes every occurrence of category.
func (g *Genre) RemoveCategory(category *Category) error {
	if category == nil {
		return NewValidationError("category", "is marked non-null but is null")
	}
	g.categories = removeRef(g.categories, category)
	return nil
}
