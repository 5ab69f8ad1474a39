// Package catalog implements product CRUD over the JSON file store.
package catalog

import (
	"errors"
	"strconv"
	"strings"

	"backend/internal/models"
	"backend/internal/slug"
	"backend/internal/store"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrMissingFields = errors.New("missing required fields")
)

const placeholderImage = "/images/placeholder.jpg"

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

type CreateInput struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	DiscountedPrice *string  `json:"discountedPrice"`
	Images          []string `json:"images"`
	Featured        bool     `json:"featured"`
}

// UpdateInput carries a partial update; nil pointers mean "leave unchanged".
type UpdateInput struct {
	Name            *string   `json:"name"`
	Category        *string   `json:"category"`
	Description     *string   `json:"description"`
	Price           *string   `json:"price"`
	DiscountedPrice *string   `json:"discountedPrice"`
	Images          *[]string `json:"images"`
	Featured        *bool     `json:"featured"`
}

// ListAll returns every product in store order.
func (s *Service) ListAll() []models.Product {
	return s.store.ReadProducts()
}

// ListFeatured returns products flagged featured first, in store order, then
// fills with non-featured products until limit is reached. The result never
// exceeds limit.
func (s *Service) ListFeatured(limit int) []models.Product {
	products := s.store.ReadProducts()

	featured := make([]models.Product, 0, limit)
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	if len(featured) < limit {
		for _, p := range products {
			if len(featured) >= limit {
				break
			}
			if !p.Featured {
				featured = append(featured, p)
			}
		}
	}

	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

// GetBySlugOrID looks up by exact slug first; when no slug matches and the
// key parses as an integer it falls back to an id match. A slug that happens
// to be numeric text wins over the id with the same number.
func (s *Service) GetBySlugOrID(key string) (models.Product, error) {
	products := s.store.ReadProducts()

	for _, p := range products {
		if p.Slug == key {
			return p, nil
		}
	}

	if id, err := strconv.Atoi(key); err == nil {
		for _, p := range products {
			if p.ID == id {
				return p, nil
			}
		}
	}

	return models.Product{}, ErrNotFound
}

// Create validates the required fields, assigns the next id and the slug,
// applies image defaults and persists the grown collection.
func (s *Service) Create(input CreateInput) (models.Product, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Price) == "" {
		return models.Product{}, ErrMissingFields
	}

	products := s.store.ReadProducts()

	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	product := models.Product{
		ID:              maxID + 1,
		Slug:            slug.Make(input.Name),
		Name:            input.Name,
		Category:        input.Category,
		Description:     input.Description,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		Images:          models.ImageList(images),
		Image:           images[0], // kept for backwards compatibility
		Featured:        input.Featured,
	}

	products = append(products, product)
	if err := s.store.WriteProducts(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update shallow-merges the provided fields over the stored record. The id
// is preserved and the slug is regenerated only when the name changes.
func (s *Service) Update(id int, input UpdateInput) (models.Product, error) {
	products := s.store.ReadProducts()

	index := -1
	for i := range products {
		if products[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Product{}, ErrNotFound
	}

	p := products[index]

	if input.Name != nil && *input.Name != p.Name {
		p.Name = *input.Name
		p.Slug = slug.Make(p.Name)
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.DiscountedPrice != nil {
		p.DiscountedPrice = input.DiscountedPrice
	}
	if input.Images != nil {
		p.Images = models.ImageList(*input.Images)
		if len(p.Images) > 0 {
			p.Image = p.Images[0]
		} else {
			p.Image = placeholderImage
			p.Images = models.ImageList{placeholderImage}
		}
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}

	products[index] = p
	if err := s.store.WriteProducts(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes the matching record. Uploaded image files are not cleaned
// up.
func (s *Service) Delete(id int) error {
	products := s.store.ReadProducts()

	remaining := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(products) {
		return ErrNotFound
	}

	return s.store.WriteProducts(remaining)
}
