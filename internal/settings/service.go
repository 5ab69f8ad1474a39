// Package settings manages the singleton site settings document.
package settings

import (
	"encoding/json"

	"backend/internal/store"
)

const defaultFeaturedCount = 3

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Get returns the full settings document.
func (s *Service) Get() map[string]json.RawMessage {
	return s.store.ReadSettings()
}

// Update shallow-merges the partial document at the top level only: a
// provided nested object replaces the stored one wholesale, it is not merged
// field by field. Returns the merged document after persisting it.
func (s *Service) Update(partial map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	doc := s.store.ReadSettings()
	for key, value := range partial {
		doc[key] = value
	}
	if err := s.store.WriteSettings(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FeaturedCount reads the homepage highlight size, falling back to the
// default when the field is missing, unparseable or not positive.
func (s *Service) FeaturedCount() int {
	raw, ok := s.Get()["featuredCount"]
	if !ok {
		return defaultFeaturedCount
	}

	var count int
	if err := json.Unmarshal(raw, &count); err != nil || count <= 0 {
		return defaultFeaturedCount
	}
	return count
}

// NotificationEmail returns the contact-form notification address from
// contactInfo, or the fallback when unset.
func (s *Service) NotificationEmail() string {
	raw, ok := s.Get()["contactInfo"]
	if !ok {
		return "admin@pepiniera.ro"
	}

	var contact struct {
		NotificationEmail string `json:"notificationEmail"`
	}
	if err := json.Unmarshal(raw, &contact); err != nil || contact.NotificationEmail == "" {
		return "admin@pepiniera.ro"
	}
	return contact.NotificationEmail
}
