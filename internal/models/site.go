package models

import (
	"time"
)

// SiteStatus is the last known connection state of a site
type SiteStatus string

const (
	SiteStatusConnected    SiteStatus = "connected"
	SiteStatusDisconnected SiteStatus = "disconnected"
	SiteStatusUntested     SiteStatus = "untested"
)

// Site represents a registered WordPress installation with stored credentials.
// URL is always normalized (scheme present, no trailing slash) before storage.
type Site struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	URL          string     `json:"url" db:"url"`
	Username     string     `json:"username" db:"username"`
	Password     string     `json:"-" db:"password"`
	Active       bool       `json:"active" db:"active"`
	LastStatus   SiteStatus `json:"last_status" db:"last_status"`
	LastTestedAt *time.Time `json:"last_tested_at,omitempty" db:"last_tested_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// View returns the outward-facing representation of the site. The raw
// password never appears in any serialized view.
func (s *Site) View() *SiteView {
	return &SiteView{
		ID:           s.ID,
		Name:         s.Name,
		URL:          s.URL,
		Username:     s.Username,
		Active:       s.Active,
		LastStatus:   s.LastStatus,
		LastTestedAt: s.LastTestedAt,
		CreatedAt:    s.CreatedAt,
	}
}

// SiteView is the serialized form of a site returned to callers
type SiteView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Username     string     `json:"username"`
	Active       bool       `json:"active"`
	LastStatus   SiteStatus `json:"last_status"`
	LastTestedAt *time.Time `json:"last_tested_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SiteRequest is the payload for creating or updating a site
type SiteRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ConnectionTestRequest carries ad-hoc credentials for a connection test
type ConnectionTestRequest struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}
