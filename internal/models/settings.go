package models

import (
	"time"
)

// Settings are per-user interface and content generation preferences
type Settings struct {
	UserID             string    `json:"-" db:"user_id"`
	Theme              string    `json:"theme" db:"theme"`
	Language           string    `json:"language" db:"language"`
	Notifications      bool      `json:"notifications" db:"notifications"`
	AutoSave           bool      `json:"auto_save" db:"auto_save"`
	DefaultContentType string    `json:"default_content_type" db:"default_content_type"`
	DefaultTone        string    `json:"default_tone" db:"default_tone"`
	DefaultWordCount   int       `json:"default_word_count" db:"default_word_count"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultSettings returns the values applied before a user saves anything
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:             userID,
		Theme:              "system",
		Language:           "en",
		Notifications:      true,
		AutoSave:           true,
		DefaultContentType: "blog",
		DefaultTone:        "professional",
		DefaultWordCount:   1000,
	}
}

// SettingsUpdateRequest carries a partial settings change; nil fields keep
// their current values
type SettingsUpdateRequest struct {
	Theme              *string `json:"theme,omitempty"`
	Language           *string `json:"language,omitempty"`
	Notifications      *bool   `json:"notifications,omitempty"`
	AutoSave           *bool   `json:"auto_save,omitempty"`
	DefaultContentType *string `json:"default_content_type,omitempty"`
	DefaultTone        *string `json:"default_tone,omitempty"`
	DefaultWordCount   *int    `json:"default_word_count,omitempty"`
}
