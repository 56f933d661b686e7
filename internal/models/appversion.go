package models

import "time"

// AppVersion - запись о минимальной/последней версии мобильного приложения
type AppVersion struct {
	Platform      string    `json:"platform"`
	MinVersion    string    `json:"min_version"`
	LatestVersion string    `json:"latest_version"`
	DownloadURL   *string   `json:"download_url,omitempty"`
	ReleaseNotes  *string   `json:"release_notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
