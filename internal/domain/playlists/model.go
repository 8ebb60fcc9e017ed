package playlists

import (
	"strings"
	"time"
)

// Known focus-music platforms.
const (
	PlatformYouTube = "youtube"
	PlatformSpotify = "spotify"
	PlatformUnknown = "unknown"
)

// Playlist is a user-added focus-music playlist. Creating one is a premium
// feature, but enforcement lives in the calling surface, not here.
type Playlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	Platform  string    `gorm:"type:varchar(20);not null;default:'unknown'" json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// DetectPlatform infers the platform from well-known URL substrings.
func DetectPlatform(url string) string {
	switch {
	case strings.Contains(url, "youtube.com"), strings.Contains(url, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(url, "spotify.com"):
		return PlatformSpotify
	default:
		return PlatformUnknown
	}
}
