package model

import "time"

// Alert is a user-submitted text report with an optional photo. The image is
// held by the remote media store; ImageKey is the handle needed to delete it
// there and never leaves the server.
type Alert struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	ImageURL  *string   `json:"imageUrl"`
	ImageKey  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasImage reports whether the alert references a media store asset.
// ImageURL and ImageKey are always set or cleared together.
func (a *Alert) HasImage() bool {
	return a.ImageKey != ""
}

// SetImage points the alert at a new asset.
func (a *Alert) SetImage(url, key string) {
	a.ImageURL = &url
	a.ImageKey = key
}
