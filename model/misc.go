package model

import "time"

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot status message shown on the next rendered page
type Flash struct {
	Category string
	Message  string
}

// BaseData struct to pass value to the base template
type BaseData struct {
	Active      string
	CurrentUser string
}

// GalleryImage model
type GalleryImage struct {
	File      string    `json:"file"`
	Caption   string    `json:"caption"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
