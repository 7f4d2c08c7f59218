package model

import (
	"encoding/json"
	"time"
)

// ContentSection is one editable block of site content (navbar, footer,
// home, academics, gallery, and so on), persisted server side and keyed by
// section name. The payload is opaque JSON; the front end owns its shape.
type ContentSection struct {
	Section   string          `json:"section" db:"section"`
	Data      json.RawMessage `json:"data" db:"data"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
