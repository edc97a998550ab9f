package domain

import (
	"encoding/json"
	"time"
)

// Annotation is a single user-drawn artifact on one page of an instance's
// document. Data is the type-specific payload (coordinates, color, lines);
// its structure is determined by the annotation type and is not validated here.
type Annotation struct {
	ID           int64
	InstanceID   int64
	Page         int
	UserID       int64
	TypeID       int64
	ItemID       int64
	Data         json.RawMessage
	TimeCreated  time.Time
	TimeModified time.Time
}

// AnnotationType names one of the markup kinds (highlight, strikeout, area,
// textbox, drawing, comment, point).
type AnnotationType struct {
	ID   int64
	Name string
}

// Annotation type names as seeded by the migrations.
const (
	TypeHighlight = "highlight"
	TypeStrikeout = "strikeout"
	TypeArea      = "area"
	TypeTextbox   = "textbox"
	TypeDrawing   = "drawing"
	TypeComment   = "comment"
	TypePoint     = "point"
)
