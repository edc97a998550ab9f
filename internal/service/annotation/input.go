package annotation

import (
	"encoding/json"

	"github.com/annothub/annotator-backend/internal/domain"
)

// CreateInput carries the parameters for creating an annotation.
// Type/item consistency is the caller's responsibility; the payload is stored
// opaque.
type CreateInput struct {
	InstanceID int64
	Page       int
	TypeID     int64
	ItemID     int64
	Data       json.RawMessage
}

// Validate checks structural constraints on the input.
func (in CreateInput) Validate() error {
	if in.InstanceID <= 0 {
		return domain.NewValidationError("instanceId", "must be positive")
	}
	if in.Page <= 0 {
		return domain.NewValidationError("page", "must be positive")
	}
	if in.TypeID <= 0 {
		return domain.NewValidationError("typeId", "must be positive")
	}
	return nil
}
