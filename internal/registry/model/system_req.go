package model

import "strings"

// SystemRequest is the inbound payload for creating or updating a System.
type SystemRequest struct {
	Name                  string   `json:"name" validate:"required,max=255"`
	Description           string   `json:"description" validate:"required,max=1024"`
	Organisation          string   `json:"organisation" validate:"omitempty,max=255"`
	Location              Location `json:"location"`
	AdditionalInformation []any    `json:"additionalInformation,omitempty"`
}

func (r *SystemRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Organisation = strings.TrimSpace(r.Organisation)
	r.Location.VirtualLocation = strings.TrimSpace(r.Location.VirtualLocation)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	return validateLocation(r.Location)
}

// validateLocation enforces that exactly one of the two location forms is
// present. Coordinates follow the zero-means-unset convention, so a pair
// with either value at exactly 0 does not count as a coordinate location.
func validateLocation(loc Location) error {
	virtual := loc.HasVirtualLocation()
	coords := loc.HasCoordinates()

	if virtual == coords {
		return &FieldError{
			Key:     KeyInvalidLocationStructure,
			Message: "A system location must be either a latitude/longitude pair or a virtual location, and not both",
		}
	}
	if virtual && (loc.Latitude != 0 || loc.Longitude != 0) {
		return &FieldError{
			Key:     KeyInvalidLocationStructure,
			Message: "A system location must be either a latitude/longitude pair or a virtual location, and not both",
		}
	}
	return nil
}
