package model

import "time"

// Metadata carries the fields shared by every registry record.
// ID is minted at creation and never changes afterwards; Name is unique
// among live records of the same entity type.
type Metadata struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Meta exposes the embedded metadata to the generic service pipeline.
func (m *Metadata) Meta() *Metadata { return m }

// Location places a System either at a geographic coordinate pair or at a
// virtual address, never both. A latitude or longitude of exactly 0 is
// treated as unset, so a record sitting on the equator or prime meridian
// cannot be expressed as a coordinate pair.
type Location struct {
	Latitude        float64 `json:"latitude" bson:"latitude"`
	Longitude       float64 `json:"longitude" bson:"longitude"`
	VirtualLocation string  `json:"virtualLocation" bson:"virtual_location"`
}

// HasCoordinates reports whether both coordinates are set under the
// zero-means-unset convention.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 && l.Longitude != 0
}

// HasVirtualLocation reports whether the virtual address is set.
func (l Location) HasVirtualLocation() bool {
	return l.VirtualLocation != ""
}

type System struct {
	Metadata              `bson:",inline"`
	Organisation          string   `json:"organisation" bson:"organisation"`
	Location              Location `json:"location" bson:"location"`
	AdditionalInformation []any    `json:"additionalInformation,omitempty" bson:"additional_information,omitempty"`
}

type Vendor struct {
	Metadata `bson:",inline"`
}

type AssetCategory struct {
	Metadata `bson:",inline"`
}

// Record is the constraint the generic pipeline places on entity pointers.
type Record[E any] interface {
	*E
	Meta() *Metadata
}
