// README: Places an itinerary visits, with the fare region they belong to.
package place

import (
	"errors"

	"explore/internal/types"
)

var ErrNotFound = errors.New("place not found")

type Place struct {
	ID       types.ID     `json:"id"`
	Name     string       `json:"name"`
	Region   types.Region `json:"region"`
	Location types.Point  `json:"location"`
}
