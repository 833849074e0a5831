// Package vehicle defines the closed set of truck categories a shipment can
// require and a carrier can operate. An order carries exactly one truck type;
// a carrier holds one or more as capabilities, and only capability holders
// may bid on a matching order.
package vehicle

import (
	"fmt"

	"freighthub/internal/pkg/errs"
)

// TruckType is a key from the vehicle taxonomy, e.g. "manipulator_10t".
type TruckType string

// Flat taxonomy of bookable truck categories.
const (
	Manipulator5t  TruckType = "manipulator_5t"
	Manipulator7t  TruckType = "manipulator_7t"
	Manipulator10t TruckType = "manipulator_10t"
	Manipulator12t TruckType = "manipulator_12t"
	Manipulator20t TruckType = "manipulator_20t"

	FlatbedVan3t     TruckType = "flatbed_van_3t"
	FlatbedVan5t     TruckType = "flatbed_van_5t"
	FlatbedVanRacks  TruckType = "flatbed_van_racks"
	BoxVan10m3       TruckType = "box_van_10m3"
	BoxVan15m3       TruckType = "box_van_15m3"
	BoxVan30m3       TruckType = "box_van_30m3"
	LongbedTarpaulin TruckType = "longbed_tarpaulin"
	LongbedPlatform  TruckType = "longbed_platform"
)

func truckTypeNames() map[TruckType]string {
	return map[TruckType]string{
		Manipulator5t:    "Crane truck 5t",
		Manipulator7t:    "Crane truck 7t",
		Manipulator10t:   "Crane truck 10t",
		Manipulator12t:   "Crane truck 12t",
		Manipulator20t:   "Crane truck 20t",
		FlatbedVan3t:     "Flatbed van 3t",
		FlatbedVan5t:     "Flatbed van 5t",
		FlatbedVanRacks:  "Flatbed van with racks 4.2m",
		BoxVan10m3:       "Box van 10m3",
		BoxVan15m3:       "Box van 15m3",
		BoxVan30m3:       "Box van 30m3",
		LongbedTarpaulin: "Longbed tarpaulin",
		LongbedPlatform:  "Longbed platform",
	}
}

// Validate checks that the truck type belongs to the known taxonomy.
func (t TruckType) Validate() error {
	if _, ok := truckTypeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"truck type",
			fmt.Errorf("%q is not a known truck type", string(t)),
		)
	}
	return nil
}

// String returns the taxonomy key.
func (t TruckType) String() string {
	return string(t)
}

// DisplayName returns the human-readable category name, or the raw key for
// unknown values.
func (t TruckType) DisplayName() string {
	if name, ok := truckTypeNames()[t]; ok {
		return name
	}
	return string(t)
}

// AllTruckTypes returns every bookable truck type, for display and validation lists.
func AllTruckTypes() []TruckType {
	names := truckTypeNames()
	all := make([]TruckType, 0, len(names))
	for t := range names {
		all = append(all, t)
	}
	return all
}
