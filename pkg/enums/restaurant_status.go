package enums

import "fmt"

// RestaurantStatus reflects the platform approval state of a restaurant.
type RestaurantStatus string

const (
	RestaurantStatusApproved RestaurantStatus = "approved"
	RestaurantStatusPending  RestaurantStatus = "pending"
	RestaurantStatusRejected RestaurantStatus = "rejected"
)

var validRestaurantStatuses = []RestaurantStatus{
	RestaurantStatusApproved,
	RestaurantStatusPending,
	RestaurantStatusRejected,
}

// String implements fmt.Stringer.
func (r RestaurantStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RestaurantStatus.
func (r RestaurantStatus) IsValid() bool {
	for _, candidate := range validRestaurantStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRestaurantStatus converts raw input into a RestaurantStatus.
func ParseRestaurantStatus(value string) (RestaurantStatus, error) {
	for _, candidate := range validRestaurantStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid restaurant status %q", value)
}
