package enums

import "fmt"

// VendorApplicationStatus tracks the review state of a vendor application.
// Applications transition away from pending exactly once.
type VendorApplicationStatus string

const (
	VendorApplicationStatusPending  VendorApplicationStatus = "pending"
	VendorApplicationStatusApproved VendorApplicationStatus = "approved"
	VendorApplicationStatusRejected VendorApplicationStatus = "rejected"
)

var validVendorApplicationStatuses = []VendorApplicationStatus{
	VendorApplicationStatusPending,
	VendorApplicationStatusApproved,
	VendorApplicationStatusRejected,
}

// String implements fmt.Stringer.
func (v VendorApplicationStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VendorApplicationStatus.
func (v VendorApplicationStatus) IsValid() bool {
	for _, candidate := range validVendorApplicationStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// IsDecided reports whether the application has already been reviewed.
func (v VendorApplicationStatus) IsDecided() bool {
	return v == VendorApplicationStatusApproved || v == VendorApplicationStatusRejected
}

// ParseVendorApplicationStatus converts raw input into a VendorApplicationStatus.
func ParseVendorApplicationStatus(value string) (VendorApplicationStatus, error) {
	for _, candidate := range validVendorApplicationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vendor application status %q", value)
}
