package models

import (
	"time"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
)

// VendorApplication is a restaurant owner waiting for platform review.
type VendorApplication struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Email         string                        `json:"email"`
	Cuisine       string                        `json:"cuisine"`
	Phone         string                        `json:"phone"`
	Address       string                        `json:"address"`
	SubmittedDate time.Time                     `json:"submittedDate"`
	Status        enums.VendorApplicationStatus `json:"status"`
}
