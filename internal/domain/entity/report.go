package entity

import (
	"time"

	"shuddhify/pkg/geo"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
	StatusResolved = "resolved"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// AdulterationTypes is the closed set of accepted adulteration categories.
var AdulterationTypes = []string{
	"color_adulteration",
	"chemical_contamination",
	"foreign_substance",
	"expired_product",
	"mislabeling",
	"other",
}

// MaxDescriptionLength bounds the free-text description on a report.
const MaxDescriptionLength = 500

type Location struct {
	ShopName    string    `json:"shop_name" firestore:"shopName"`
	Address     string    `json:"address" firestore:"address"`
	Area        string    `json:"area" firestore:"area"`
	City        string    `json:"city" firestore:"city"`
	Coordinates geo.Point `json:"coordinates" firestore:"coordinates"`
}

// Verification records one user's corroboration of a report. A user appears
// at most once per report.
type Verification struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

type Report struct {
	ID               string         `json:"id" firestore:"id"`
	FoodItem         string         `json:"food_item" firestore:"foodItem"`
	Location         Location       `json:"location" firestore:"location"`
	AdulterationType string         `json:"adulteration_type" firestore:"adulterationType"`
	Severity         string         `json:"severity" firestore:"severity"`
	Description      string         `json:"description" firestore:"description"`
	Status           string         `json:"status" firestore:"status"`
	Images           []string       `json:"images,omitempty" firestore:"images,omitempty"`
	ReportedBy       string         `json:"reported_by" firestore:"reportedBy"`
	VerifiedBy       []Verification `json:"verified_by" firestore:"verifiedBy"`
	VerificationCount int           `json:"verification_count" firestore:"verificationCount"`
	ReportDate       time.Time      `json:"report_date" firestore:"reportDate"`
	UpdatedAt        time.Time      `json:"updated_at" firestore:"updatedAt"`
}

// Active reports whether the report should appear on map and hotspot views.
func (r *Report) Active() bool {
	return r.Status == StatusPending || r.Status == StatusVerified
}

// VerifiedByUser reports whether the given user already verified this report.
func (r *Report) VerifiedByUser(userID string) bool {
	for _, v := range r.VerifiedBy {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

func ValidAdulterationType(t string) bool {
	for _, known := range AdulterationTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}
