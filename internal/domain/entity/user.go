package entity

import (
	"time"
)

type User struct {
	ID      string `json:"id" firestore:"id"`
	Email   string `json:"email" firestore:"email"`
	Name    string `json:"name" firestore:"name"`
	Picture string `json:"picture,omitempty" firestore:"picture,omitempty"`
	Role    string `json:"role" firestore:"role"`

	VerificationScore     int `json:"verification_score" firestore:"verificationScore"`
	ReportsSubmitted      int `json:"reports_submitted" firestore:"reportsSubmitted"`
	VerificationsProvided int `json:"verifications_provided" firestore:"verificationsProvided"`

	JoinedDate time.Time `json:"joined_date" firestore:"joinedDate"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
