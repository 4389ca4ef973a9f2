package entity

import (
	"time"
)

// FoodItem is a reference catalog entry describing how a food is commonly
// adulterated and how to detect it. HomeRemedies and LabTests are open
// string-to-string mappings; keys are content-driven (e.g. a remedy name).
type FoodItem struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Category    string `json:"category" firestore:"category"`
	Description string `json:"description" firestore:"description"`

	AdulterationTypes []string          `json:"adulteration_types" firestore:"adulterationTypes"`
	HealthIssues      []string          `json:"health_issues" firestore:"healthIssues"`
	HomeRemedies      map[string]string `json:"home_remedies,omitempty" firestore:"homeRemedies,omitempty"`
	LabTests          map[string]string `json:"lab_tests,omitempty" firestore:"labTests,omitempty"`

	PreventionTips  string   `json:"prevention_tips,omitempty" firestore:"preventionTips,omitempty"`
	YoutubeLinks    []string `json:"youtube_links,omitempty" firestore:"youtubeLinks,omitempty"`
	RelatedArticles []string `json:"related_articles,omitempty" firestore:"relatedArticles,omitempty"`
	ImageURL        string   `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Tags            []string `json:"tags,omitempty" firestore:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
