package domain

import (
	"strings"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Score maps a sentiment onto [0,1] for the directory averages.
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 1.0
	case SentimentNeutral:
		return 0.5
	default:
		return 0.0
	}
}

type Feedback struct {
	ID              int32     `json:"id"`
	OrgID           int32     `json:"org_id"`
	EmployeeID      int32     `json:"employee_id"`
	ManagerID       int32     `json:"manager_id"`
	Strengths       string    `json:"strengths"`
	Improvements    string    `json:"improvements"`
	Sentiment       Sentiment `json:"sentiment"`
	Tags            []string  `json:"tags"`
	Acknowledged    bool      `json:"acknowledged"`
	EmployeeComment *string   `json:"employee_comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Display names, populated on reads.
	EmployeeName string `json:"employee_name,omitempty"`
	ManagerName  string `json:"manager_name,omitempty"`
}

// ManagerStats aggregates a manager's team and authored feedback.
type ManagerStats struct {
	TotalEmployees        int32           `json:"total_employees"`
	TotalFeedback         int32           `json:"total_feedback"`
	PendingRequests       int32           `json:"pending_requests"`
	SentimentDistribution map[string]int32 `json:"sentiment_distribution"`
}

// NormalizeTags trims entries, drops empties and deduplicates while
// preserving first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
