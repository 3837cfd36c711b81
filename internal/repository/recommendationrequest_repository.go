package repository

import (
	"github.com/jbweber/homelab/campus/internal/domain"
)

// RecommendationRequestRepository stores recommendation requests
type RecommendationRequestRepository interface {
	Repository[domain.RecommendationRequest, int64]
}

// NewRecommendationRequestRepository creates a repository backed by the recommendation_requests table
func NewRecommendationRequestRepository(stmts *StatementCache) RecommendationRequestRepository {
	return newSQLRepository(stmts, table[domain.RecommendationRequest]{
		name:    "recommendation_requests",
		kind:    "recommendation request",
		columns: []string{"requester_email", "professor_email", "explanation", "date_requested", "date_needed", "done"},
		scan: func(row rowScanner) (domain.RecommendationRequest, error) {
			var r domain.RecommendationRequest
			err := row.Scan(&r.ID, &r.RequesterEmail, &r.ProfessorEmail, &r.Explanation, &r.DateRequested, &r.DateNeeded, &r.Done)
			return r, err
		},
		values: func(r domain.RecommendationRequest) []any {
			return []any{r.RequesterEmail, r.ProfessorEmail, r.Explanation, r.DateRequested, r.DateNeeded, r.Done}
		},
	})
}
