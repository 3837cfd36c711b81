package api

import "github.com/jbweber/homelab/campus/internal/domain"

// Create decoders. Every field is a required query parameter; the first
// missing one is reported through q.Err.

func helpRequestFromQuery(q *queryParams) domain.HelpRequest {
	return domain.HelpRequest{
		RequesterEmail:      q.String("requesterEmail"),
		TeamID:              q.String("teamId"),
		TableOrBreakoutRoom: q.String("tableOrBreakoutRoom"),
		Explanation:         q.String("explanation"),
		Solved:              q.Bool("solved"),
		RequestTime:         q.Time("requestTime"),
	}
}

func menuItemReviewFromQuery(q *queryParams) domain.MenuItemReview {
	return domain.MenuItemReview{
		ItemID:        q.Int64("itemId"),
		ReviewerEmail: q.String("reviewerEmail"),
		Stars:         q.Int("stars"),
		DateReviewed:  q.Time("dateReviewed"),
		Comments:      q.String("comments"),
	}
}

func recommendationRequestFromQuery(q *queryParams) domain.RecommendationRequest {
	return domain.RecommendationRequest{
		RequesterEmail: q.String("requesterEmail"),
		ProfessorEmail: q.String("professorEmail"),
		Explanation:    q.String("explanation"),
		DateRequested:  q.Time("dateRequested"),
		DateNeeded:     q.Time("dateNeeded"),
		Done:           q.Bool("done"),
	}
}

func articleFromQuery(q *queryParams) domain.Article {
	return domain.Article{
		Title:       q.String("title"),
		URL:         q.String("url"),
		Explanation: q.String("explanation"),
		Email:       q.String("email"),
		DateAdded:   q.Time("dateAdded"),
	}
}

func diningCommonsFromQuery(q *queryParams) domain.DiningCommons {
	return domain.DiningCommons{
		Code:           q.String("code"),
		Name:           q.String("name"),
		HasSackMeal:    q.Bool("hasSackMeal"),
		HasTakeOutMeal: q.Bool("hasTakeOutMeal"),
		HasDiningCam:   q.Bool("hasDiningCam"),
		Latitude:       q.Float64("latitude"),
		Longitude:      q.Float64("longitude"),
	}
}
