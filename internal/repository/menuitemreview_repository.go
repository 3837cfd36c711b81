package repository

import (
	"github.com/jbweber/homelab/campus/internal/domain"
)

// MenuItemReviewRepository stores menu item reviews
type MenuItemReviewRepository interface {
	Repository[domain.MenuItemReview, int64]
}

// NewMenuItemReviewRepository creates a review repository backed by the menu_item_reviews table
func NewMenuItemReviewRepository(stmts *StatementCache) MenuItemReviewRepository {
	return newSQLRepository(stmts, table[domain.MenuItemReview]{
		name:    "menu_item_reviews",
		kind:    "menu item review",
		columns: []string{"item_id", "reviewer_email", "stars", "date_reviewed", "comments"},
		scan: func(row rowScanner) (domain.MenuItemReview, error) {
			var m domain.MenuItemReview
			err := row.Scan(&m.ID, &m.ItemID, &m.ReviewerEmail, &m.Stars, &m.DateReviewed, &m.Comments)
			return m, err
		},
		values: func(m domain.MenuItemReview) []any {
			return []any{m.ItemID, m.ReviewerEmail, m.Stars, m.DateReviewed, m.Comments}
		},
	})
}
