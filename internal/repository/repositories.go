package repository

import (
	"database/sql"

	"github.com/jbweber/homelab/campus/internal/domain"
)

// Repositories bundles one repository per resource type
type Repositories struct {
	HelpRequests           HelpRequestRepository
	MenuItemReviews        MenuItemReviewRepository
	RecommendationRequests RecommendationRequestRepository
	Articles               ArticleRepository
	DiningCommons          DiningCommonsRepository

	close func() error
}

// NewSQLRepositories creates SQLite-backed repositories sharing one prepared
// statement cache. The database must already be migrated.
func NewSQLRepositories(db *sql.DB) *Repositories {
	stmts := NewStatementCache(db)
	return &Repositories{
		HelpRequests:           NewHelpRequestRepository(stmts),
		MenuItemReviews:        NewMenuItemReviewRepository(stmts),
		RecommendationRequests: NewRecommendationRequestRepository(stmts),
		Articles:               NewArticleRepository(stmts),
		DiningCommons:          NewDiningCommonsRepository(stmts),
		close:                  stmts.Close,
	}
}

// NewMemoryRepositories creates empty in-memory repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		HelpRequests:           NewMemoryRepository[domain.HelpRequest]("help request"),
		MenuItemReviews:        NewMemoryRepository[domain.MenuItemReview]("menu item review"),
		RecommendationRequests: NewMemoryRepository[domain.RecommendationRequest]("recommendation request"),
		Articles:               NewMemoryRepository[domain.Article]("article"),
		DiningCommons:          NewMemoryRepository[domain.DiningCommons]("dining commons"),
	}
}

// Close releases resources held by the repositories. It does not close the
// underlying database.
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
