package repository

import (
	"github.com/jbweber/homelab/campus/internal/domain"
)

// ArticleRepository stores articles
type ArticleRepository interface {
	Repository[domain.Article, int64]
}

// NewArticleRepository creates an article repository backed by the articles table
func NewArticleRepository(stmts *StatementCache) ArticleRepository {
	return newSQLRepository(stmts, table[domain.Article]{
		name:    "articles",
		kind:    "article",
		columns: []string{"title", "url", "explanation", "email", "date_added"},
		scan: func(row rowScanner) (domain.Article, error) {
			var a domain.Article
			err := row.Scan(&a.ID, &a.Title, &a.URL, &a.Explanation, &a.Email, &a.DateAdded)
			return a, err
		},
		values: func(a domain.Article) []any {
			return []any{a.Title, a.URL, a.Explanation, a.Email, a.DateAdded}
		},
	})
}
