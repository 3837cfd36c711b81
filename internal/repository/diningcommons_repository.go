package repository

import (
	"github.com/jbweber/homelab/campus/internal/domain"
)

// DiningCommonsRepository stores dining commons
type DiningCommonsRepository interface {
	Repository[domain.DiningCommons, int64]
}

// NewDiningCommonsRepository creates a repository backed by the dining_commons table
func NewDiningCommonsRepository(stmts *StatementCache) DiningCommonsRepository {
	return newSQLRepository(stmts, table[domain.DiningCommons]{
		name:    "dining_commons",
		kind:    "dining commons",
		columns: []string{"code", "name", "has_sack_meal", "has_take_out_meal", "has_dining_cam", "latitude", "longitude"},
		scan: func(row rowScanner) (domain.DiningCommons, error) {
			var d domain.DiningCommons
			err := row.Scan(&d.ID, &d.Code, &d.Name, &d.HasSackMeal, &d.HasTakeOutMeal, &d.HasDiningCam, &d.Latitude, &d.Longitude)
			return d, err
		},
		values: func(d domain.DiningCommons) []any {
			return []any{d.Code, d.Name, d.HasSackMeal, d.HasTakeOutMeal, d.HasDiningCam, d.Latitude, d.Longitude}
		},
	})
}
