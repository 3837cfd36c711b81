package repository

import (
	"github.com/jbweber/homelab/campus/internal/domain"
)

// HelpRequestRepository stores help requests
type HelpRequestRepository interface {
	Repository[domain.HelpRequest, int64]
}

// NewHelpRequestRepository creates a help request repository backed by the help_requests table
func NewHelpRequestRepository(stmts *StatementCache) HelpRequestRepository {
	return newSQLRepository(stmts, table[domain.HelpRequest]{
		name:    "help_requests",
		kind:    "help request",
		columns: []string{"requester_email", "team_id", "table_or_breakout_room", "explanation", "solved", "request_time"},
		scan: func(row rowScanner) (domain.HelpRequest, error) {
			var h domain.HelpRequest
			err := row.Scan(&h.ID, &h.RequesterEmail, &h.TeamID, &h.TableOrBreakoutRoom, &h.Explanation, &h.Solved, &h.RequestTime)
			return h, err
		},
		values: func(h domain.HelpRequest) []any {
			return []any{h.RequesterEmail, h.TeamID, h.TableOrBreakoutRoom, h.Explanation, h.Solved, h.RequestTime}
		},
	})
}
