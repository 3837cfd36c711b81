package api

import (
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	"github.com/jbweber/homelab/campus/internal/domain"
)

// queryParams reads required query parameters. The first problem is kept
// in err and later reads return zero values, so callers check Err once.
type queryParams struct {
	values url.Values
	err    error

	// parsed date-time parameters, for logging
	times []slog.Attr
}

func newQueryParams(values url.Values) *queryParams {
	return &queryParams{values: values}
}

// Err returns the first missing or malformed parameter, if any
func (q *queryParams) Err() error {
	return q.err
}

func (q *queryParams) lookup(name string) (string, bool) {
	if q.err != nil {
		return "", false
	}
	vs, ok := q.values[name]
	if !ok || len(vs) == 0 {
		q.err = &MalformedInputError{Message: fmt.Sprintf("Required parameter '%s' is not present", name)}
		return "", false
	}
	return vs[0], true
}

func (q *queryParams) invalid(name, kind string) {
	q.err = &MalformedInputError{Message: fmt.Sprintf("Parameter '%s' is not a valid %s", name, kind)}
}

func (q *queryParams) String(name string) string {
	v, _ := q.lookup(name)
	return v
}

func (q *queryParams) Bool(name string) bool {
	raw, ok := q.lookup(name)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.invalid(name, "boolean")
		return false
	}
	return v
}

func (q *queryParams) Int(name string) int {
	raw, ok := q.lookup(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.invalid(name, "integer")
		return 0
	}
	return v
}

func (q *queryParams) Int64(name string) int64 {
	raw, ok := q.lookup(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.invalid(name, "integer")
		return 0
	}
	return v
}

// Float64 accepts finite numbers only; NaN and infinities have no JSON form
func (q *queryParams) Float64(name string) float64 {
	raw, ok := q.lookup(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		q.invalid(name, "number")
		return 0
	}
	return v
}

// Time parses an ISO-8601 local date-time such as 2022-01-03T00:00:00
func (q *queryParams) Time(name string) domain.LocalDateTime {
	raw, ok := q.lookup(name)
	if !ok {
		return domain.LocalDateTime{}
	}
	v, err := domain.ParseLocalDateTime(raw)
	if err != nil {
		q.err = &MalformedInputError{Message: fmt.Sprintf("Parameter '%s' is not a valid date-time: %v", name, err)}
		return domain.LocalDateTime{}
	}
	q.times = append(q.times, slog.String(name, v.String()))
	return v
}

// parseID reads the required "id" query parameter
func parseID(values url.Values) (int64, error) {
	q := newQueryParams(values)
	id := q.Int64("id")
	return id, q.Err()
}
