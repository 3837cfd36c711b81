package resource

import "fmt"

// NotFoundError reports that an id-addressed operation found no record
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}
