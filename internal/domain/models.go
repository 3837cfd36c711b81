package domain

// Entity is implemented by every stored record. Key returns the store-assigned
// identifier (zero before the record is first saved) and WithKey returns a copy
// carrying the given identifier.
type Entity[T any] interface {
	Key() int64
	WithKey(id int64) T
}

// HelpRequest represents a team asking staff for help during a lab session
type HelpRequest struct {
	ID                  int64         `json:"id"`
	RequesterEmail      string        `json:"requesterEmail"`
	TeamID              string        `json:"teamId"`
	TableOrBreakoutRoom string        `json:"tableOrBreakoutRoom"`
	Explanation         string        `json:"explanation"`
	Solved              bool          `json:"solved"`
	RequestTime         LocalDateTime `json:"requestTime"`
}

func (h HelpRequest) Key() int64 { return h.ID }

func (h HelpRequest) WithKey(id int64) HelpRequest {
	h.ID = id
	return h
}

// MenuItemReview represents a diner's review of a single menu item
type MenuItemReview struct {
	ID            int64         `json:"id"`
	ItemID        int64         `json:"itemId"`
	ReviewerEmail string        `json:"reviewerEmail"`
	Stars         int           `json:"stars"` // 1-5 by convention, not enforced
	DateReviewed  LocalDateTime `json:"dateReviewed"`
	Comments      string        `json:"comments"`
}

func (m MenuItemReview) Key() int64 { return m.ID }

func (m MenuItemReview) WithKey(id int64) MenuItemReview {
	m.ID = id
	return m
}

// RecommendationRequest represents a student asking a professor for a letter
type RecommendationRequest struct {
	ID             int64         `json:"id"`
	RequesterEmail string        `json:"requesterEmail"`
	ProfessorEmail string        `json:"professorEmail"`
	Explanation    string        `json:"explanation"`
	DateRequested  LocalDateTime `json:"dateRequested"`
	DateNeeded     LocalDateTime `json:"dateNeeded"`
	Done           bool          `json:"done"`
}

func (r RecommendationRequest) Key() int64 { return r.ID }

func (r RecommendationRequest) WithKey(id int64) RecommendationRequest {
	r.ID = id
	return r
}

// Article represents a shared link with a short explanation
type Article struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Explanation string        `json:"explanation"`
	Email       string        `json:"email"`
	DateAdded   LocalDateTime `json:"dateAdded"`
}

func (a Article) Key() int64 { return a.ID }

func (a Article) WithKey(id int64) Article {
	a.ID = id
	return a
}

// DiningCommons represents a campus dining hall
type DiningCommons struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"` // Short name, e.g. "ortega"
	Name           string  `json:"name"`
	HasSackMeal    bool    `json:"hasSackMeal"`
	HasTakeOutMeal bool    `json:"hasTakeOutMeal"`
	HasDiningCam   bool    `json:"hasDiningCam"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (d DiningCommons) Key() int64 { return d.ID }

func (d DiningCommons) WithKey(id int64) DiningCommons {
	d.ID = id
	return d
}
