package catalog

// Status describes a book's current availability.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked-out"
)

// Valid reports whether s is one of the two known status values.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// Book represents a single catalog entry. The json tags are the on-disk
// contract and must stay stable across releases.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}
