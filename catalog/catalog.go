package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Catalog owns the in-memory book set and its invariants: unique monotonic
// ids, valid status values, and a full resave after every mutation. It is not
// safe for concurrent use; the intended deployment is one interactive process.
type Catalog struct {
	store  *Store
	log    zerolog.Logger
	books  []*Book
	nextID int64
}

// Filter narrows a Search. Zero-valued fields are ignored: empty strings skip
// the title/author match, a nil Year skips the year match.
type Filter struct {
	Title  string
	Author string
	Year   *int
}

// New builds a Catalog hydrated from store. Unreadable or malformed data on
// disk is logged and degrades to an empty catalog rather than failing startup.
func New(store *Store, logger zerolog.Logger) *Catalog {
	c := &Catalog{store: store, log: logger, nextID: 1}

	books, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("catalog data unreadable, starting empty")
		return c
	}
	c.books = books
	for _, b := range books {
		if b.ID >= c.nextID {
			c.nextID = b.ID + 1
		}
	}
	return c
}

// Add validates the fields, assigns the next id and appends a new book with
// status "available".
func (c *Catalog) Add(title, author string, year int) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("%w: author must not be empty", ErrInvalidInput)
	}

	b := &Book{
		ID:     c.nextID,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
	c.nextID++
	c.books = append(c.books, b)
	c.persist()
	return b, nil
}

// Delete removes the book with the given id. The id is never handed out again
// during this process lifetime.
func (c *Catalog) Delete(id int64) error {
	for i, b := range c.books {
		if b.ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			c.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// SetStatus changes a book's status. Setting the status it already has is a
// valid no-op transition; both directions are always allowed.
func (c *Catalog) SetStatus(id int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStatus, status, StatusAvailable, StatusCheckedOut)
	}
	for _, b := range c.books {
		if b.ID == id {
			b.Status = status
			c.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Search returns the books matching all supplied filters. Title and author
// are case-insensitive substring matches, year is exact. With no filters set
// it returns the whole catalog.
func (c *Catalog) Search(f Filter) []*Book {
	var results []*Book
	title := strings.ToLower(f.Title)
	author := strings.ToLower(f.Author)

	for _, b := range c.books {
		if title != "" && !strings.Contains(strings.ToLower(b.Title), title) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(b.Author), author) {
			continue
		}
		if f.Year != nil && b.Year != *f.Year {
			continue
		}
		results = append(results, b)
	}
	return results
}

// Books returns a snapshot of the catalog in insertion order.
func (c *Catalog) Books() []*Book {
	out := make([]*Book, len(c.books))
	copy(out, c.books)
	return out
}

// Get returns the book with the given id.
func (c *Catalog) Get(id int64) (*Book, error) {
	for _, b := range c.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// persist rewrites the backing file. A failed save is reported on the log
// side channel only; the in-memory state stays authoritative and the catalog
// may diverge from disk until the next successful save.
func (c *Catalog) persist() {
	if err := c.store.Save(c.books); err != nil {
		c.log.Error().Err(err).Msg("persisting catalog failed")
	}
}
