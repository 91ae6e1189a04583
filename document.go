package docscabinet

import (
	"strings"
	"time"
)

// AccessClass governs who may read a document. Input is normalized to
// lowercase before persistence; anything outside the three known values is
// rejected at the write path.
type AccessClass string

const (
	AccessPublic  AccessClass = "public"
	AccessPrivate AccessClass = "private"
	AccessRole    AccessClass = "role"
)

// NormalizeAccessClass lowercases the raw value and reports whether it is one
// of the known classes.
func NormalizeAccessClass(raw string) (AccessClass, bool) {
	switch a := AccessClass(strings.ToLower(strings.TrimSpace(raw))); a {
	case AccessPublic, AccessPrivate, AccessRole:
		return a, true
	default:
		return a, false
	}
}

type Document struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Category string      `json:"category"`
	Tags     string      `json:"tags"`
	Access   AccessClass `json:"access"`
	OwnerID  int64       `json:"ownerId"`

	// OwnerTier is resolved by the store when reading (joined against the
	// owner's account), never written by clients.
	OwnerTier PrivilegeTier `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// DocumentStore is the persistence collaborator for documents. Callers hand
// it predicate fragments; it returns typed rows and counts. Implementations
// resolve OwnerTier on every read so visibility decisions never need a second
// lookup.
type DocumentStore interface {
	// Get returns nil when no document has the given id.
	Get(id int64) (*Document, error)
	// FindAndCount returns the page of documents matching p, newest first,
	// along with the total number of matching rows.
	FindAndCount(p Predicate, limit, offset int) ([]Document, int, error)
	Insert(*Document) error
	Update(*Document) error
	// Delete returns the number of rows removed (0 or 1).
	Delete(id int64) (int, error)
}
