package docscabinet

// PrivilegeTier is an ordinal: 0 is a regular account, anything above it is
// an administrator. Comparisons are ordered ("more senior than"), not
// equality against a closed set, so additional tiers slot in without
// touching the comparison logic.
type PrivilegeTier int

const (
	TierRegular PrivilegeTier = 0
	TierAdmin   PrivilegeTier = 1
)

// Admin reports whether the tier outranks a regular account.
func (t PrivilegeTier) Admin() bool {
	return t > TierRegular
}

func (t PrivilegeTier) String() string {
	if t.Admin() {
		return "admin"
	}
	return "regular"
}

type User struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Login     string        `json:"login"`
	Tier      PrivilegeTier `json:"tier"`

	PasswordHash string `json:"-"`
}

// Caller is the verified, request-scoped identity decoded from a credential.
// It lives for one request only and is never persisted. The embedded fields
// are the claims at issuance time: a tier change after issuance is not
// visible until the credential is reissued.
type Caller struct {
	ID        int64
	FirstName string
	LastName  string
	Tier      PrivilegeTier
}

// UserStore is the persistence collaborator for accounts.
type UserStore interface {
	// Get returns nil when no account has the given id.
	Get(id int64) (*User, error)
	// GetByLogin returns nil when no account has the given login.
	GetByLogin(login string) (*User, error)
	// FindAndCount returns a page of accounts ordered by id along with the
	// total account count.
	FindAndCount(limit, offset int) ([]User, int, error)
	Insert(*User) error
	Update(*User) error
	// Delete returns the number of rows removed (0 or 1).
	Delete(id int64) (int, error)
}
