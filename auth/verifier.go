package auth

import (
	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

// Verifier turns a raw credential into an authenticated caller. Every
// request re-verifies from scratch; there is no cache of verified tokens.
type Verifier struct {
	Tokens *EncodeDecoder
	Users  docscabinet.UserStore
}

// Verify checks the token's shape, signature and expiry, then makes the one
// persistence round trip of the whole procedure: the embedded account must
// still exist. That lookup is what makes a deleted account's outstanding
// credentials unusable immediately instead of until expiry. The embedded
// claims are trusted for the rest of the request, no profile re-read.
func (v *Verifier) Verify(raw string) (docscabinet.Caller, error) {
	if raw == "" {
		return docscabinet.Caller{}, EmptyToken()
	}

	caller, err := v.Tokens.Decode(raw)
	if err != nil {
		return docscabinet.Caller{}, err
	}

	user, err := v.Users.Get(caller.ID)
	if err != nil {
		return docscabinet.Caller{}, errors.New("could not look up account", errors.WithCause(err))
	} else if user == nil {
		return docscabinet.Caller{}, NonExistentUser()
	}

	return caller, nil
}
