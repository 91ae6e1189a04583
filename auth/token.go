package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	apperrors "github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

// Claims embeds the caller's identity at issuance time. Tier and name
// changes made afterwards are not reflected until the token is reissued;
// verification re-checks identity, not claim freshness.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Tier      int    `json:"tier"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// EncodeDecoder signs and parses credentials with a shared HS256 key.
type EncodeDecoder struct {
	key      []byte
	validity time.Duration
}

func NewEncodeDecoder(key []byte, validity time.Duration) *EncodeDecoder {
	return &EncodeDecoder{
		key:      key,
		validity: validity,
	}
}

func (e *EncodeDecoder) Encode(user docscabinet.User) (string, error) {
	claims := Claims{
		UserID:    user.ID,
		Tier:      int(user.Tier),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(e.validity)),
			Issuer:    "docs-cabinet",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.key)
}

// Decode parses and checks the signature and expiry of a raw token. It does
// not check that the embedded account still exists; that is the verifier's
// job.
func (e *EncodeDecoder) Decode(raw string) (docscabinet.Caller, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return e.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return docscabinet.Caller{}, ExpiredToken(err)
		}
		return docscabinet.Caller{}, InvalidToken(err)
	}

	if !token.Valid {
		return docscabinet.Caller{}, InvalidToken(apperrors.New("token did not validate"))
	}

	return docscabinet.Caller{
		ID:        claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Tier:      docscabinet.PrivilegeTier(claims.Tier),
	}, nil
}
