package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ed := NewEncodeDecoder([]byte("super-secret"), time.Hour)

	user := docscabinet.User{
		ID:        42,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Tier:      docscabinet.TierAdmin,
	}

	raw, err := ed.Encode(user)
	require.NoError(t, err)

	caller, err := ed.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(42), caller.ID)
	assert.Equal(t, "Ada", caller.FirstName)
	assert.Equal(t, "Lovelace", caller.LastName)
	assert.Equal(t, docscabinet.TierAdmin, caller.Tier)
}

func TestDecode_Expired(t *testing.T) {
	ed := NewEncodeDecoder([]byte("secret"), -time.Second)

	raw, err := ed.Encode(docscabinet.User{ID: 1})
	require.NoError(t, err)

	_, err = ed.Decode(raw)
	require.Error(t, err)
	errors.AssertCode(t, err, 401)
	errors.AssertTag(t, err, TagExpiredToken)
}

func TestDecode_WrongKey(t *testing.T) {
	issued := NewEncodeDecoder([]byte("right-key"), time.Hour)
	raw, err := issued.Encode(docscabinet.User{ID: 1})
	require.NoError(t, err)

	parsed := NewEncodeDecoder([]byte("wrong-key"), time.Hour)
	_, err = parsed.Decode(raw)
	require.Error(t, err)
	errors.AssertCode(t, err, 401)
	errors.AssertTag(t, err, TagInvalidToken)
}

func TestDecode_Malformed(t *testing.T) {
	ed := NewEncodeDecoder([]byte("k"), time.Hour)

	_, err := ed.Decode("not.a.token")
	require.Error(t, err)
	errors.AssertTag(t, err, TagInvalidToken)
}
