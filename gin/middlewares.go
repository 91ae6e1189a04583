package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/auth"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

// TokenHeader is the designated credential header. The raw signed token is
// the whole value, no scheme prefix.
const TokenHeader = "X-Access-Token"

type HandlerFunc func(*gin.Context) (interface{}, error)

// JSONFormatter renders a handler's result. Failures become
// {message, error} where error is the stable machine tag, when the error
// carries one.
func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c.Copy())
		if err != nil {
			body := gin.H{"message": err.Error()}
			if tag := errors.Tag(err); tag != "" {
				body["error"] = tag
			}

			c.JSON(errors.Code(err), body)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// Authenticator gates handlers behind credential verification.
type Authenticator struct {
	Verifier *auth.Verifier
}

// Authenticate extracts the token header and verifies it. A header that is
// absent altogether and one that is present but empty are distinct
// failures; everything past extraction is the verifier's business.
func (a *Authenticator) Authenticate(next HandlerFunc) HandlerFunc {
	return func(c *gin.Context) (interface{}, error) {
		values, ok := c.Request.Header[TokenHeader]
		if !ok || len(values) == 0 {
			return nil, auth.MissingToken()
		}

		caller, err := a.Verifier.Verify(values[0])
		if err != nil {
			return nil, err
		}

		c.Set("caller", caller)
		return next(c)
	}
}

// GetCaller retrieves the verified caller stashed by Authenticate.
func GetCaller(c *gin.Context) (docscabinet.Caller, error) {
	v, ok := c.Get("caller")
	if !ok {
		return docscabinet.Caller{}, errors.New("could not extract caller", errors.Unauthorized())
	}

	caller, ok := v.(docscabinet.Caller)
	if !ok {
		return docscabinet.Caller{}, errors.New("could not extract caller", errors.Unauthorized())
	}

	return caller, nil
}
