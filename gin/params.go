package gin

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
	"github.com/foladipo/docs-cabinet-cp2-sub000/pagination"
)

// paginationParams reads limit/offset from the query string. Malformed
// values degrade to the configured defaults; pagination inputs never fail a
// request.
func paginationParams(c *gin.Context, d pagination.Defaults) (limit, offset int) {
	return d.ResolveLimitOffset(c.Query("limit"), c.Query("offset"))
}

// targetID parses a path id, failing fast with the given tag before any
// persistence access.
func targetID(c *gin.Context, param, tag string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(
			fmt.Sprintf("%q is not a valid id", raw),
			errors.BadRequest(), errors.WithTag(tag),
		)
	}

	return id, nil
}
