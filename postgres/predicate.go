package postgres

import (
	"fmt"
	"strings"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

// columns maps predicate fields to columns of the documents-join-users
// query. ownerTier comes from the join, everything else from the documents
// row.
var columns = map[string]string{
	docscabinet.FieldAccess:    "d.access",
	docscabinet.FieldOwnerID:   "d.owner_id",
	docscabinet.FieldOwnerTier: "u.tier",
	docscabinet.FieldTitle:     "d.title",
	docscabinet.FieldContent:   "d.content",
	docscabinet.FieldCategory:  "d.category",
	docscabinet.FieldTags:      "d.tags",
}

// compile renders a predicate as a WHERE fragment with positional
// placeholders starting at $1. The zero predicate compiles to TRUE.
func compile(p docscabinet.Predicate) (string, []any) {
	c := &compiler{}
	clause := c.render(p)
	if clause == "" {
		clause = "TRUE"
	}
	return clause, c.args
}

type compiler struct {
	args []any
}

func (c *compiler) render(p docscabinet.Predicate) string {
	var clause string

	p.Walk(
		func(field string, value any) {
			c.args = append(c.args, flatten(value))
			clause = fmt.Sprintf("%s = $%d", columns[field], len(c.args))
		},
		func(field, value string) {
			c.args = append(c.args, value)
			clause = fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", columns[field], len(c.args))
		},
		func(ps []docscabinet.Predicate) {
			clause = c.combine(ps, " OR ")
		},
		func(ps []docscabinet.Predicate) {
			clause = c.combine(ps, " AND ")
		},
	)

	return clause
}

func (c *compiler) combine(ps []docscabinet.Predicate, op string) string {
	clauses := make([]string, 0, len(ps))
	for _, sub := range ps {
		if clause := c.render(sub); clause != "" {
			clauses = append(clauses, clause)
		}
	}

	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, op) + ")"
}

// flatten converts domain enums to their SQL representations.
func flatten(v any) any {
	switch v := v.(type) {
	case docscabinet.AccessClass:
		return string(v)
	case docscabinet.PrivilegeTier:
		return int(v)
	default:
		return v
	}
}
