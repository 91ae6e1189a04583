package docscabinet

import "strings"

// Document fields a predicate may reference. Store backends map these to
// their own columns; the in-process backend matches them directly.
const (
	FieldAccess    = "access"
	FieldOwnerID   = "ownerId"
	FieldOwnerTier = "ownerTier"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldCategory  = "category"
	FieldTags      = "tags"
)

// Predicate is a composable filter fragment handed to the persistence
// collaborator so that filtering happens at the source, before pagination
// counts are taken. It is either a leaf (field equals / field contains) or a
// boolean combination of sub-predicates. The zero value matches everything.
type Predicate struct {
	field    string
	equals   any
	contains string

	any []Predicate
	all []Predicate
}

// Equals matches rows whose field equals value exactly.
func Equals(field string, value any) Predicate {
	return Predicate{field: field, equals: value}
}

// Contains matches rows whose field contains value, case-insensitively.
func Contains(field, value string) Predicate {
	return Predicate{field: field, contains: value}
}

// AnyOf matches rows satisfying at least one of ps.
func AnyOf(ps ...Predicate) Predicate {
	return Predicate{any: ps}
}

// AllOf matches rows satisfying every one of ps.
func AllOf(ps ...Predicate) Predicate {
	return Predicate{all: ps}
}

// Walk lets a backend translate the predicate without reaching into its
// representation. Exactly one of the callbacks fires per node.
func (p Predicate) Walk(
	leafEquals func(field string, value any),
	leafContains func(field, value string),
	anyOf func(ps []Predicate),
	allOf func(ps []Predicate),
) {
	switch {
	case p.any != nil:
		anyOf(p.any)
	case p.all != nil:
		allOf(p.all)
	case p.contains != "":
		leafContains(p.field, p.contains)
	case p.field != "":
		leafEquals(p.field, p.equals)
	}
}

// Match evaluates the predicate against a document in process. Backends
// without a query engine of their own filter their scans with it, which
// keeps the "filter at the source" contract: rows are discarded before
// pagination, not after.
func (p Predicate) Match(d *Document) bool {
	switch {
	case p.any != nil:
		for _, sub := range p.any {
			if sub.Match(d) {
				return true
			}
		}
		return false
	case p.all != nil:
		for _, sub := range p.all {
			if !sub.Match(d) {
				return false
			}
		}
		return true
	case p.contains != "":
		return strings.Contains(strings.ToLower(fieldString(d, p.field)), strings.ToLower(p.contains))
	case p.field != "":
		return fieldEquals(d, p.field, p.equals)
	default:
		return true
	}
}

func fieldEquals(d *Document, field string, value any) bool {
	switch field {
	case FieldAccess:
		v, ok := value.(AccessClass)
		return ok && d.Access == v
	case FieldOwnerID:
		v, ok := value.(int64)
		return ok && d.OwnerID == v
	case FieldOwnerTier:
		v, ok := value.(PrivilegeTier)
		return ok && d.OwnerTier == v
	default:
		return fieldString(d, field) == toString(value)
	}
}

func fieldString(d *Document, field string) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldContent:
		return d.Content
	case FieldCategory:
		return d.Category
	case FieldTags:
		return d.Tags
	case FieldAccess:
		return string(d.Access)
	default:
		return ""
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case AccessClass:
		return string(s)
	default:
		return ""
	}
}
