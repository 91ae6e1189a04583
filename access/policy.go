// Package access holds the visibility policy: pure decisions about who may
// read, update or delete what, and the predicate fragments that push those
// decisions into the persistence collaborator for list queries.
package access

import (
	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

const TagForbiddenOperation = "ForbiddenOperationError"

func Forbidden(msg string) error {
	return errors.New(msg, errors.Forbidden(), errors.WithTag(TagForbiddenOperation))
}

// CanRead reports whether caller may read doc: public documents, own
// documents, and role documents whose owner is on the caller's tier. An
// access class outside the known three should never reach this point (the
// write path normalizes and validates first); if it does, the document is
// treated as private.
func CanRead(caller docscabinet.Caller, doc *docscabinet.Document) bool {
	if doc.OwnerID == caller.ID {
		return true
	}

	switch doc.Access {
	case docscabinet.AccessPublic:
		return true
	case docscabinet.AccessRole:
		return doc.OwnerTier == caller.Tier
	default:
		// private, or an unknown class: fail closed.
		return false
	}
}

// CanUpdateDocument: only the owner may change a document's content. There
// is no tier exception; an administrator cannot edit someone else's
// document.
func CanUpdateDocument(caller docscabinet.Caller, doc *docscabinet.Document) bool {
	return caller.ID == doc.OwnerID
}

// CanDeleteDocument: the owner, or any account above the regular tier. Note
// the asymmetry with CanRead: an administrator may delete a role-class
// document it cannot read. Observed behavior, kept as is.
func CanDeleteDocument(caller docscabinet.Caller, doc *docscabinet.Document) bool {
	return caller.ID == doc.OwnerID || caller.Tier > docscabinet.TierRegular
}

// CanUpdateUser: a profile may be changed by its account or by any
// administrator.
func CanUpdateUser(caller docscabinet.Caller, target *docscabinet.User) bool {
	return caller.ID == target.ID || caller.Tier > docscabinet.TierRegular
}

// CanDeleteUser: an account may be removed by itself or by any
// administrator.
func CanDeleteUser(caller docscabinet.Caller, target *docscabinet.User) bool {
	return caller.ID == target.ID || caller.Tier > docscabinet.TierRegular
}

// ListPredicate is the query-side twin of CanRead: a fragment equivalent to
//
//	access = public OR owner = caller.id OR (access = role AND ownerTier = caller.tier)
//
// handed to the store so rows the caller cannot see are filtered at the
// source. Post-filtering in memory would skew pagination counts.
func ListPredicate(caller docscabinet.Caller) docscabinet.Predicate {
	return docscabinet.AnyOf(
		docscabinet.Equals(docscabinet.FieldAccess, docscabinet.AccessPublic),
		docscabinet.Equals(docscabinet.FieldOwnerID, caller.ID),
		docscabinet.AllOf(
			docscabinet.Equals(docscabinet.FieldAccess, docscabinet.AccessRole),
			docscabinet.Equals(docscabinet.FieldOwnerTier, caller.Tier),
		),
	)
}

// SearchPredicate narrows the visibility fragment to documents whose title
// contains the query text. An empty query narrows nothing.
func SearchPredicate(caller docscabinet.Caller, query string) docscabinet.Predicate {
	if query == "" {
		return ListPredicate(caller)
	}

	return docscabinet.AllOf(
		ListPredicate(caller),
		docscabinet.Contains(docscabinet.FieldTitle, query),
	)
}
