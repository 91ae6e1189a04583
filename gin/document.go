package gin

import (
	"fmt"

	"github.com/gin-gonic/gin"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/access"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
	"github.com/foladipo/docs-cabinet-cp2-sub000/pagination"
)

const (
	TagInvalidTargetDocumentID = "InvalidTargetDocumentIdError"
	TagTargetDocumentNotFound  = "TargetDocumentNotFoundError"
	TagInvalidAccessClass      = "InvalidAccessClassError"
)

type DocumentHandler struct {
	Documents     docscabinet.DocumentStore
	Defaults      pagination.Defaults
	Authenticator *Authenticator
}

func (h *DocumentHandler) RegisterRoutes(router *gin.Engine) {
	authed := h.Authenticator.Authenticate

	router.POST("/api/documents", JSONFormatter(authed(h.Create)))
	router.GET("/api/documents", JSONFormatter(authed(h.List)))
	router.GET("/api/documents/search", JSONFormatter(authed(h.Search)))
	router.GET("/api/documents/:id", JSONFormatter(authed(h.Get)))
	router.PUT("/api/documents/:id", JSONFormatter(authed(h.Update)))
	router.DELETE("/api/documents/:id", JSONFormatter(authed(h.Delete)))
}

type documentPayload struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Tags     *string `json:"tags"`
	Access   *string `json:"access"`
}

func (h *DocumentHandler) Create(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	var payload documentPayload
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("could not decode document", errors.BadRequest(), errors.WithCause(err))
	}

	doc := docscabinet.Document{
		Access:  docscabinet.AccessPrivate,
		OwnerID: caller.ID,
	}
	if err := applyPayload(&doc, payload); err != nil {
		return nil, err
	}

	if err := h.Documents.Insert(&doc); err != nil {
		return nil, errors.New("could not create document", errors.WithCause(err))
	}

	return gin.H{
		"message":   "Document created.",
		"documents": []docscabinet.Document{doc},
	}, nil
}

func (h *DocumentHandler) Get(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	doc, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	// Existence was settled above: a 403 here leaks nothing a 404 hid.
	if !access.CanRead(caller, doc) {
		return nil, access.Forbidden("you may not view this document")
	}

	return gin.H{
		"message":   "Document found.",
		"documents": []docscabinet.Document{*doc},
	}, nil
}

func (h *DocumentHandler) List(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	return h.listWith(c, access.ListPredicate(caller), "Documents found.")
}

func (h *DocumentHandler) Search(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	return h.listWith(c, access.SearchPredicate(caller, c.Query("q")), "Search results.")
}

func (h *DocumentHandler) listWith(c *gin.Context, p docscabinet.Predicate, message string) (interface{}, error) {
	limit, offset := paginationParams(c, h.Defaults)

	docs, total, err := h.Documents.FindAndCount(p, limit, offset)
	if err != nil {
		return nil, errors.New("could not list documents", errors.WithCause(err))
	}

	page := pagination.Paginate(total, limit, offset)
	return gin.H{
		"message":    message,
		"page":       page.Page,
		"pageSize":   page.PageSize,
		"pageCount":  page.PageCount,
		"totalCount": page.TotalCount,
		"documents":  docs,
	}, nil
}

func (h *DocumentHandler) Update(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	doc, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	// Only the owner edits content, no tier exception.
	if !access.CanUpdateDocument(caller, doc) {
		return nil, access.Forbidden("only the owner may update this document")
	}

	var payload documentPayload
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("could not decode document", errors.BadRequest(), errors.WithCause(err))
	}
	if err := applyPayload(doc, payload); err != nil {
		return nil, err
	}

	if err := h.Documents.Update(doc); err != nil {
		return nil, errors.New("could not update document", errors.WithCause(err))
	}

	return gin.H{
		"message":   "Document updated.",
		"documents": []docscabinet.Document{*doc},
	}, nil
}

func (h *DocumentHandler) Delete(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	doc, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	if !access.CanDeleteDocument(caller, doc) {
		return nil, access.Forbidden("you may not delete this document")
	}

	if _, err := h.Documents.Delete(doc.ID); err != nil {
		return nil, errors.New("could not delete document", errors.WithCause(err))
	}

	return gin.H{
		"message": fmt.Sprintf("Document %d deleted.", doc.ID),
	}, nil
}

// fetch resolves the target document, in the mandated order: unparseable id
// first (400), then absence (404). Authorization always comes after, in the
// callers.
func (h *DocumentHandler) fetch(c *gin.Context) (*docscabinet.Document, error) {
	id, err := targetID(c, "id", TagInvalidTargetDocumentID)
	if err != nil {
		return nil, err
	}

	doc, err := h.Documents.Get(id)
	if err != nil {
		return nil, errors.New("could not get document", errors.WithCause(err))
	} else if doc == nil {
		return nil, errors.New(
			fmt.Sprintf("document %d not found", id),
			errors.NotFound(), errors.WithTag(TagTargetDocumentNotFound),
		)
	}

	return doc, nil
}

func applyPayload(doc *docscabinet.Document, payload documentPayload) error {
	if payload.Title != nil {
		doc.Title = *payload.Title
	}
	if payload.Content != nil {
		doc.Content = *payload.Content
	}
	if payload.Category != nil {
		doc.Category = *payload.Category
	}
	if payload.Tags != nil {
		doc.Tags = *payload.Tags
	}
	if payload.Access != nil {
		normalized, ok := docscabinet.NormalizeAccessClass(*payload.Access)
		if !ok {
			return errors.New(
				fmt.Sprintf("%q is not a valid access class", *payload.Access),
				errors.BadRequest(), errors.WithTag(TagInvalidAccessClass),
			)
		}
		doc.Access = normalized
	}

	return nil
}
