package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

type DocumentStore struct {
	Driver *Driver
}

const documentColumns = `d.id, d.title, d.content, d.category, d.tags, d.access, d.owner_id, u.tier, d.created_at`

func (s *DocumentStore) Get(id int64) (*docscabinet.Document, error) {
	query := `SELECT ` + documentColumns + `
	          FROM documents d
	          JOIN users u ON u.id = d.owner_id
	          WHERE d.id = $1`

	doc := docscabinet.Document{}
	err := s.Driver.db.QueryRow(query, id).Scan(
		&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.Tags,
		&doc.Access, &doc.OwnerID, &doc.OwnerTier, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &doc, nil
}

func (s *DocumentStore) FindAndCount(p docscabinet.Predicate, limit, offset int) ([]docscabinet.Document, int, error) {
	where, args := compile(p)

	countQuery := `SELECT COUNT(*)
	               FROM documents d
	               JOIN users u ON u.id = d.owner_id
	               WHERE ` + where

	total := 0
	if err := s.Driver.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+documentColumns+`
	         FROM documents d
	         JOIN users u ON u.id = d.owner_id
	         WHERE %s
	         ORDER BY d.created_at DESC, d.id DESC
	         LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := s.Driver.db.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	docs := make([]docscabinet.Document, 0, limit)
	for rows.Next() {
		doc := docscabinet.Document{}
		err := rows.Scan(
			&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.Tags,
			&doc.Access, &doc.OwnerID, &doc.OwnerTier, &doc.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return docs, total, nil
}

func (s *DocumentStore) Insert(doc *docscabinet.Document) error {
	query := `INSERT INTO documents (title, content, category, tags, access, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	err := s.Driver.db.QueryRow(query,
		doc.Title, doc.Content, doc.Category, doc.Tags, string(doc.Access), doc.OwnerID,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *DocumentStore) Update(doc *docscabinet.Document) error {
	query := `UPDATE documents
	          SET title = $1, content = $2, category = $3, tags = $4, access = $5
	          WHERE id = $6`

	_, err := s.Driver.db.Exec(query,
		doc.Title, doc.Content, doc.Category, doc.Tags, string(doc.Access), doc.ID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *DocumentStore) Delete(id int64) (int, error) {
	res, err := s.Driver.db.Exec(`DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return int(affected), nil
}
