package bolt

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

// DocumentStore keeps documents in a bolt bucket. Predicates are evaluated
// inside the scan so rows are filtered at the source, before any pagination
// slicing; the owner's tier is resolved from the users bucket in the same
// transaction.
type DocumentStore struct {
	Driver *Driver
}

// Get retrieves the document with the given id, nil when absent. OwnerTier
// is populated from the owning account.
func (s *DocumentStore) Get(id int64) (*docscabinet.Document, error) {
	var doc *docscabinet.Document
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(documentBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		doc = &docscabinet.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return err
		}

		doc.OwnerTier = ownerTier(tx, doc.OwnerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// FindAndCount scans newest-first (ids are monotonic), keeps rows matching
// the predicate, and returns the requested window along with the total
// number of matches.
func (s *DocumentStore) FindAndCount(p docscabinet.Predicate, limit, offset int) ([]docscabinet.Document, int, error) {
	docs := make([]docscabinet.Document, 0, limit)
	total := 0

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		tiers := make(map[int64]docscabinet.PrivilegeTier)

		c := tx.Bucket(documentBucket).Cursor()
		for k, data := c.Last(); k != nil; k, data = c.Prev() {
			var doc docscabinet.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}

			tier, ok := tiers[doc.OwnerID]
			if !ok {
				tier = ownerTier(tx, doc.OwnerID)
				tiers[doc.OwnerID] = tier
			}
			doc.OwnerTier = tier

			if !p.Match(&doc) {
				continue
			}

			if total >= offset && len(docs) < limit {
				docs = append(docs, doc)
			}
			total++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (s *DocumentStore) Insert(doc *docscabinet.Document) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(documentBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		doc.ID = int64(id)
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now()
		}

		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		return bucket.Put(itob(doc.ID), data)
	})
}

func (s *DocumentStore) Update(doc *docscabinet.Document) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		return tx.Bucket(documentBucket).Put(itob(doc.ID), data)
	})
}

func (s *DocumentStore) Delete(id int64) (int, error) {
	affected := 0
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(documentBucket)
		if bucket.Get(itob(id)) == nil {
			return nil
		}

		affected = 1
		return bucket.Delete(itob(id))
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func ownerTier(tx *bolt.Tx, ownerID int64) docscabinet.PrivilegeTier {
	data := tx.Bucket(userBucket).Get(itob(ownerID))
	if data == nil {
		return docscabinet.TierRegular
	}

	var owner docscabinet.User
	if err := json.Unmarshal(data, &owner); err != nil {
		return docscabinet.TierRegular
	}

	return owner.Tier
}
