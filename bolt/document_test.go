package bolt

import (
	"os"
	"testing"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/access"
)

func createDriver(t *testing.T) (*Driver, func()) {
	tmpFile, err := os.CreateTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	return driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestDocumentStore_Insert_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	users := &UserStore{Driver: driver}
	owner := docscabinet.User{Login: "ada", Tier: docscabinet.TierAdmin}
	if err := users.Insert(&owner); err != nil {
		t.Fatal("error inserting user:", err)
	}

	store := &DocumentStore{Driver: driver}
	doc := docscabinet.Document{
		Title:   "Test",
		Content: "Body",
		Access:  docscabinet.AccessPublic,
		OwnerID: owner.ID,
	}
	if err := store.Insert(&doc); err != nil {
		t.Fatal("error inserting:", err)
	}
	if doc.ID == 0 {
		t.Fatal("insert should assign an id")
	}

	retrieved, err := store.Get(doc.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved == nil {
		t.Fatal("document not found after insert")
	}

	if retrieved.Title != doc.Title {
		t.Errorf("incorrect title: expected %s got %s", doc.Title, retrieved.Title)
	}
	if retrieved.OwnerTier != docscabinet.TierAdmin {
		t.Errorf("owner tier should come from the owning account: got %v", retrieved.OwnerTier)
	}

	missing, err := store.Get(doc.ID + 1)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestDocumentStore_Delete(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &DocumentStore{Driver: driver}
	doc := docscabinet.Document{Title: "Gone soon", Access: docscabinet.AccessPrivate, OwnerID: 1}
	if err := store.Insert(&doc); err != nil {
		t.Fatal("error inserting:", err)
	}

	n, err := store.Delete(doc.ID)
	if err != nil {
		t.Fatal("error deleting:", err)
	} else if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}

	n, err = store.Delete(doc.ID)
	if err != nil {
		t.Fatal("error deleting:", err)
	} else if n != 0 {
		t.Fatalf("expected 0 rows affected on second delete, got %d", n)
	}
}

// Listing round trip from the spec of CanRead: for a mixed set of documents
// owned by accounts on both tiers, a regular caller's listing contains
// exactly the public documents, its own documents, and role documents owned
// by other regular accounts. The reported total matches the visible set.
func TestDocumentStore_FindAndCount_Visibility(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	users := &UserStore{Driver: driver}
	regular := docscabinet.User{Login: "caller", Tier: docscabinet.TierRegular}
	peer := docscabinet.User{Login: "peer", Tier: docscabinet.TierRegular}
	admin := docscabinet.User{Login: "boss", Tier: docscabinet.TierAdmin}
	for _, u := range []*docscabinet.User{&regular, &peer, &admin} {
		if err := users.Insert(u); err != nil {
			t.Fatal("error inserting user:", err)
		}
	}

	store := &DocumentStore{Driver: driver}
	seed := []struct {
		title   string
		access  docscabinet.AccessClass
		owner   int64
		visible bool
	}{
		{"own private", docscabinet.AccessPrivate, regular.ID, true},
		{"own role", docscabinet.AccessRole, regular.ID, true},
		{"peer public", docscabinet.AccessPublic, peer.ID, true},
		{"peer private", docscabinet.AccessPrivate, peer.ID, false},
		{"peer role", docscabinet.AccessRole, peer.ID, true},
		{"admin public", docscabinet.AccessPublic, admin.ID, true},
		{"admin private", docscabinet.AccessPrivate, admin.ID, false},
		{"admin role", docscabinet.AccessRole, admin.ID, false},
	}

	expected := map[string]bool{}
	for _, s := range seed {
		doc := docscabinet.Document{Title: s.title, Access: s.access, OwnerID: s.owner}
		if err := store.Insert(&doc); err != nil {
			t.Fatal("error inserting document:", err)
		}
		if s.visible {
			expected[s.title] = true
		}
	}

	caller := docscabinet.Caller{ID: regular.ID, Tier: regular.Tier}
	docs, total, err := store.FindAndCount(access.ListPredicate(caller), 100, 0)
	if err != nil {
		t.Fatal("error listing:", err)
	}

	if total != len(expected) {
		t.Errorf("incorrect total: expected %d got %d", len(expected), total)
	}
	if len(docs) != len(expected) {
		t.Errorf("incorrect number of rows: expected %d got %d", len(expected), len(docs))
	}
	for _, doc := range docs {
		if !expected[doc.Title] {
			t.Errorf("document %q should not be visible", doc.Title)
		}
	}
}

func TestDocumentStore_FindAndCount_Window(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &DocumentStore{Driver: driver}
	for i := 0; i < 7; i++ {
		doc := docscabinet.Document{Title: "doc", Access: docscabinet.AccessPublic, OwnerID: 1}
		if err := store.Insert(&doc); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	caller := docscabinet.Caller{ID: 99, Tier: docscabinet.TierRegular}
	docs, total, err := store.FindAndCount(access.ListPredicate(caller), 3, 5)
	if err != nil {
		t.Fatal("error listing:", err)
	}

	if total != 7 {
		t.Errorf("incorrect total: expected 7 got %d", total)
	}
	if len(docs) != 2 {
		t.Errorf("incorrect window size: expected 2 got %d", len(docs))
	}
}

func TestDocumentStore_FindAndCount_NewestFirst(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &DocumentStore{Driver: driver}
	first := docscabinet.Document{Title: "first", Access: docscabinet.AccessPublic, OwnerID: 1}
	second := docscabinet.Document{Title: "second", Access: docscabinet.AccessPublic, OwnerID: 1}
	for _, d := range []*docscabinet.Document{&first, &second} {
		if err := store.Insert(d); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	caller := docscabinet.Caller{ID: 1, Tier: docscabinet.TierRegular}
	docs, _, err := store.FindAndCount(access.ListPredicate(caller), 10, 0)
	if err != nil {
		t.Fatal("error listing:", err)
	}

	if len(docs) != 2 || docs[0].Title != "second" {
		t.Errorf("expected newest first, got %+v", docs)
	}
}
