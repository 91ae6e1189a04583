package bolt

import (
	"testing"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

func TestUserStore_Insert_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &UserStore{Driver: driver}
	user := docscabinet.User{FirstName: "Ada", LastName: "Lovelace", Login: "ada"}
	if err := store.Insert(&user); err != nil {
		t.Fatal("error inserting:", err)
	}

	retrieved, err := store.Get(user.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved == nil {
		t.Fatal("user not found after insert")
	} else if retrieved.Login != "ada" {
		t.Errorf("incorrect login: expected ada got %s", retrieved.Login)
	}

	byLogin, err := store.GetByLogin("ada")
	if err != nil {
		t.Fatal("error getting by login:", err)
	} else if byLogin == nil || byLogin.ID != user.ID {
		t.Errorf("incorrect user by login: %+v", byLogin)
	}
}

func TestUserStore_DuplicateLogin(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &UserStore{Driver: driver}
	if err := store.Insert(&docscabinet.User{Login: "ada"}); err != nil {
		t.Fatal("error inserting:", err)
	}

	if err := store.Insert(&docscabinet.User{Login: "ada"}); err == nil {
		t.Fatal("expected an error on duplicate login")
	}
}

func TestUserStore_Delete(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &UserStore{Driver: driver}
	user := docscabinet.User{Login: "ada"}
	if err := store.Insert(&user); err != nil {
		t.Fatal("error inserting:", err)
	}

	n, err := store.Delete(user.ID)
	if err != nil {
		t.Fatal("error deleting:", err)
	} else if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}

	retrieved, err := store.Get(user.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved != nil {
		t.Fatal("user should be gone")
	}

	// the login is free again
	if err := store.Insert(&docscabinet.User{Login: "ada"}); err != nil {
		t.Fatal("login should be reusable after delete:", err)
	}
}

func TestUserStore_FindAndCount(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &UserStore{Driver: driver}
	logins := []string{"a", "b", "c", "d", "e"}
	for _, l := range logins {
		if err := store.Insert(&docscabinet.User{Login: l}); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	users, total, err := store.FindAndCount(2, 3)
	if err != nil {
		t.Fatal("error listing:", err)
	}

	if total != 5 {
		t.Errorf("incorrect total: expected 5 got %d", total)
	}
	if len(users) != 2 {
		t.Errorf("incorrect window: expected 2 got %d", len(users))
	}
}
