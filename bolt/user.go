package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

// UserStore keeps accounts in a bolt bucket, with a second bucket indexing
// login to id so logins stay unique.
type UserStore struct {
	Driver *Driver
}

func (s *UserStore) Get(id int64) (*docscabinet.User, error) {
	var user *docscabinet.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(userBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		user = &docscabinet.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) GetByLogin(login string) (*docscabinet.User, error) {
	var user *docscabinet.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		ref := tx.Bucket(loginBucket).Get([]byte(login))
		if ref == nil {
			return nil
		}

		data := tx.Bucket(userBucket).Get(ref)
		if data == nil {
			return nil
		}

		user = &docscabinet.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) FindAndCount(limit, offset int) ([]docscabinet.User, int, error) {
	users := make([]docscabinet.User, 0, limit)
	total := 0

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			if total >= offset && len(users) < limit {
				var user docscabinet.User
				if err := json.Unmarshal(data, &user); err != nil {
					return err
				}
				users = append(users, user)
			}
			total++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (s *UserStore) Insert(user *docscabinet.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		logins := tx.Bucket(loginBucket)
		if logins.Get([]byte(user.Login)) != nil {
			return fmt.Errorf("login %s already taken", user.Login)
		}

		bucket := tx.Bucket(userBucket)
		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		user.ID = int64(id)

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		if err := bucket.Put(itob(user.ID), data); err != nil {
			return err
		}
		return logins.Put([]byte(user.Login), itob(user.ID))
	})
}

func (s *UserStore) Update(user *docscabinet.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		previous := bucket.Get(itob(user.ID))
		if previous == nil {
			return fmt.Errorf("user %d not found", user.ID)
		}

		var old docscabinet.User
		if err := json.Unmarshal(previous, &old); err != nil {
			return err
		}

		logins := tx.Bucket(loginBucket)
		if old.Login != user.Login {
			if logins.Get([]byte(user.Login)) != nil {
				return fmt.Errorf("login %s already taken", user.Login)
			}
			if err := logins.Delete([]byte(old.Login)); err != nil {
				return err
			}
			if err := logins.Put([]byte(user.Login), itob(user.ID)); err != nil {
				return err
			}
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (s *UserStore) Delete(id int64) (int, error) {
	affected := 0
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var user docscabinet.User
		if err := json.Unmarshal(data, &user); err != nil {
			return err
		}

		if err := tx.Bucket(loginBucket).Delete([]byte(user.Login)); err != nil {
			return err
		}

		affected = 1
		return bucket.Delete(itob(id))
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
