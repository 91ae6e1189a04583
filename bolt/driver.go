package bolt

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var (
	documentBucket = []byte("documents")
	userBucket     = []byte("users")
	loginBucket    = []byte("logins")
)

// Driver wraps the bolt database handle shared by the stores.
type Driver struct {
	store *bolt.DB
}

func (d *Driver) Open(path string) error {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{documentBucket, userBucket, loginBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %s", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.store = store
	return nil
}

func (d *Driver) Close() error {
	return d.store.Close()
}

func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
