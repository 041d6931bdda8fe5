// Package history stores evaluated expressions in a bbolt database.
package history

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var historyBucket = []byte("history")

// Store is a persistent, append-only log of evaluations.
type Store struct {
	db *bolt.DB
}

// Entry is one evaluation. Exactly one of Result and Err is meaningful.
type Entry struct {
	Timestamp time.Time
	Expr      string
	Mode      string
	Result    float64
	Err       string
}

// record is the stored form of an Entry. The result is text so that NaN and
// infinities, which JSON numbers cannot hold, are kept.
type record struct {
	Timestamp time.Time `json:"ts"`
	Expr      string    `json:"expr"`
	Mode      string    `json:"mode"`
	Result    string    `json:"result,omitempty"`
	Err       string    `json:"err,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	r := record{Timestamp: e.Timestamp, Expr: e.Expr, Mode: e.Mode, Err: e.Err}
	if e.Err == "" {
		r.Result = strconv.FormatFloat(e.Result, 'g', -1, 64)
	}
	return json.Marshal(r)
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	*e = Entry{Timestamp: r.Timestamp, Expr: r.Expr, Mode: r.Mode, Err: r.Err}
	if r.Result != "" {
		v, err := strconv.ParseFloat(r.Result, 64)
		if err != nil {
			return fmt.Errorf("result %q: %w", r.Result, err)
		}
		e.Result = v
	}
	return nil
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add appends an entry. A zero timestamp is replaced with the current time.
func (s *Store) Add(e Entry) error {
	if s.db == nil {
		return errors.New("history: db not opened")
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket(historyBucket)
		if bk == nil {
			return errors.New("history: bucket missing")
		}
		// Sequence keys keep insertion order even for equal timestamps.
		seq, err := bk.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return bk.Put(key[:], b)
	})
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns all entries.
func (s *Store) List(limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, errors.New("history: db not opened")
	}
	var out []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket(historyBucket)
		if bk == nil {
			return nil
		}
		c := bk.Cursor()
		for k, v := c.Last(); k != nil && (limit <= 0 || len(out) < limit); k, v = c.Prev() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("history: corrupt entry %x: %w", k, err)
			}
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if s.db == nil {
		return errors.New("history: db not opened")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(historyBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(historyBucket)
		return err
	})
}

// Format renders an entry for listing, with results to the given number of
// fractional digits.
func (e Entry) Format(decimals int) string {
	ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
	if e.Err != "" {
		return fmt.Sprintf("%s  [%s] %s  Error: %s", ts, e.Mode, e.Expr, e.Err)
	}
	return fmt.Sprintf("%s  [%s] %s = %.*f", ts, e.Mode, e.Expr, decimals, e.Result)
}
