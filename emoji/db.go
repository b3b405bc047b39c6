package emoji

import "github.com/gogpu/richtext/internal/logx"

// Database resolves markup ids to emoji definitions.
// Lookup never fails loudly: a miss is reported as (nil, false).
type Database interface {
	Lookup(id string) (*Emoji, bool)
}

// DB is a map-backed Database.
//
// When two emoji share an id the first one added wins, so a DB behaves
// like a sequential scan over its definitions.
//
// DB is not safe for concurrent mutation. Build it fully, then share it;
// reloading a manifest produces a new DB rather than mutating one in use.
type DB struct {
	byID  map[string]*Emoji
	order []*Emoji
}

// New creates a DB holding the given emoji.
func New(emojis ...*Emoji) *DB {
	db := &DB{byID: make(map[string]*Emoji, len(emojis))}
	for _, e := range emojis {
		db.Add(e)
	}
	return db
}

// Add registers e. It reports false, leaving the DB unchanged, when e is
// nil or its id is already taken.
func (db *DB) Add(e *Emoji) bool {
	if e == nil {
		return false
	}
	if _, ok := db.byID[e.ID]; ok {
		logx.L().Debug("emoji: duplicate id ignored", "id", e.ID)
		return false
	}
	if db.byID == nil {
		db.byID = make(map[string]*Emoji)
	}
	db.byID[e.ID] = e
	db.order = append(db.order, e)
	return true
}

// Lookup implements Database. It is safe to call on a nil *DB.
func (db *DB) Lookup(id string) (*Emoji, bool) {
	if db == nil {
		return nil, false
	}
	e, ok := db.byID[id]
	return e, ok
}

// Len returns the number of emoji in the DB.
func (db *DB) Len() int {
	if db == nil {
		return 0
	}
	return len(db.order)
}

// All returns the emoji in insertion order.
func (db *DB) All() []*Emoji {
	if db == nil {
		return nil
	}
	out := make([]*Emoji, len(db.order))
	copy(out, db.order)
	return out
}
