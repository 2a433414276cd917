// Package orm is a thin fluent wrapper over GORM with read-through caching.
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/pkg/cache"
	"github.com/Bamimore2000/borokini/pkg/database"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Select(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Joins(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(query, args...)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Scan(dest interface{}) error {
	return q.db.Scan(dest).Error
}

func (q *Query) Count(n *int64) error {
	return q.db.Count(n).Error
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Updates applies a partial update from a struct or map to the matched rows.
func (q *Query) Updates(values interface{}) error {
	return q.db.Updates(values).Error
}

func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// Cache is a read-through Find: serve dest from Redis when the key is warm,
// otherwise query and populate the key for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	err := q.db.Find(dest).Error
	if err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}
