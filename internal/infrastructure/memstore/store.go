// Package memstore is an in-process document store holding the four catalog
// collections. It backs STORE_DRIVER=memory and the service and handler tests.
package memstore

import (
	"sync"

	authorModel "locallibrary/internal/domains/author/model"
	bookModel "locallibrary/internal/domains/book/model"
	bookinstanceModel "locallibrary/internal/domains/bookinstance/model"
	genreModel "locallibrary/internal/domains/genre/model"

	"github.com/google/uuid"
)

// collection keeps items in insertion order.
type collection[T any] struct {
	order []uuid.UUID
	items map[uuid.UUID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[uuid.UUID]T)}
}

func (c *collection[T]) get(id uuid.UUID) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// put inserts or replaces; a replaced item keeps its position.
func (c *collection[T]) put(id uuid.UUID, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id uuid.UUID) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.items)
}

// Store holds every collection behind one lock.
type Store struct {
	mu            sync.RWMutex
	authors       *collection[authorModel.Author]
	genres        *collection[genreModel.Genre]
	books         *collection[bookModel.Book]
	bookinstances *collection[bookinstanceModel.BookInstance]
}

func New() *Store {
	return &Store{
		authors:       newCollection[authorModel.Author](),
		genres:        newCollection[genreModel.Genre](),
		books:         newCollection[bookModel.Book](),
		bookinstances: newCollection[bookinstanceModel.BookInstance](),
	}
}

// Ping always succeeds; it satisfies the health check used for postgres.
func (s *Store) Ping() error {
	return nil
}
