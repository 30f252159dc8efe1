package persistence

// Record is anything stored in a Collection.
type Record interface {
	GetID() int
}

// Collection is an ordered list of records keyed by a project-local numeric id.
// The zero value is an empty collection.
type Collection[T Record] struct {
	items []T
}

func NewCollection[T Record](items ...T) Collection[T] {
	c := Collection[T]{}
	c.ReplaceAll(items)
	return c
}

// List returns a copy of the records in insertion order.
func (c Collection[T]) List() []T {
	r := make([]T, 0, len(c.items))
	for _, item := range c.items {
		r = append(r, cloneRecord(item))
	}
	return r
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

func (c Collection[T]) Find(id int) (T, bool) {
	for _, item := range c.items {
		if item.GetID() == id {
			return cloneRecord(item), true
		}
	}
	var zero T
	return zero, false
}

// NextID is max(existing ids, 0) + 1.
func (c Collection[T]) NextID() int {
	max := 0
	for _, item := range c.items {
		if item.GetID() > max {
			max = item.GetID()
		}
	}
	return max + 1
}

func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// Replace swaps the record with the same id, keeping its position.
func (c *Collection[T]) Replace(item T) bool {
	for i, v := range c.items {
		if v.GetID() == item.GetID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *Collection[T]) Remove(id int) bool {
	for i, v := range c.items {
		if v.GetID() == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) ReplaceAll(items []T) {
	c.items = make([]T, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, cloneRecord(item))
	}
}

func (c Collection[T]) clone() Collection[T] {
	return Collection[T]{items: c.List()}
}

func cloneRecord[T Record](item T) T {
	if cl, ok := any(item).(interface{ Clone() T }); ok {
		return cl.Clone()
	}
	return item
}
