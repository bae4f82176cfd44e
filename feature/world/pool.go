package world

// Pool is the shared, ordered item pool of a generation. Removal is by
// identity so two items with the same name stay distinct.
type Pool struct {
	items []*Item
}

// NewPool returns a pool holding items in order.
func NewPool(items ...*Item) *Pool {
	return &Pool{items: append([]*Item(nil), items...)}
}

// Items returns a copy of the pool contents.
func (p *Pool) Items() []*Item {
	return append([]*Item(nil), p.items...)
}

// Add appends items to the end of the pool.
func (p *Pool) Add(items ...*Item) {
	p.items = append(p.items, items...)
}

// Remove deletes the first entry that is it. It reports whether one was found.
func (p *Pool) Remove(it *Item) bool {
	for i, x := range p.items {
		if x == it {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether it is in the pool.
func (p *Pool) Contains(it *Item) bool {
	for _, x := range p.items {
		if x == it {
			return true
		}
	}
	return false
}

func (p *Pool) Len() int {
	return len(p.items)
}

// ForPlayer returns the items owned by player, in pool order.
func (p *Pool) ForPlayer(player int) []*Item {
	var out []*Item
	for _, x := range p.items {
		if x.Player == player {
			out = append(out, x)
		}
	}
	return out
}

// Count returns how many items carry name.
func (p *Pool) Count(name string) int {
	n := 0
	for _, x := range p.items {
		if x.Name == name {
			n++
		}
	}
	return n
}
