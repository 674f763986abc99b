package sim

// Poolable is implemented by entity pointers managed by a Pool.
type Poolable interface {
	comparable
	Deactivate()
}

// Pool recycles instances of one entity kind.
// An instance is either in use (handed out by Acquire) or on the free list,
// never both.
type Pool[T Poolable] struct {
	free    []T
	inUse   map[T]bool
	created int
}

// NewPool creates an empty pool.
func NewPool[T Poolable]() *Pool[T] {
	return &Pool[T]{inUse: make(map[T]bool)}
}

// Acquire returns the most recently released instance, or a new one from
// factory when the free list is empty. The instance is not reset; callers
// must Reinitialize it.
func (p *Pool[T]) Acquire(factory func() T) T {
	var x T
	if n := len(p.free); n > 0 {
		x = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		x = factory()
		p.created++
	}
	p.inUse[x] = true
	return x
}

// Release deactivates x and returns it to the free list.
// Releasing something this pool did not hand out, or releasing twice, does nothing.
func (p *Pool[T]) Release(x T) bool {
	if !p.inUse[x] {
		return false
	}
	delete(p.inUse, x)
	x.Deactivate()
	p.free = append(p.free, x)
	return true
}

// InUse returns the number of acquired, unreleased instances.
func (p *Pool[T]) InUse() int { return len(p.inUse) }

// Free returns the number of instances waiting for reuse.
func (p *Pool[T]) Free() int { return len(p.free) }

// Created returns how many instances the factory has built.
func (p *Pool[T]) Created() int { return p.created }

// Pools groups the per-kind pools of a World.
type Pools struct {
	Threats *Pool[*Threat]
	Bullets *Pool[*Bullet]
	Agents  *Pool[*Agent]
}

// NewPools creates empty pools for every entity kind.
func NewPools() *Pools {
	return &Pools{
		Threats: NewPool[*Threat](),
		Bullets: NewPool[*Bullet](),
		Agents:  NewPool[*Agent](),
	}
}

// DestroyThreat removes t from play and recycles it.
func (p *Pools) DestroyThreat(s *State, t *Threat) {
	s.RemoveThreat(t)
	p.Threats.Release(t)
}

// DestroyBullet removes b from play and recycles it.
func (p *Pools) DestroyBullet(s *State, b *Bullet) {
	s.RemoveBullet(b)
	p.Bullets.Release(b)
}

// DestroyAgent removes a from play and recycles it.
func (p *Pools) DestroyAgent(s *State, a *Agent) {
	s.RemoveAgent(a)
	p.Agents.Release(a)
}
