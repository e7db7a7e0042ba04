package ecs

// entityStore tracks entity generations and recycles freed ids.
type entityStore struct {
	nextID entityID
	gens   []generation
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for int(id) > len(s.gens) {
		s.gens = append(s.gens, 0)
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) || s.gens[id-1] != e.generation() {
		return false
	}
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	return id > 0 && int(id) <= len(s.gens) && s.gens[id-1] == e.generation()
}

// handleFor rebuilds the live handle for a raw storage id, if any.
func (s *entityStore) handleFor(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gens) {
		return 0, false
	}
	return makeEntity(entityID(id), s.gens[id-1]), true
}
