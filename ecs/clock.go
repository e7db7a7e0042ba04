package ecs

// Clock carries the elapsed tick duration and total wall time into systems.
// The host advances it once per tick before running the scheduler.
type Clock struct {
	Delta   float64
	Elapsed float64
}

// Advance sets the current tick duration and accumulates elapsed time.
func (c *Clock) Advance(dt float64) {
	c.Delta = dt
	c.Elapsed += dt
}
