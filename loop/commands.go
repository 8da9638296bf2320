package loop

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Commands buffers player commands until the scheduler's goroutine drains
// them. Push may be called from any goroutine; the game itself is only ever
// touched by the goroutine that calls Flush.
type Commands struct {
	mu      sync.Mutex
	pending []tetris.Command
	// spare is swapped with pending on each flush so the buffers are reused.
	spare []tetris.Command
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a command.
func (c *Commands) Push(cmd tetris.Command) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Flush hands every queued command to apply in FIFO order and empties the
// buffer. Commands pushed while flushing wait for
// the next flush.
func (c *Commands) Flush(apply func(tetris.Command)) {
	c.mu.Lock()
	batch := c.pending
	c.pending = c.spare[:0]
	c.mu.Unlock()

	for _, cmd := range batch {
		apply(cmd)
	}

	c.mu.Lock()
	c.spare = batch[:0]
	c.mu.Unlock()
}

// Clear drops all queued commands.
func (c *Commands) Clear() {
	c.mu.Lock()
	c.pending = c.pending[:0]
	c.mu.Unlock()
}
