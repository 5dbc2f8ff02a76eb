package assist

import "sync"

// Cache holds the assist payloads for one session, keyed by question index.
// A cached payload has already been paid for; showing it again is free.
type Cache struct {
	mu           sync.Mutex
	explanations map[int]Explanation
	examples     map[int]Example
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		explanations: make(map[int]Explanation),
		examples:     make(map[int]Example),
	}
}

// Explanation returns the cached explanation for the question index.
func (c *Cache) Explanation(idx int) (Explanation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.explanations[idx]
	return e, ok
}

// PutExplanation stores an explanation. Fallback payloads are cached too:
// the charge stands, so the student keeps whatever was produced for it.
func (c *Cache) PutExplanation(idx int, e Explanation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.explanations[idx] = e
}

// Example returns the cached worked example for the question index.
func (c *Cache) Example(idx int) (Example, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.examples[idx]
	return e, ok
}

// PutExample stores a worked example.
func (c *Cache) PutExample(idx int, e Example) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.examples[idx] = e
}

// ClearExample removes the cached example before a regeneration attempt.
// If the regeneration then fails, the slot stays empty; the old payload is
// gone the moment the student asks for a fresh one.
func (c *Cache) ClearExample(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.examples, idx)
}
