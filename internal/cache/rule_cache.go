// Package cache provides the in-process memoization of "active rule for
// product X". It is never the source of truth: writers invalidate it after a
// successful persist, and entries age out after a fixed TTL checked lazily on
// read. Lookups that find no rule are remembered too, so repeated calculate
// calls for undiscounted products skip the store within one TTL window.
package cache

import (
	"sync"
	"time"

	"github.com/italoandres/eshop-backend/internal/models"
)

type entry struct {
	rule     *models.DiscountRule // nil records a negative lookup
	insertAt time.Time
}

// RuleCache memoizes active discount rules keyed by product id. Construct it
// with the TTL and a clock; tests inject a fake clock.
type RuleCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewRuleCache(ttl time.Duration, now func() time.Time) *RuleCache {
	if now == nil {
		now = time.Now
	}
	return &RuleCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached rule for the product. The second return reports
// whether a live entry existed; a true result with a nil rule is a remembered
// "no rule" lookup. Expired entries are removed on the way out.
func (c *RuleCache) Get(productID string) (*models.DiscountRule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[productID]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.insertAt) > c.ttl {
		delete(c.entries, productID)
		return nil, false
	}

	return e.rule, true
}

// Set stores the lookup result for the product. A nil rule records that no
// active rule exists.
func (c *RuleCache) Set(productID string, rule *models.DiscountRule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[productID] = entry{
		rule:     rule,
		insertAt: c.now(),
	}
}

// Invalidate drops the entries for the given products.
func (c *RuleCache) Invalidate(productIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range productIDs {
		delete(c.entries, id)
	}
}

// Clear drops every entry. Store-wide rule changes go through here.
func (c *RuleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Len counts live entries without pruning expired ones.
func (c *RuleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
