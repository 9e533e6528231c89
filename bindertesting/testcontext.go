package bindertesting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pagefold/go-binder/binder"
)

type TestContext struct {
	T    *testing.T
	Rand *rand.Rand
	Cfg  TestConfig
}

type TestConfig struct {
	// Seed fixes the RNG so that the generated workload is the same from
	// run to run. It is normal to force it to some fixed value.
	Seed            int64
	TestLabelPrefix string
	NumEntries      int
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.NumEntries == 0 {
		cfg.NumEntries = 64
	}
	return TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
}

// GenerateKVs returns n distinct keys with generated string values. Values
// are uuids drawn from the seeded RNG so the fixture stays reproducible.
func (c *TestContext) GenerateKVs(n int) ([]int, []string) {
	keys := make([]int, 0, n)
	values := make([]string, 0, n)
	for k := range n {
		u, err := uuid.NewRandomFromReader(c.Rand)
		require.NoError(c.T, err)
		keys = append(keys, k)
		values = append(values, u.String())
	}
	return keys, values
}

// PopulateFront inserts n generated entries with InsertFront and returns the
// keys in the resulting sequence order (latest insertion first).
func (c *TestContext) PopulateFront(b *binder.Binder[int, string], n int) []int {
	keys, values := c.GenerateKVs(n)
	for i, k := range keys {
		require.NoError(c.T, b.InsertFront(k, values[i]))
	}
	slices.Reverse(keys)
	return keys
}

// PopulateRandom applies n successful insertions, randomly mixing
// InsertFront with InsertAfter at a random anchor, and returns the keys in
// the expected sequence order.
func (c *TestContext) PopulateRandom(b *binder.Binder[int, string], n int) []int {
	keys, values := c.GenerateKVs(n)
	var order []int
	for i, k := range keys {
		if len(order) == 0 || c.Rand.Intn(2) == 0 {
			require.NoError(c.T, b.InsertFront(k, values[i]))
			order = slices.Insert(order, 0, k)
			continue
		}
		at := c.Rand.Intn(len(order))
		require.NoError(c.T, b.InsertAfter(order[at], k, values[i]))
		order = slices.Insert(order, at+1, k)
	}
	return order
}
