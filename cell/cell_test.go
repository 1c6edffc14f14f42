package cell_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shutbox/cell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type dummy struct {
	text string
	num  uint64
}

func TestCell_HoldsData(t *testing.T) {
	c := cell.New(dummy{})
	assert.Equal(t, dummy{}, *c.Get())
	assert.Equal(t, dummy{}, c.Value())
}

func TestCell_Set(t *testing.T) {
	c := cell.New(dummy{})
	c.Set(dummy{text: "I'm different!"})
	assert.Equal(t, dummy{text: "I'm different!"}, *c.Get())
}

func TestCell_OldReference(t *testing.T) {
	c := cell.New(dummy{})

	// Snapshot taken before the write keeps observing the old value.
	initial := c.Get()
	c.Set(dummy{text: "I'm different!"})

	assert.Equal(t, dummy{}, *initial)
	assert.Equal(t, dummy{text: "I'm different!"}, *c.Get())
}

func TestCell_SharedAcrossGoroutines(t *testing.T) {
	c := cell.New(dummy{})
	initial := c.Get()

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.Equal(t, dummy{}, *c.Get())
		c.Set(dummy{text: "I'm different!"})
	}()
	<-done

	assert.Equal(t, dummy{}, *initial)
	assert.Equal(t, dummy{text: "I'm different!"}, *c.Get())
}

func TestCell_MutateDoesNotHoldLock(t *testing.T) {
	c := cell.New(dummy{})

	var during *dummy
	c.Mutate(func(d dummy) dummy {
		d.num++
		// The write is not installed yet, and other handle operations
		// must not block while fn runs.
		assert.Equal(t, dummy{}, *c.Get())
		c.Set(dummy{text: "interleaved"})
		during = c.Get()
		return d
	})

	// The mutation result is installed last, so it wins.
	assert.Equal(t, dummy{num: 1}, *c.Get())
	// The snapshot installed during the mutation stays valid.
	require.NotNil(t, during)
	assert.Equal(t, dummy{text: "interleaved"}, *during)
}

func TestCell_UpdateHoldsLock(t *testing.T) {
	c := cell.New(5)

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			c.Update(func(n int) int { return n + 1 })
		})
	}
	wg.Wait()

	// Unlike Mutate, Update cannot lose increments.
	assert.Equal(t, 105, c.Value())
}

func TestCell_Replace(t *testing.T) {
	c := cell.New(dummy{text: "A!"})
	p := &dummy{text: "B!"}

	old := c.Replace(p)

	assert.Equal(t, dummy{text: "A!"}, *old)
	assert.Same(t, p, c.Get())
}

func TestCell_Acquire(t *testing.T) {
	original := cell.New(dummy{text: "A!"})
	acquired := cell.Acquire(original.Get())

	assert.Equal(t, *original.Get(), *acquired.Get())

	// original installs a new snapshot; acquired keeps the old one.
	original.Set(dummy{})

	assert.Equal(t, dummy{text: "A!"}, *acquired.Get())
	assert.Equal(t, dummy{}, *original.Get())
}

func TestOptCell_ZeroValueEmpty(t *testing.T) {
	var o cell.OptCell[dummy]

	assert.Nil(t, o.Get())
	_, ok := o.Value()
	assert.False(t, ok)
}

func TestOptCell_HoldsData(t *testing.T) {
	o := cell.NewOpt(dummy{num: 7})

	v, ok := o.Value()
	require.True(t, ok)
	assert.Equal(t, dummy{num: 7}, v)
}

func TestOptCell_OldReference(t *testing.T) {
	o := cell.NewOpt(dummy{})

	initial := o.Get()
	o.Set(dummy{text: "I'm different!"})

	assert.Equal(t, dummy{}, *initial)
	assert.Equal(t, dummy{text: "I'm different!"}, *o.Get())
}

func TestOptCell_Take(t *testing.T) {
	o := cell.NewOpt(dummy{num: 3})

	taken := o.Take()
	require.NotNil(t, taken)
	assert.Equal(t, dummy{num: 3}, *taken)
	assert.Nil(t, o.Get())

	// Taking from an empty cell is a no-op.
	assert.Nil(t, o.Take())
}

func TestOptCell_MutateEmptyIsNoop(t *testing.T) {
	var o cell.OptCell[int]

	o.Mutate(func(n int) int { return n + 1 })

	assert.Nil(t, o.Get())
}

func TestOptCell_Mutate(t *testing.T) {
	o := cell.NewOpt(5)
	o.Mutate(func(n int) int { return n + 1 })

	v, ok := o.Value()
	require.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestOptCell_Update(t *testing.T) {
	var o cell.OptCell[int]

	// Update sees nil for an empty cell and may fill it.
	o.Update(func(p *int) *int {
		assert.Nil(t, p)
		n := 1
		return &n
	})
	v, ok := o.Value()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Or empty it again.
	o.Update(func(p *int) *int {
		assert.NotNil(t, p)
		return nil
	})
	assert.Nil(t, o.Get())
}

func TestEqual(t *testing.T) {
	var empty1, empty2 cell.OptCell[int]
	assert.True(t, cell.Equal(&empty1, &empty2))

	a := cell.NewOpt(1)
	b := cell.NewOpt(1)
	assert.True(t, cell.Equal(a, b))

	b.Set(2)
	assert.False(t, cell.Equal(a, b))
	assert.False(t, cell.Equal(a, &empty1))
}
