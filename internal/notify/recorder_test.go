package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Record(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	n := r.Record(" x1 ", "", "")
	assert.Equal(t, "X1", n.VIN)
	assert.Equal(t, DefaultChannel, n.Channel)
	assert.Equal(t, "Notify for VIN X1", n.Message)

	n = r.Record("Y2", "sms", "price drop on your watch")
	assert.Equal(t, "sms", n.Channel)
	assert.Equal(t, "price drop on your watch", n.Message)

	entries := r.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "X1", entries[0].VIN)
	assert.Equal(t, "Y2", entries[1].VIN)
}

func TestRecorder_EntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Record("X1", "", "")

	entries := r.Entries()
	entries[0].VIN = "MUTATED"

	assert.Equal(t, "X1", r.Entries()[0].VIN)
}

func TestRecorder_ConcurrentRecord(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record("X1", "", "")
		}()
	}
	wg.Wait()

	assert.Len(t, r.Entries(), 20)
}
