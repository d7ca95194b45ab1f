package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Load())

	c.Add(5)
	assert.Equal(t, uint64(55), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 10*time.Millisecond)
}
