package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestStripeIsStableAndBounded(t *testing.T) {
	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("missing-%d", i)
		s := stripe(key)
		if s < 0 || s >= lockStripes {
			t.Fatalf("stripe(%q) = %d, outside [0,%d)", key, s, lockStripes)
		}
		if again := stripe(key); again != s {
			t.Fatalf("stripe(%q) changed from %d to %d", key, s, again)
		}
	}
}

func TestLocks_SerializesOneKey(t *testing.T) {
	var (
		locks   Locks
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("order-1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()
	if counter != 100 {
		t.Fatalf("counter = %d, want 100", counter)
	}
}
