package content

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tile(n int) image.Image { return image.NewGray(image.Rect(0, 0, n, n)) }

func TestGetOrLoad(t *testing.T) {
	c := NewCache(4)
	loads := 0
	load := func() (image.Image, error) {
		loads++
		return tile(3), nil
	}
	a, err := c.GetOrLoad("a", load)
	if err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}
	b, err := c.GetOrLoad("a", load)
	if err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}
	if a != b {
		t.Error("second GetOrLoad returned a different image")
	}
	if loads != 1 {
		t.Errorf("load called %d times, want 1", loads)
	}
	if got, ok := c.Get("a"); !ok || got != a {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}
	want := Stats{Len: 1, Hits: 2, Misses: 1}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrorNotCached(t *testing.T) {
	c := NewCache(4)
	errBoom := errors.New("boom")
	if _, err := c.GetOrLoad("x", func() (image.Image, error) { return nil, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("GetOrLoad error = %v, want %v", err, errBoom)
	}
	if _, ok := c.Get("x"); ok {
		t.Error("failed load was cached")
	}
	if _, err := c.GetOrLoad("x", func() (image.Image, error) { return tile(1), nil }); err != nil {
		t.Fatalf("retry GetOrLoad: %v", err)
	}
}

func TestEviction(t *testing.T) {
	c := NewCache(1)
	for i := 0; i < 40; i++ {
		if _, err := c.GetOrLoad(fmt.Sprint(i), func() (image.Image, error) { return tile(1), nil }); err != nil {
			t.Fatal(err)
		}
	}
	st := c.Stats()
	if st.Len > shardCount {
		t.Errorf("Len = %d, want at most %d", st.Len, shardCount)
	}
	if st.Evictions != uint64(40-st.Len) {
		t.Errorf("Evictions = %d, want %d", st.Evictions, 40-st.Len)
	}
}

func TestConcurrentLoadsShareOneCall(t *testing.T) {
	c := NewCache(0)
	var loads atomic.Int32
	release := make(chan struct{})
	load := func() (image.Image, error) {
		loads.Add(1)
		<-release
		return tile(2), nil
	}

	var wg sync.WaitGroup
	results := make([]image.Image, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := c.GetOrLoad("shared", load)
			if err != nil {
				t.Error(err)
			}
			results[i] = img
		}()
	}
	for loads.Load() == 0 {
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	if n := loads.Load(); n != 1 {
		t.Errorf("load called %d times, want 1", n)
	}
	for i, img := range results {
		if img != results[0] {
			t.Errorf("result %d differs from result 0", i)
		}
	}
}
