package collation

import (
	"bytes"
	"sort"
	"sync"
	"testing"
)

func TestPolishAlphabetOrder(t *testing.T) {
	k := NewKeyer()
	titles := []string{"żaba", "mama", "łza", "zebra", "ludzie", "źrebak", "ćma", "cyrk"}
	sort.Slice(titles, func(i, j int) bool { return k.Compare(titles[i], titles[j]) < 0 })

	want := []string{"cyrk", "ćma", "ludzie", "łza", "mama", "zebra", "źrebak", "żaba"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", i, titles[i], want[i], titles)
		}
	}
}

func TestKeyCaseInsensitive(t *testing.T) {
	k := NewKeyer()
	if !bytes.Equal(k.Key("Matrix"), k.Key("matrix")) {
		t.Fatal("case should not affect the key")
	}
	if !bytes.Equal(k.Key("ŁZA"), k.Key("łza")) {
		t.Fatal("case should not affect diacritic letters either")
	}
}

func TestKeyMemoized(t *testing.T) {
	k := NewKeyer()
	a := k.Key("Gęślą")
	b := k.Key("Gęślą")
	if !bytes.Equal(a, b) {
		t.Fatal("repeated key lookups must agree")
	}
}

func TestKeyerConcurrent(t *testing.T) {
	k := NewKeyer()
	titles := []string{"żaba", "mama", "łza", "zebra"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = k.Key(titles[j%len(titles)])
			}
		}()
	}
	wg.Wait()
}
