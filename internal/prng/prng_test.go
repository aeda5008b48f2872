package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New("#3a5cb8")
	b := New("#3a5cb8")
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New("alpha")
	b := New("beta")
	same := 0
	for i := 0; i < 16; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	assert.Less(t, same, 16)
}

func TestNextRange(t *testing.T) {
	r := FromNumber(42)
	for i := 0; i < 1000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, outside [0,1)", v)
		}
	}
}

func TestIntn(t *testing.T) {
	r := New("intn")
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d", v)
		}
		seen[v] = true
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, 0, r.Intn(0))
}

func TestCopyForksStream(t *testing.T) {
	r := New("fork")
	r.Next()
	fork := r
	assert.Equal(t, r.State(), fork.State())
	assert.Equal(t, r.Next(), fork.Next())
}

func TestHashStringNonNegative(t *testing.T) {
	tests := []string{"", "a", "dankpalette", "a very long seed string that will overflow int32 several times over"}
	for _, s := range tests {
		if h := HashString(s); h < 0 {
			t.Errorf("HashString(%q) = %d, want non-negative", s, h)
		}
	}
	assert.Equal(t, int32(0), HashString(""))
	assert.Equal(t, int32(97), HashString("a"))
}
