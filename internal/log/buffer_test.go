package log

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func lines(entries []Entry) []string {
	if entries == nil {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Line
	}
	return out
}

func add(buf *RingBuffer, ss ...string) {
	for _, s := range ss {
		buf.Add(Entry{Level: LevelInfo, Category: CatUI, Line: s})
	}
}

func TestNewRingBuffer_NormalizesCapacity(t *testing.T) {
	require.Equal(t, 5, NewRingBuffer(5).capacity)
	require.Equal(t, 1, NewRingBuffer(0).capacity)
	require.Equal(t, 1, NewRingBuffer(-5).capacity)
}

func TestRingBuffer_Wraparound(t *testing.T) {
	buf := NewRingBuffer(3)
	add(buf, "a", "b", "c", "d", "e")

	require.Equal(t, []string{"c", "d", "e"}, lines(buf.Last(3)))
	require.Equal(t, 3, buf.Len())
}

func TestRingBuffer_Last(t *testing.T) {
	tests := []struct {
		name  string
		cap   int
		added []string
		n     int
		want  []string
	}{
		{"partial buffer", 10, []string{"a", "b"}, 5, []string{"a", "b"}},
		{"exact", 3, []string{"a", "b", "c"}, 3, []string{"a", "b", "c"}},
		{"subset", 5, []string{"a", "b", "c", "d", "e"}, 2, []string{"d", "e"}},
		{"empty", 5, nil, 3, nil},
		{"zero count", 5, []string{"a"}, 0, nil},
		{"single capacity", 1, []string{"a", "b", "c"}, 1, []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewRingBuffer(tt.cap)
			add(buf, tt.added...)
			require.Equal(t, tt.want, lines(buf.Last(tt.n)))
		})
	}
}

func TestRingBuffer_ClearThenAdd(t *testing.T) {
	buf := NewRingBuffer(3)
	add(buf, "a", "b")
	buf.Clear()
	require.Nil(t, buf.Last(3))

	add(buf, "x", "y")
	require.Equal(t, []string{"x", "y"}, lines(buf.Last(2)))
}

func TestRingBuffer_Concurrent(t *testing.T) {
	buf := NewRingBuffer(100)
	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				add(buf, "entry")
			}
		}()
	}
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				_ = buf.Last(10)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 100, buf.Len())
}
