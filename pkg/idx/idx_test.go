package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates valid IDs", func(t *testing.T) {
		id := New()
		require.False(t, id.IsZero())

		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("IDs are unique", func(t *testing.T) {
		seen := make(map[ID]struct{})
		for range 1000 {
			id := New()
			_, dup := seen[id]
			require.False(t, dup)
			seen[id] = struct{}{}
		}
	})

	t.Run("IDs generated later sort later", func(t *testing.T) {
		a := NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		b := NewAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		require.Less(t, a.String(), b.String())
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid ulid", "01ARZ3NDEKTSV4RRFFQ69G5FAV", false},
		{"valid with whitespace", "  01ARZ3NDEKTSV4RRFFQ69G5FAV  ", false},
		{"empty", "", true},
		{"too short", "01ARZ3", true},
		{"invalid characters", "01ARZ3NDEKTSV4RRFFQ69G5FIL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.False(t, id.IsZero())
		})
	}
}

func TestIDTime(t *testing.T) {
	at := time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Second)

	require.True(t, ID("bogus").Time().IsZero())
}
