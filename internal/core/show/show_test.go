package show_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/internal/core/show"
)

var now = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

/*
TestIsUpcoming checks the boundary: a show starting exactly now is upcoming.
*/
func TestIsUpcoming(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"past", now.Add(-time.Second), false},
		{"exactly_now", now, true},
		{"future", now.Add(time.Hour), true},
		{"other_zone_same_instant", now.In(time.FixedZone("CST", -6*3600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, show.IsUpcoming(tt.start, now))
		})
	}
}

/*
TestPartition verifies that past and upcoming are disjoint, cover the input,
and keep the input order.
*/
func TestPartition(t *testing.T) {
	starts := []time.Time{
		now.Add(2 * time.Hour),
		now.Add(-48 * time.Hour),
		now,
		now.Add(-time.Minute),
		now.Add(24 * time.Hour),
	}

	past, upcoming := show.Partition(starts, func(start time.Time) time.Time { return start }, now)

	assert.Equal(t, []time.Time{starts[1], starts[3]}, past)
	assert.Equal(t, []time.Time{starts[0], starts[2], starts[4]}, upcoming)
	assert.Len(t, starts, len(past)+len(upcoming))
	assert.Equal(t, 3, show.CountUpcoming(starts, now))
}

/*
TestPartition_Empty returns non-nil empty slices.
*/
func TestPartition_Empty(t *testing.T) {
	past, upcoming := show.Partition(nil, func(l *show.Listing) time.Time { return l.StartTime }, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}
