package timetable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
		days    int
	}{
		{name: "bounded", start: "2025-01-10", end: "2025-01-14", days: 5},
		{name: "single day", start: "2025-01-10", end: "2025-01-10", days: 1},
		{name: "open end", start: "2025-01-10"},
		{name: "open start", end: "2025-01-10"},
		{name: "no bounds"},
		{name: "start after end", start: "2025-01-11", end: "2025-01-10", wantErr: true},
		{name: "malformed start", start: "10/01/2025", end: "2025-01-10", wantErr: true},
		{name: "impossible date", start: "2025-02-30", end: "2025-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidDateRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.days, w.DayCount())
			assert.Len(t, w.Days(), tt.days)
		})
	}
}

func TestRequireWindow(t *testing.T) {
	_, err := RequireWindow("2025-01-10", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDateRange))

	w, err := RequireWindow("2025-01-10", "2025-01-12")
	require.NoError(t, err)
	assert.True(t, w.Bounded())
}

func TestWindowContains(t *testing.T) {
	w := mustWindow(t, "2025-01-10", "2025-01-12")

	assert.False(t, w.Contains(at(t, "2025-01-09", 23, 59)))
	assert.True(t, w.Contains(at(t, "2025-01-10", 0, 0)))
	assert.True(t, w.Contains(at(t, "2025-01-12", 23, 59)))
	assert.False(t, w.Contains(at(t, "2025-01-13", 0, 0)))

	open := Window{}
	assert.True(t, open.Contains(at(t, "1999-01-01", 9, 0)))
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 17, 30, 0, 0, time.UTC)
	w := TrailingWindow(now, 30)

	assert.Equal(t, 30, w.DayCount())
	assert.Equal(t, "2025-02-14", w.From.Format(DateLayout))
	assert.Equal(t, "2025-03-15", w.To.Format(DateLayout))
}

func TestWindowMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(mustWindow(t, "2025-01-10", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"startDate":"2025-01-10"}`, string(raw))
}
