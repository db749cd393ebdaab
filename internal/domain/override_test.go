package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDateRangeScope_Dates(t *testing.T) {
	start := date("2025-03-03") // понедельник

	tests := []struct {
		name    string
		scope   DateRangeScope
		want    []time.Time
		wantErr error
	}{
		{
			name:  "this date only",
			scope: ThisDateOnly(),
			want:  []time.Time{start},
		},
		{
			name:  "same weekday",
			scope: SameWeekdayUntil(date("2025-03-20")),
			want:  []time.Time{start, date("2025-03-10"), date("2025-03-17")},
		},
		{
			name:  "every day",
			scope: EveryDayUntil(date("2025-03-05")),
			want:  []time.Time{start, date("2025-03-04"), date("2025-03-05")},
		},
		{
			name:  "end equals start",
			scope: EveryDayUntil(start),
			want:  []time.Time{start},
		},
		{
			name:    "end before start",
			scope:   SameWeekdayUntil(date("2025-03-01")),
			wantErr: ErrInvalidScope,
		},
		{
			name:    "too many dates",
			scope:   EveryDayUntil(date("2026-03-10")),
			wantErr: ErrInvalidScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scope.Dates(start)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScopeKind(t *testing.T) {
	kind, err := ParseScopeKind("same_weekday_until")
	require.NoError(t, err)
	assert.Equal(t, ScopeSameWeekdayUntil, kind)

	_, err = ParseScopeKind("forever")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestValidateExtraSlots(t *testing.T) {
	assert.NoError(t, ValidateExtraSlots(-10))
	assert.NoError(t, ValidateExtraSlots(10))
	assert.ErrorIs(t, ValidateExtraSlots(11), ErrInvalidExtraSlots)
	assert.ErrorIs(t, ValidateExtraSlots(-11), ErrInvalidExtraSlots)
}

func TestConflictError(t *testing.T) {
	err := error(&ConflictError{Date: date("2025-03-10"), Times: times("12:00", "12:30")})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "2025-03-10")
	assert.Contains(t, err.Error(), "12:00, 12:30")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.Times, 2)
}
