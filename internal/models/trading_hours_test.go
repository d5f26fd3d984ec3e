package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// среда, середина дня
var focal = time.Date(2023, 10, 25, 12, 0, 0, 0, time.UTC)

func TestResolveRecurring(t *testing.T) {
	tests := []struct {
		name string
		day  Weekday
		hour int
		want time.Time
	}{
		{"same day already past", Wednesday, 10, time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC)},
		{"same day still ahead rolls back a week", Wednesday, 15, time.Date(2023, 10, 18, 15, 0, 0, 0, time.UTC)},
		{"previous day", Tuesday, 10, time.Date(2023, 10, 24, 10, 0, 0, 0, time.UTC)},
		{"two days back", Monday, 9, time.Date(2023, 10, 23, 9, 0, 0, 0, time.UTC)},
		{"future weekday rolls back a week", Friday, 10, time.Date(2023, 10, 20, 10, 0, 0, 0, time.UTC)},
		{"sunday wraps", Sunday, 23, time.Date(2023, 10, 22, 23, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTradingHour(tt.day, tt.hour, 0, 0, SessionOpen)
			require.Equal(t, tt.want, th.Resolve(focal))
		})
	}
}

func TestResolveRecurringProperties(t *testing.T) {
	focals := []time.Time{
		focal,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),   // понедельник, полночь
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), // високосный четверг
		time.Date(2023, 12, 31, 6, 30, 0, 0, time.UTC),  // воскресенье
	}
	for _, f := range focals {
		for day := Monday; day <= Sunday; day++ {
			for _, hour := range []int{0, 9, 23} {
				th := NewTradingHour(day, hour, 15, 30, SessionClose)
				got := th.Resolve(f)

				require.False(t, got.After(f), "resolved %s after focal %s", got, f)
				require.False(t, got.Before(f.AddDate(0, 0, -7)), "resolved %s more than a week before %s", got, f)
				require.Equal(t, int(day), int(got.Weekday()+6)%7)
				require.Equal(t, hour, got.Hour())
				require.Equal(t, 15, got.Minute())
				require.Equal(t, 30, got.Second())
			}
		}
	}
}

func TestNewSessionRejectsSwappedKinds(t *testing.T) {
	open := NewTradingHour(Monday, 9, 0, 0, SessionClose)
	clos := NewTradingHour(Monday, 17, 0, 0, SessionOpen)

	_, err := NewSession(open, clos, focal)
	require.Error(t, err)
	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Contains(t, err.Error(), "sessions need to begin and end")
}

func TestNewSessionRejectsOverdaySpan(t *testing.T) {
	open := NewTradingHour(Monday, 9, 0, 0, SessionOpen)
	clos := NewTradingHour(Tuesday, 10, 0, 0, SessionClose)

	_, err := NewSession(open, clos, focal)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sessions can not be longer than 24 hours")
}

func TestNewSessionSameDay(t *testing.T) {
	open := NewTradingHour(Monday, 9, 0, 0, SessionOpen)
	clos := NewTradingHour(Monday, 17, 0, 0, SessionClose)

	s, err := NewSession(open, clos, focal)
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 10, 23, 9, 0, 0, 0, time.UTC), s.OpenAt)
	require.Equal(t, time.Date(2023, 10, 23, 17, 0, 0, 0, time.UTC), s.CloseAt)
	require.Equal(t, Monday, s.Day)
}

func TestNewSessionOpenAnchoredToClose(t *testing.T) {
	// окно через границу недели: открытие в воскресенье должно
	// якориться к закрытию в понедельник, а не к focal-среде
	open := NewTradingHour(Sunday, 23, 0, 0, SessionOpen)
	clos := NewTradingHour(Monday, 22, 0, 0, SessionClose)

	s, err := NewSession(open, clos, focal)
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 10, 22, 23, 0, 0, 0, time.UTC), s.OpenAt)
	require.Equal(t, time.Date(2023, 10, 23, 22, 0, 0, 0, time.UTC), s.CloseAt)
	require.True(t, s.OpenAt.Before(s.CloseAt))
}

func TestBuildSessions(t *testing.T) {
	hours := []TradingHour{
		NewTradingHour(Monday, 9, 0, 0, SessionOpen),
		NewTradingHour(Monday, 17, 0, 0, SessionClose),
		NewTradingHour(Tuesday, 9, 0, 0, SessionOpen),
		NewTradingHour(Tuesday, 17, 0, 0, SessionClose),
	}

	sessions, err := BuildSessions(hours, focal)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, Monday, sessions[0].Day)
	require.Equal(t, Tuesday, sessions[1].Day)
}

func TestBuildSessionsOddLength(t *testing.T) {
	hours := []TradingHour{
		NewTradingHour(Monday, 9, 0, 0, SessionOpen),
		NewTradingHour(Monday, 17, 0, 0, SessionClose),
		NewTradingHour(Tuesday, 9, 0, 0, SessionOpen),
	}

	_, err := BuildSessions(hours, focal)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open/close pairs")
}

func TestParseTradingHour(t *testing.T) {
	th, err := ParseTradingHour("Monday, 09:30:15Z", SessionOpen)
	require.NoError(t, err)
	require.Equal(t, Monday, th.Day)
	require.Equal(t, 9, th.Hour)
	require.Equal(t, 30, th.Minute)
	require.Equal(t, 15, th.Second)
	require.Equal(t, SessionOpen, th.Event)
}

func TestParseTradingHourMalformed(t *testing.T) {
	for _, wire := range []string{
		"Funday, 09:00:00Z",
		"Monday 09:00:00Z",
		"Monday, 9:00",
		"",
	} {
		_, err := ParseTradingHour(wire, SessionOpen)
		require.Error(t, err, "wire %q", wire)
		var ruleErr *RuleError
		require.ErrorAs(t, err, &ruleErr)
	}
}
