package models

import (
	"strings"
	"time"
)

// Weekday — день недели торгового расписания, Monday=0..Sunday=6.
// Не совпадает с time.Weekday (там Sunday=0).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(?)"
	}
	return weekdayNames[d]
}

// ParseWeekday разбирает английское имя дня недели.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return 0, ruleErrorf(
		"weekDay must start with a valid day (%s) and follow \"HH:MM:SSZ\"",
		strings.Join(weekdayNames[:], "|"),
	)
}

// TradingHour — еженедельное событие расписания: день недели,
// время суток в UTC и вид события (открытие или закрытие сессии).
type TradingHour struct {
	Day    Weekday
	Hour   int
	Minute int
	Second int
	Event  EventType
}

// NewTradingHour — конструктор для кода и тестов, минуя проводной формат.
func NewTradingHour(day Weekday, hour, minute, second int, event EventType) TradingHour {
	return TradingHour{Day: day, Hour: hour, Minute: minute, Second: second, Event: event}
}

// ParseTradingHour разбирает проводной формат вида "Monday, 09:00:00Z".
func ParseTradingHour(wire string, event EventType) (TradingHour, error) {
	dayStr, timeStr, ok := strings.Cut(wire, ", ")
	if !ok {
		return TradingHour{}, weekdayFormatError()
	}
	day, err := ParseWeekday(dayStr)
	if err != nil {
		return TradingHour{}, err
	}
	tod, tErr := time.Parse("15:04:05Z", timeStr)
	if tErr != nil {
		return TradingHour{}, weekdayFormatError()
	}
	return TradingHour{
		Day:    day,
		Hour:   tod.Hour(),
		Minute: tod.Minute(),
		Second: tod.Second(),
		Event:  event,
	}, nil
}

func weekdayFormatError() *RuleError {
	return ruleErrorf(
		"weekDay must start with a valid day (%s) and follow \"HH:MM:SSZ\"",
		strings.Join(weekdayNames[:], "|"),
	)
}

// Resolve возвращает последнее конкретное наступление события
// не позже focal. Перенос через границу недели работает в обе стороны.
func (th TradingHour) Resolve(focal time.Time) time.Time {
	focal = focal.UTC()
	year, month, day := focal.Date()
	sameDay := time.Date(year, month, day, th.Hour, th.Minute, th.Second, 0, time.UTC)

	// time.Weekday нумерует с воскресенья, приводим к Monday=0
	daysDiff := int(focal.Weekday()+6)%7 - int(th.Day)
	if daysDiff < 0 || (daysDiff == 0 && focal.Before(sameDay)) {
		daysDiff += 7
	}
	return sameDay.AddDate(0, 0, -daysDiff)
}

// Session — конкретное торговое окно, выведенное из пары событий
// расписания относительно focal-момента.
type Session struct {
	Day     Weekday
	OpenAt  time.Time
	CloseAt time.Time
	Open    TradingHour
	Close   TradingHour
}

// NewSession строит окно: закрытие якорится к focal, открытие — к закрытию,
// поэтому открытие всегда предшествует своему закрытию.
func NewSession(sessionOpen, sessionClose TradingHour, focal time.Time) (Session, error) {
	if sessionOpen.Event != SessionOpen || sessionClose.Event != SessionClose {
		return Session{}, ruleErrorf(
			"sessions need to begin and end (open:%s) (close:%s)",
			sessionOpen.Event, sessionClose.Event,
		)
	}
	closeAt := sessionClose.Resolve(focal)
	openAt := sessionOpen.Resolve(closeAt)
	if closeAt.Sub(openAt) > 24*time.Hour {
		return Session{}, ruleErrorf(
			"sessions can not be longer than 24 hours (open:%s) (close:%s)",
			openAt, closeAt,
		)
	}
	return Session{
		Day:     sessionOpen.Day,
		OpenAt:  openAt,
		CloseAt: closeAt,
		Open:    sessionOpen,
		Close:   sessionClose,
	}, nil
}

// BuildSessions сворачивает список событий в окна, потребляя его
// последовательными парами (open, close, open, close, ...).
func BuildSessions(hours []TradingHour, focal time.Time) ([]Session, error) {
	if len(hours)%2 != 0 {
		return nil, ruleErrorf("trading hours must come in open/close pairs, got %d events", len(hours))
	}
	sessions := make([]Session, 0, len(hours)/2)
	for i := 0; i+1 < len(hours); i += 2 {
		s, err := NewSession(hours[i], hours[i+1], focal)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
