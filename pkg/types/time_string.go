package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflow")
)

const timeLayout = "15:04"

// TimeString время суток в формате HH:MM без даты и часового пояса
// Используется для часов работы и подписей слотов
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Hour возвращает часы
func (t TimeString) Hour() int { return t.minutes / 60 }

// Minute возвращает минуты
func (t TimeString) Minute() int { return t.minutes % 60 }

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() int { return t.minutes }

// IsZero true, если значение не задано
func (t TimeString) IsZero() bool { return !t.valid }

// Validate проверяет, что значение задано и лежит в пределах суток
func (t TimeString) Validate() error {
	if !t.valid || t.minutes < 0 || t.minutes >= 24*60 {
		return ErrInvalidTimeString
	}
	return nil
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m := t.minutes + n
	if m < 0 || m >= 24*60 {
		return TimeString{}, fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, n)
	}
	return TimeString{minutes: m, valid: true}, nil
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool { return t.minutes < other.minutes }

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool { return t.minutes > other.minutes }

// Equal совпадает с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// On возвращает момент времени в указанный день в часовом поясе loc
func (t TimeString) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText реализует encoding.TextMarshaler (JSON, TOML)
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler (JSON, TOML)
func (t *TimeString) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		return t.UnmarshalText([]byte(trimSeconds(v)))
	case []byte:
		return t.UnmarshalText([]byte(trimSeconds(string(v))))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// postgres TIME отдаёт "HH:MM:SS"
func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
