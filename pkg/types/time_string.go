package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// timePattern принимает HH:MM и HH:MM:SS, секунды отбрасываются при нормализации
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

const minutesPerDay = 24 * 60

// TimeString локальное время суток в нормализованном виде "HH:MM".
// Хранится и сравнивается без привязки к дате и часовому поясу.
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты, секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и нормализует строку времени.
// Принимает "H:MM", "HH:MM" и "HH:MM:SS"; результат всегда "HH:MM" с ведущими нулями.
func NewTimeStringFromString(s string) (TimeString, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным нормализованным временем
func (t TimeString) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}
	if _, err := t.MinutesFromMidnight(); err != nil {
		return err
	}
	return nil
}

// MinutesFromMidnight возвращает количество минут с начала суток
func (t TimeString) MinutesFromMidnight() (int, error) {
	m := timePattern.FindStringSubmatch(string(t))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hour*60 + minute, nil
}

// Hour возвращает час (0-23); для некорректного значения возвращает 0
func (t TimeString) Hour() int {
	mins, err := t.MinutesFromMidnight()
	if err != nil {
		return 0
	}
	return mins / 60
}

// Minute возвращает минуту (0-59); для некорректного значения возвращает 0
func (t TimeString) Minute() int {
	mins, err := t.MinutesFromMidnight()
	if err != nil {
		return 0
	}
	return mins % 60
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Результат должен оставаться в пределах одних суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	mins, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}

	total := mins + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Некорректные значения считаются равными полуночи.
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.MinutesFromMidnight()
	b, _ := other.MinutesFromMidnight()
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.MinutesFromMidnight()
	b, _ := other.MinutesFromMidnight()
	return a > b
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner.
// Колонки TIME приходят от драйвера как string, []byte или time.Time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}
