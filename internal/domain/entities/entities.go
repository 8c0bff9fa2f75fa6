package entities

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Common errors
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("title must not be empty")
)

// timestampLayout is the wire format for task timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// Flag is a boolean persisted and serialized as 0/1.
type Flag bool

// MarshalJSON renders the flag as a bare 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts JSON numbers (any nonzero value counts as set)
// as well as plain booleans.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch s := string(data); s {
	case "true":
		*f = true
	case "false":
		*f = false
	default:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid flag value %s", s)
		}
		*f = n != 0
	}
	return nil
}

// Value implements driver.Valuer, storing the flag as 0/1.
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner for integer and boolean columns.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*f = v != 0
	case bool:
		*f = Flag(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("scan flag: %w", err)
		}
		*f = n != 0
	case nil:
		*f = false
	default:
		return fmt.Errorf("scan flag: unsupported type %T", src)
	}
	return nil
}

// Timestamp is a creation time rendered as "YYYY-MM-DD HH:MM:SS".
type Timestamp time.Time

// MarshalJSON renders the timestamp in the wire format.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(timestampLayout))), nil
}

// UnmarshalJSON parses the wire format.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed)
	return nil
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = Timestamp(v)
	case []byte:
		parsed, err := time.Parse(timestampLayout, string(v))
		if err != nil {
			return fmt.Errorf("scan timestamp: %w", err)
		}
		*t = Timestamp(parsed)
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Task represents a to-do item in the system. ID and CreatedAt are
// assigned by the store on insert and never change afterwards.
type Task struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Done      Flag      `json:"done" db:"done"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
}
