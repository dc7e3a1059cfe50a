package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	reDate  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	reTime  = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}$`)
	reURL   = regexp.MustCompile(`^https?://\S+$`)
)

// SessionID accepts any non-empty opaque token up to 100 characters.
func SessionID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// IntID parses a positive integer path/body identifier.
func IntID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty bounds cart quantities to [1,100] to cap abuse.
func Qty(n int) bool { return n >= 1 && n <= 100 }

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 30 {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

func Rating(n int) bool { return n >= 1 && n <= 5 }

// Comment allows free text up to 1000 characters.
func Comment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 1000 {
		return "", false
	}
	return s, true
}

// OptionalText trims and bounds an optional field; empty is fine.
func OptionalText(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= max
}

func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s)
}

func TimeOfDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTime.MatchString(s)
}

// ImageURL checks an optional image reference looks like an http(s) URL.
func ImageURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if len(s) > 500 {
		return "", false
	}
	return s, reURL.MatchString(s)
}
