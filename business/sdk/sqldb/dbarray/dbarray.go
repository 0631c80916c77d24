// Package dbarray provides support for postgres array types.
package dbarray

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// String represents a one-dimensional array of the PostgreSQL character types.
type String []string

// Value implements the driver.Valuer interface.
func (a String) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	if len(a) == 0 {
		return "{}", nil
	}

	var sb strings.Builder
	sb.WriteByte('{')

	for i, s := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s))
		sb.WriteByte('"')
	}

	sb.WriteByte('}')

	return sb.String(), nil
}

// Scan implements the sql.Scanner interface.
func (a *String) Scan(src any) error {
	switch src := src.(type) {
	case []byte:
		return a.scan(string(src))
	case string:
		return a.scan(src)
	case nil:
		*a = nil
		return nil
	}

	return fmt.Errorf("dbarray: cannot convert %T to String", src)
}

func (a *String) scan(src string) error {
	if src == "" || src[0] != '{' || src[len(src)-1] != '}' {
		return fmt.Errorf("dbarray: unable to parse array %q", src)
	}

	src = src[1 : len(src)-1]
	if src == "" {
		*a = String{}
		return nil
	}

	var (
		elems   []string
		sb      strings.Builder
		quoted  bool
		escaped bool
	)

	flush := func() {
		elems = append(elems, sb.String())
		sb.Reset()
	}

	for _, r := range src {
		switch {
		case escaped:
			sb.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()

	*a = elems

	return nil
}
