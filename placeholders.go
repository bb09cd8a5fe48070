package sqlhelper

import (
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderPrefixForDBType maps db types to their native bind-marker
// prefix. '?' and 0 mean anonymous markers, anything else is an
// ordinal prefix ($1, $2, ...).
var PlaceholderPrefixForDBType = map[string]byte{
	"mysql":  '?',
	"pgsql":  '$',
	"sqlite": 0, // NOTE: sqlite supports all of them
}

// UnifyPlaceholders converts pymysql-style %s markers to the canonical
// anonymous `?` marker, so statements written for either backend run on
// both. This is not intended to handle everything (markers inside
// string literals are rewritten too), just the common cases.
func UnifyPlaceholders(sql string) string {
	return strings.ReplaceAll(sql, "%s", "?")
}

// ReplaceStaticPlaceholders rewrites anonymous `?` markers to ordinal
// markers with the given prefix ($1, $2, ...). `??` escapes are left
// untouched.
func ReplaceStaticPlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var builder strings.Builder
	builder.Grow(len(sql) + 8)
	cnt := 1
	i := 0
	for i < len(sql) {
		if sql[i] == '?' {
			// Do Not Touch Dynamic Placeholders '??'
			if i+1 < len(sql) && sql[i+1] == '?' {
				builder.WriteByte('?')
				builder.WriteByte('?')
				i += 2
				continue
			}
			builder.WriteByte(prefix)
			builder.WriteString(strconv.Itoa(cnt))
			cnt++
		} else {
			builder.WriteByte(sql[i])
		}
		i++
	}
	return builder.String()
}

// Placeholders returns n comma-joined markers for the given prefix,
// for building IN lists and VALUES clauses.
func Placeholders(prefix byte, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if prefix == '?' || prefix == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte(prefix)
			b.WriteString(strconv.Itoa(i + 1))
		}
	}
	return b.String()
}

var regexUnixTimestamp = regexp.MustCompile(`(?i)unix_timestamp\(\)`)

// ReplaceUnixTimestamp substitutes the mysql unix_timestamp()
// pseudo-function with a literal, for backends without a native
// equivalent.
func ReplaceUnixTimestamp(sql string, now int64) string {
	return regexUnixTimestamp.ReplaceAllString(sql, strconv.FormatInt(now, 10))
}
