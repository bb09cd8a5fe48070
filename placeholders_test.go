package sqlhelper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifyPlaceholders(t *testing.T) {
	require.Equal(t, "SELECT ?", UnifyPlaceholders("SELECT %s"))
	require.Equal(t, "SELECT ?, ?", UnifyPlaceholders("SELECT %s, ?"))
	require.Equal(t, "SELECT 1", UnifyPlaceholders("SELECT 1"))
}

func TestReplaceStaticPlaceholders(t *testing.T) {
	cases := []struct {
		sql    string
		prefix byte
		want   string
	}{
		{"SELECT * FROM t WHERE a=? AND b=?", '$', "SELECT * FROM t WHERE a=$1 AND b=$2"},
		{"SELECT * FROM t WHERE a=? AND b=?", '?', "SELECT * FROM t WHERE a=? AND b=?"},
		{"SELECT * FROM t WHERE a=? AND b=?", 0, "SELECT * FROM t WHERE a=? AND b=?"},
		{"SELECT * FROM t WHERE a IN (??) AND b=?", '$', "SELECT * FROM t WHERE a IN (??) AND b=$1"},
		{"no markers", '$', "no markers"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ReplaceStaticPlaceholders(tc.sql, tc.prefix))
	}
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, "?,?,?", Placeholders('?', 3))
	require.Equal(t, "$1,$2,$3", Placeholders('$', 3))
	require.Equal(t, "", Placeholders('?', 0))
}

func TestReplaceUnixTimestamp(t *testing.T) {
	require.Equal(t, "SELECT 1700000000", ReplaceUnixTimestamp("SELECT unix_timestamp()", 1700000000))
	require.Equal(t, "SELECT 1700000000", ReplaceUnixTimestamp("SELECT UNIX_TIMESTAMP()", 1700000000))
	require.Equal(t,
		"UPDATE t SET ts=1700000000 WHERE id=?",
		ReplaceUnixTimestamp("UPDATE t SET ts=unix_timestamp() WHERE id=?", 1700000000))
	require.Equal(t, "SELECT other_timestamp()", ReplaceUnixTimestamp("SELECT other_timestamp()", 1700000000))
}
