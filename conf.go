package sqlhelper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Conf struct {
	Type   string `json:"type"` // sqlite, mysql, pgsql
	Host   string `json:"host"`
	Port   int    `json:"port"`
	User   string `json:"user"`
	PW     string `json:"pw"`
	DB     string `json:"db"`     // database name, or file path / :memory: for sqlite
	TZ     string `json:"tz"`     // Connection Timezone
	DSN    string `json:"dsn"`    // To Overwrite Default DSN
	Params string `json:"params"` // extra driver params, appended to the default DSN
}

var defaultPortForDBType = map[string]int{
	"mysql": 3306,
	"pgsql": 5432,
}

// schemeAliases maps URL schemes to canonical db types.
var schemeAliases = map[string]string{
	"sqlite":     "sqlite",
	"sqlite3":    "sqlite",
	"mysql":      "mysql",
	"maria":      "mysql",
	"mariadb":    "mysql",
	"pgsql":      "pgsql",
	"postgres":   "pgsql",
	"postgresql": "pgsql",
}

// ParseURL fills a Conf from a database URL of the form
// <scheme>://[user[:password]@]host[:port]/[database][?params]
// The sqlite scheme is special-cased since net/url cannot parse the
// pathless in-memory form sqlite://:memory:/
func ParseURL(rawURL string) (*Conf, error) {
	scheme, rest, found := strings.Cut(rawURL, "://")
	if !found {
		return nil, fmt.Errorf("sqlhelper: missing scheme in url %q", rawURL)
	}
	dbType, ok := schemeAliases[strings.ToLower(scheme)]
	if !ok {
		return nil, fmt.Errorf("sqlhelper: unsupported scheme %q", scheme)
	}

	if dbType == "sqlite" {
		return parseSqliteURL(rest)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("sqlhelper: failed to parse url: %w", err)
	}
	conf := &Conf{
		Type:   dbType,
		Host:   u.Hostname(),
		DB:     strings.TrimPrefix(u.Path, "/"),
		Params: u.RawQuery,
	}
	if u.User != nil {
		conf.User = u.User.Username()
		conf.PW, _ = u.User.Password()
	}
	if p := u.Port(); p != "" {
		conf.Port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("sqlhelper: invalid port %q", p)
		}
	} else {
		conf.Port = defaultPortForDBType[dbType]
	}
	return conf, nil
}

func parseSqliteURL(rest string) (*Conf, error) {
	conf := &Conf{Type: "sqlite"}
	if db, params, found := strings.Cut(rest, "?"); found {
		rest, conf.Params = db, params
	}
	if strings.HasPrefix(rest, ":memory:") {
		conf.DB = ":memory:"
		return conf, nil
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return nil, fmt.Errorf("sqlhelper: empty sqlite database path")
	}
	conf.DB = rest
	return conf, nil
}
