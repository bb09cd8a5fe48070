package kv

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Conf struct {
	Type string `json:"type"`
	Host string `json:"host"`
	Port int    `json:"port"`
	PW   string `json:"pw"`
	DB   int    `json:"db"` // optional db number e.g. redis
}

// ParseURL fills a Conf from a kv store URL of the form
// <scheme>://[:password@]host[:port][/db]
func ParseURL(rawURL string) (*Conf, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("kv: failed to parse url: %w", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("kv: missing scheme in url %q", rawURL)
	}
	conf := &Conf{
		Type: u.Scheme,
		Host: u.Hostname(),
		Port: 6379,
	}
	if u.User != nil {
		conf.PW, _ = u.User.Password()
	}
	if p := u.Port(); p != "" {
		conf.Port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("kv: invalid port %q", p)
		}
	}
	if path := strings.TrimPrefix(u.Path, "/"); path != "" {
		conf.DB, err = strconv.Atoi(path)
		if err != nil {
			return nil, fmt.Errorf("kv: invalid db number %q", path)
		}
	}
	return conf, nil
}
