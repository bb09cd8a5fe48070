package sqlhelper

import "fmt"

// ClientFactory is a callback that constructs a Client from Conf.
// It is registered with RegisterFactory and called by sqlhelper.NewClient.
type ClientFactory func(conf *Conf) (Client, error)

var registry = map[string]ClientFactory{}

func RegisterFactory(dbType string, factory ClientFactory) {
	registry[dbType] = factory
}

func NewClient(dbType string, conf *Conf) (Client, error) {
	factory, ok := registry[dbType]
	if !ok {
		return nil, fmt.Errorf("sqlhelper: unsupported database type: %s", dbType)
	}
	return factory(conf)
}

// Open builds a Helper from a database URL, picking the backend by
// scheme. The backend impl package must be imported for its factory
// registration, e.g.
//
//	import _ "github.com/zeptools/sql-helper/impls/sqlite"
//
// The connection itself is opened lazily on first use.
func Open(rawURL string) (*Helper, error) {
	conf, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	client, err := NewClient(conf.Type, conf)
	if err != nil {
		return nil, err
	}
	return NewHelper(client), nil
}
