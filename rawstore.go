package sqlhelper

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
)

// RawStore holds named raw SQL statements, typically loaded from an
// embedded filesystem at startup with LoadRawStmts.
type RawStore struct {
	stmts map[string]string
}

func NewRawStore() *RawStore {
	return &RawStore{stmts: make(map[string]string)}
}

func (s *RawStore) Set(key string, rawStmt string) {
	s.stmts[key] = rawStmt
}

func (s *RawStore) Get(key string) (string, bool) {
	stmt, exists := s.stmts[key]
	return stmt, exists
}

func (s *RawStore) GetAll() map[string]string {
	return s.stmts
}

// LoadRawStmts loads statement files from dir in fsys into the store,
// keyed by file name without extension. A file with the db type as its
// extension (e.g. users.pgsql) is a dialect-specific statement used
// as-is and takes precedence over the generic .sql form. Generic .sql
// files use `?` markers, converted to the backend's native prefix at
// load time.
func LoadRawStmts(store *RawStore, fsys fs.FS, dir string, dbType string) error {
	prefix, ok := PlaceholderPrefixForDBType[dbType]
	if !ok {
		return fmt.Errorf("sqlhelper: unsupported database type: %s", dbType)
	}
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read sql dir %q: %w", dir, err)
	}
	stmtCnt := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		filename := f.Name()
		ext := filepath.Ext(filename)
		name := strings.TrimSuffix(filename, ext)
		ext = strings.TrimPrefix(ext, ".")
		data, err := fs.ReadFile(fsys, filepath.Join(dir, filename))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
		switch ext {
		case dbType:
			// exact matching file extension -> use it as-is for dialects
			store.Set(name, string(data))
			stmtCnt++
		case "sql":
			// Standard SQL with `?` markers; dialect files win
			if _, exists := store.Get(name); !exists {
				store.Set(name, ReplaceStaticPlaceholders(string(data), prefix))
				stmtCnt++
			}
		}
	}
	log.Printf("[INFO] %d sql raw stmts loaded for %s", stmtCnt, dbType)
	return nil
}
