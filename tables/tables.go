package tables

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/romkan"
	"github.com/npillmayer/romkan/kanadef"
)

var (
	loaded sync.Map // table name => *lazyTable
)

type lazyTable struct {
	once  sync.Once
	table *romkan.Table
	err   error
}

// Hiragana returns the standard hiragana table.
func Hiragana() *romkan.Table {
	return MustLoad("hiragana")
}

// Katakana returns the standard katakana table.
func Katakana() *romkan.Table {
	return MustLoad("katakana")
}

// Load returns the embedded table with the given name, e.g. "katakana".
// Each table is parsed once and shared afterwards.
func Load(name string) (*romkan.Table, error) {
	entry, _ := loaded.LoadOrStore(name, &lazyTable{})
	lazy := entry.(*lazyTable)
	lazy.once.Do(func() {
		lazy.table, lazy.err = load(name)
	})
	return lazy.table, lazy.err
}

// MustLoad returns an embedded table, panicking on error.
// Use this for tables which are part of the build.
func MustLoad(name string) *romkan.Table {
	table, err := Load(name)
	if err != nil {
		panic(err)
	}
	return table
}

// Names lists the embedded tables.
func Names() []string {
	entries, err := defFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".kana"))
	}
	sort.Strings(names)
	return names
}

func load(name string) (*romkan.Table, error) {
	f, err := defFS.Open(name + ".kana")
	if err != nil {
		return nil, fmt.Errorf("no embedded table %q: %w", name, err)
	}
	defer f.Close()
	return kanadef.LoadTable(name, f)
}
