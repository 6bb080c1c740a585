// Package style maps symbolic class names to resolved style identifiers.
//
// Components never import stylesheets directly. They receive a Lookup and
// resolve the names they need, which keeps them testable without any CSS
// build step.
package style

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

var (
	// ErrUndefinedClass is returned when a class name has no identifier.
	ErrUndefinedClass = errors.New("style: undefined class")
	// ErrInvalidSheet is returned for class maps that cannot be used.
	ErrInvalidSheet = errors.New("style: invalid sheet")
)

// hashLen matches the short hash suffix used by CSS module loaders.
const hashLen = 5

// Lookup resolves a symbolic class name to its identifier.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(name string) (string, bool)

// Lookup implements Lookup.
func (f LookupFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// Sheet is a static class map.
type Sheet map[string]string

// Lookup implements Lookup.
func (s Sheet) Lookup(name string) (string, bool) {
	id, ok := s[name]
	return id, ok
}

// Names returns the class names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports the first empty name or identifier in the sheet.
func (s Sheet) Validate() error {
	for _, name := range s.Names() {
		if strings.TrimSpace(name) == "" {
			return errors.Wrap(ErrInvalidSheet, "empty class name")
		}
		if strings.TrimSpace(s[name]) == "" {
			return errors.Wrapf(ErrInvalidSheet, "class %q has an empty identifier", name)
		}
	}
	return nil
}

// Resolve returns the identifier for name or an error wrapping ErrUndefinedClass.
func Resolve(l Lookup, name string) (string, error) {
	if l == nil {
		return "", errors.Wrapf(ErrUndefinedClass, "%q: no lookup", name)
	}
	id, ok := l.Lookup(name)
	if !ok {
		return "", errors.Wrapf(ErrUndefinedClass, "%q", name)
	}
	return id, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve(l Lookup, name string) string {
	id, err := Resolve(l, name)
	if err != nil {
		panic(err)
	}
	return id
}

// Module builds a sheet of module-scoped identifiers in the form
// <File>__<name>___<hash>. The same file and name always yield the same
// identifier.
func Module(file string, names ...string) Sheet {
	sheet := make(Sheet, len(names))
	for _, name := range names {
		sheet[name] = Identifier(file, name)
	}
	return sheet
}

// Identifier returns the module-scoped identifier for one class name.
func Identifier(file, name string) string {
	sum := xxhash.Sum64String(file + ":" + name)
	hash := strconv.FormatUint(sum, 36)
	if len(hash) > hashLen {
		hash = hash[:hashLen]
	}
	return file + "__" + name + "___" + hash
}
