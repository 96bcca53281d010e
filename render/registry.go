package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownBackend is returned for names no driver was registered under.
var ErrUnknownBackend = errors.New("render: unknown backend")

// Format describes what a backend's WriteTo produces.
type Format struct {
	// Ext is the file extension including the dot, e.g. ".svg".
	Ext         string
	ContentType string
}

// Driver is a registered backend: a constructor plus its output format.
type Driver struct {
	Format Format
	New    func() Backend
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a driver available by name, following the database/sql
// pattern: backend packages call it from init and users blank-import them.
// It panics on a nil constructor or a name registered twice.
func Register(name string, d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if d.New == nil {
		panic("render: Register driver " + name + " has no constructor")
	}
	if _, dup := drivers[name]; dup {
		panic("render: Register called twice for " + name)
	}
	drivers[name] = d
}

// Unregister removes a driver. Unknown names are ignored.
func Unregister(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, name)
}

func lookup(name string) (Driver, error) {
	driversMu.RLock()
	d, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return Driver{}, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return d, nil
}

// NewBackend returns a fresh backend from the driver called name.
func NewBackend(name string) (Backend, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.New(), nil
}

// FormatOf reports the output format of the driver called name.
func FormatOf(name string) (Format, error) {
	d, err := lookup(name)
	return d.Format, err
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	return slices.Sorted(maps.Keys(drivers))
}

// IsRegistered reports whether a driver is registered under name.
func IsRegistered(name string) bool {
	_, err := lookup(name)
	return err == nil
}
