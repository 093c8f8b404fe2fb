// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library so tests can swap the OS backend for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend. Used by unit tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteAtomic writes data to a sibling temp file and renames it over path,
// so readers never observe a half written file.
func WriteAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := backend.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return backend.Rename(tmp, path)
}
