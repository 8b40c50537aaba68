package filesystem

import (
	"io"
	"os"
)

// GacheFs adapts the active afero backend to gache.FileSystem, so gache-backed
// caches (chapters, queries) follow SetMemMapFs in tests.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
