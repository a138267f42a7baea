package resources

import (
	"io/fs"
	"os"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/filesystem_mock.gen.go -package=resourcesmocks FileSystem

// FileSystem opens files by their resolved path.
type FileSystem interface {
	Open(name string) (fs.File, error)
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
