package middlewares

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewStatic serves files from root for GET and HEAD requests.
// Requests to routedPaths are left to their handlers even if a file with the same name exists.
// Unknown files fall through to the router, which answers 404.
func NewStatic(root string, routedPaths []string) echo.MiddlewareFunc {
	routed := make(map[string]struct{}, len(routedPaths))
	for _, p := range routedPaths {
		routed[p] = struct{}{}
	}

	skipper := func(c echo.Context) bool {
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead:
		default:
			return true
		}

		_, ok := routed[c.Request().URL.Path]
		return ok
	}

	fsys := notExistFS{http.FS(os.DirFS(root))}

	static := middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper:    skipper,
		Root:       ".",
		Index:      "index.html",
		Filesystem: fsys,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		serve := static(next)

		return func(c echo.Context) error {
			// "/index.html/" names a directory, not the file.
			if !skipper(c) && isFileWithSlash(fsys, c.Request().URL.Path) {
				return next(c)
			}
			return serve(c)
		}
	}
}

func isFileWithSlash(fsys http.FileSystem, p string) bool {
	if p == "/" || !strings.HasSuffix(p, "/") {
		return false
	}

	f, err := fsys.Open(path.Clean(p))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

// notExistFS reports names the OS cannot resolve as missing files,
// so they end in 404 instead of 500.
type notExistFS struct {
	http.FileSystem
}

func (fsys notExistFS) Open(name string) (http.File, error) {
	f, err := fsys.FileSystem.Open(name)
	if err != nil && isUnresolvableName(err) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f, err
}

func isUnresolvableName(err error) bool {
	return errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.ENOTDIR)
}
