package resources

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/geo-server/internal/errors"
)

var errIsDirectory = errors.New("is a directory")

func (c *Catalog) handler(en *entry) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		if err := c.serve(eCtx, en); err != nil {
			return err
		}

		en.served.Inc()
		return nil
	}
}

func (c *Catalog) serve(eCtx echo.Context, en *entry) error {
	f, err := c.fsys.Open(en.File)
	if err != nil {
		return openError(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.lg.Warn("close resource file", zap.String("file", en.File), zap.Error(err))
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot read resource",
			fmt.Errorf("stat: %w", err))
	}
	if info.IsDir() {
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot read resource",
			fmt.Errorf("%s: %w", en.File, errIsDirectory))
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return internalerrors.NewServerError(http.StatusInternalServerError, "cannot read resource",
				fmt.Errorf("read: %w", err))
		}
		content = bytes.NewReader(data)
	}

	if en.ContentType != "" {
		eCtx.Response().Header().Set(echo.HeaderContentType, en.ContentType)
	}
	http.ServeContent(eCtx.Response(), eCtx.Request(), info.Name(), info.ModTime(), content)
	return nil
}

func openError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return internalerrors.NewServerError(http.StatusNotFound, "resource not found", err)
	}
	return internalerrors.NewServerError(http.StatusInternalServerError, "cannot read resource", err)
}
