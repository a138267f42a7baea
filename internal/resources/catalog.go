package resources

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const MIMEGeoJSON = "application/geo+json"

func init() {
	// Also picked up by the static file fallback.
	if err := mime.AddExtensionType(".geojson", MIMEGeoJSON); err != nil {
		panic(fmt.Sprintf("register geojson mime type: %v", err))
	}
}

// Resource maps a request path to a single file on disk.
type Resource struct {
	Path        string
	File        string
	ContentType string
}

// Info describes a registered resource.
type Info struct {
	Path        string `json:"path"`
	File        string `json:"file"`
	ContentType string `json:"contentType"`
	Served      int64  `json:"served"`
}

type entry struct {
	Resource
	served *atomic.Int64
}

//go:generate options-gen -out-filename=catalog_options.gen.go -from-struct=Options
type Options struct {
	logger     *zap.Logger `option:"mandatory" validate:"required"`
	root       string      `option:"mandatory" validate:"required"`
	resources  []Resource  `option:"mandatory" validate:"min=1"`
	fileSystem FileSystem
}

type Catalog struct {
	lg      *zap.Logger
	fsys    FileSystem
	entries []*entry
}

func New(opts Options) (*Catalog, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	var errs error
	seen := make(map[string]struct{}, len(opts.resources))
	entries := make([]*entry, 0, len(opts.resources))

	for i, r := range opts.resources {
		if !strings.HasPrefix(r.Path, "/") {
			errs = multierr.Append(errs, fmt.Errorf("resource #%d: path %q must start with /", i, r.Path))
		}
		if _, ok := seen[r.Path]; ok {
			errs = multierr.Append(errs, fmt.Errorf("resource #%d: duplicated path %q", i, r.Path))
		}
		seen[r.Path] = struct{}{}

		if r.File == "" {
			errs = multierr.Append(errs, fmt.Errorf("resource #%d: empty file", i))
			continue
		}

		if !filepath.IsAbs(r.File) {
			r.File = filepath.Join(opts.root, r.File)
		}
		if r.ContentType == "" {
			r.ContentType = mime.TypeByExtension(filepath.Ext(r.File))
		}

		entries = append(entries, &entry{Resource: r, served: atomic.NewInt64(0)})
	}
	if errs != nil {
		return nil, errs
	}

	fsys := opts.fileSystem
	if fsys == nil {
		fsys = osFS{}
	}

	return &Catalog{
		lg:      opts.logger,
		fsys:    fsys,
		entries: entries,
	}, nil
}

// Register installs GET and HEAD handlers for every resource.
func (c *Catalog) Register(e *echo.Echo) {
	for _, en := range c.entries {
		h := c.handler(en)
		e.GET(en.Path, h)
		e.HEAD(en.Path, h)
	}
}

func (c *Catalog) Paths() []string {
	paths := make([]string, 0, len(c.entries))
	for _, en := range c.entries {
		paths = append(paths, en.Path)
	}
	return paths
}

func (c *Catalog) List() []Info {
	infos := make([]Info, 0, len(c.entries))
	for _, en := range c.entries {
		infos = append(infos, Info{
			Path:        en.Path,
			File:        en.File,
			ContentType: en.ContentType,
			Served:      en.served.Load(),
		})
	}
	return infos
}

// Probe reports resources that will not be served successfully.
// Files are read again on every request, so problems here are not fatal.
func (c *Catalog) Probe() {
	for _, en := range c.entries {
		lg := c.lg.With(zap.String("path", en.Path), zap.String("file", en.File))

		data, err := c.readAll(en.File)
		if err != nil {
			lg.Warn("resource file is not readable", zap.Error(err))
			continue
		}

		if isJSON(en.ContentType) && !json.Valid(data) {
			lg.Warn("resource file is not valid JSON")
			continue
		}

		lg.Info("resource ready", zap.Int("size", len(data)))
	}
}

func (c *Catalog) readAll(name string) ([]byte, error) {
	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}
