//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

// echo.Context.File reports every open error as 404, permission errors included.
func resourcesNoEchoFile(m dsl.Matcher) {
	m.Match(`$c.File($_)`, `$c.Attachment($*_)`, `$c.Inline($*_)`).
		Where(
			m.File().PkgPath.Matches(`internal/resources`) &&
				m["c"].Type.Implements(`github.com/labstack/echo/v4.Context`),
		).
		Report("resources: open files through FileSystem and return ServerError")
}

func serversNoListenAndServe(m dsl.Matcher) {
	m.Match(`http.ListenAndServe($*_)`, `http.ListenAndServeTLS($*_)`).
		Report("use http.Server with ReadHeaderTimeout and graceful shutdown")
}

func errorsNoFatalOutsideMain(m dsl.Matcher) {
	m.Match(`log.Fatal($*_)`, `log.Fatalf($*_)`, `zap.L().Fatal($*_)`).
		Where(!m.File().PkgPath.Matches(`cmd/`)).
		Report("return an error instead of exiting the process")
}
