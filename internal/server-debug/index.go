package serverdebug

import (
	"html/template"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/geo-server/internal/resources"
)

var indexTmpl = template.Must(template.New("index").Parse(`<html>
	<title>Geo Server Debug</title>
<body>
	<h2>Geo Server Debug</h2>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Resources</h2>
	<table>
		<tr><th>Path</th><th>File</th><th>Content-Type</th><th>Served</th></tr>
		{{range .Resources}}
		<tr><td>{{.Path}}</td><td>{{.File}}</td><td>{{.ContentType}}</td><td>{{.Served}}</td></tr>
		{{end}}
	</table>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel()">
		<select id="log-level-select">
			<option{{ if eq .LogLevel "DEBUG" }} selected{{ end }}>DEBUG</option>
			<option{{ if eq .LogLevel "INFO" }} selected{{ end }}>INFO</option>
			<option{{ if eq .LogLevel "WARN" }} selected{{ end }}>WARN</option>
			<option{{ if eq .LogLevel "ERROR" }} selected{{ end }}>ERROR</option>
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value.toLowerCase()}));
		};
	</script>
</body>
</html>
`))

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	pages     []page
	resources resourcesLister
}

func newIndexPage(resources resourcesLister) *indexPage {
	return &indexPage{resources: resources}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (i *indexPage) handler(eCtx echo.Context) error {
	return indexTmpl.Execute(eCtx.Response(), struct {
		Pages     []page
		Resources []resources.Info
		LogLevel  string
	}{
		Pages:     i.pages,
		Resources: i.resources.List(),
		LogLevel:  zap.L().Level().CapitalString(),
	})
}
