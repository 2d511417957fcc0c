package web

import (
	"bytes"
	"html/template"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
<style>
table.gess{border-collapse:collapse;background:#deb887;font-family:monospace}
table.gess td,table.gess th{width:22px;height:22px;text-align:center;padding:0}
table.gess td{border:1px solid #785a3c}
table.gess td.edge{background:#cda674}
table.gess td.from{background:#94cfff}
table.gess td.to{background:#ffe478}
.stone-b{color:#111}.stone-w{color:#fff;text-shadow:0 0 1px #000}
.alert{color:#a00;margin:.5em 0}
</style>
</head><body>{{template "content" .}}</body></html>`))
	template.Must(base.New("board").Parse(boardTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>{{.Title}}</h1>
<p>{{.Welcome}}</p>
{{if .Error}}<div class="alert">{{.Error}}</div>{{end}}
<form action="/game" method="post"><button>{{.Create}}</button></form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>{{.Title}}</h1>
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div hx-sse="swap:board">{{template "board" .Board}}</div>
</div>
<p><a href="/game/{{.ID}}/board.png">png</a> · <a href="/game/{{.ID}}/board.txt">txt</a></p>`))
	board := template.Must(template.New("board_only").Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const boardTemplate = `
<div id="board">
  <p class="status">{{.Status}}</p>
  {{if .LastMove}}<p class="last">{{.LastMove}}</p>{{end}}
  <p class="rings">{{.Rings}}</p>
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  <table class="gess">
    <tr><th></th>{{range .Files}}<th>{{.}}</th>{{end}}</tr>
    {{range .Rows}}
    <tr>
      <th>{{.Rank}}</th>
      {{range .Cells}}<td class="{{.Class}}" title="{{.Coord}}">{{if .Stone}}<span class="stone-{{.Stone}}">●</span>{{else}}{{$.Glyph}}{{end}}</td>{{end}}
    </tr>
    {{end}}
  </table>
  {{if not .Over}}
  <form hx-post="/game/{{.ID}}/move" hx-target="#board" hx-swap="outerHTML" action="/game/{{.ID}}/move" method="post">
    <input type="text" name="from" size="4" placeholder="c3">
    <input type="text" name="to" size="4" placeholder="c6">
    <button type="submit">Move</button>
  </form>
  <form hx-post="/game/{{.ID}}/resign" hx-target="#board" hx-swap="outerHTML" hx-confirm="{{.ConfirmResign}}" action="/game/{{.ID}}/resign" method="post">
    <button type="submit">Resign</button>
  </form>
  {{end}}
  <form action="/game/{{.ID}}/delete" method="post"><button type="submit">{{.CloseLabel}}</button></form>
</div>
`
