package domdbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGColor,
	style.PGFont,
	style.PGX,
}

// ToGraphViz outputs a diagram for a document. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document, a Writer,
// and an optional list of style property groups. The diagram will include
// all styles belonging to one of the property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//     - Color
//     - Font
//     - X
//
func ToGraphViz(doc *dom.Document, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, names: make(map[*dom.Node]string, 256)}
	g.nodes(doc.Root())
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// graph collects the state of a single diagram output. The first error
// stops all further output.
type graph struct {
	w      io.Writer
	params *graphParamsType
	names  map[*dom.Node]string
	err    error
}

func (g *graph) exec(t *template.Template, data any) {
	if g.err == nil {
		g.err = t.Execute(g.w, data)
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func (g *graph) name(n *dom.Node) string {
	name := g.names[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.names)+1)
		g.names[n] = name
	}
	return name
}

func (g *graph) nodes(n *dom.Node) {
	g.exec(g.params.NodeTmpl, &node{n, g.name(n)})
	g.styles(n)
	for _, ch := range n.ChildNodes() {
		g.nodes(ch)
		g.exec(g.params.EdgeTmpl, edge{node{n, g.name(n)}, node{ch, g.name(ch)}})
	}
}

func (g *graph) styles(n *dom.Node) {
	pmap := n.Styles()
	var prev *style.PropertyGroup
	for _, s := range g.params.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		g.exec(g.params.StylegroupTmpl, pg)
		if prev == nil {
			g.exec(g.params.PgedgeTmpl, pgedge{g.name(n), pg})
		} else {
			g.exec(g.params.PgpgTmpl, []*style.PropertyGroup{prev, pg})
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .N.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
