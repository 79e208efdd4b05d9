// Package web holds the console's embedded templates and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Path  string
	Label string
}

// Nav is the static navigation list rendered by the layout.
var Nav = []NavItem{
	{Path: "/clientes", Label: "Consultar Clientes"},
	{Path: "/crear-cliente", Label: "Crear Cliente"},
	{Path: "/transferir", Label: "Realizar Transferencia"},
	{Path: "/historial", Label: "Histórico Transacciones"},
}

// Page is the data every view template receives.
type Page struct {
	Title  string
	Active string
	Nav    []NavItem
	Data   interface{}
}

var funcs = template.FuncMap{
	"money": model.FormatMoney,
	"isNegative": func(d decimal.Decimal) bool {
		return d.IsNegative()
	},
	"amount": func(d decimal.Decimal) string {
		if d.IsZero() {
			return ""
		}
		return d.String()
	},
}

// Renderer executes the layout with one of the view templates.
type Renderer struct {
	views map[string]*template.Template
}

// View template names.
const (
	ViewCustomers      = "customers"
	ViewCreateCustomer = "create_customer"
	ViewTransfer       = "transfer"
	ViewHistory        = "history"
)

func NewRenderer() (*Renderer, error) {
	r := &Renderer{views: make(map[string]*template.Template)}
	for _, name := range []string{ViewCustomers, ViewCreateCustomer, ViewTransfer, ViewHistory} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.views[name] = t
	}
	return r, nil
}

// Render writes view into w. The page is rendered into a buffer first so a
// template failure never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, view string, page Page) error {
	t, ok := r.views[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}
	if page.Nav == nil {
		page.Nav = Nav
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		return fmt.Errorf("render %s: %w", view, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
