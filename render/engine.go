// Package render maps data snapshots to HTML fragments. Every function
// is pure and idempotent: the same snapshot yields a byte-identical
// fragment, and callers replace their whole target region with it.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"crafts-server/models"
)

// Stats feeds the admin dashboard cards.
type Stats struct {
	Products  int
	BlogPosts int
	Reviews   int
	Users     int
}

// CartRow is a cart line joined with its product for display.
type CartRow struct {
	Product   models.Product
	Quantity  int
	LineTotal float64
}

type Engine struct {
	tmpl *template.Template
}

var pricePrinter = message.NewPrinter(language.English)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Stars renders a rating as a five-character star strip, e.g. "★★★☆☆".
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Price formats an amount the way the shop displays it: rupee sign and
// thousands grouping.
func Price(v float64) string {
	return pricePrinter.Sprintf("₹%v", number.Decimal(v))
}

// Excerpt strips markup from rich content and truncates it for cards.
func Excerpt(content string, max int) string {
	plain := strings.TrimSpace(tagPattern.ReplaceAllString(content, " "))
	plain = strings.Join(strings.Fields(plain), " ")
	return truncate(plain, max)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// New parses the view templates once; Engine methods only execute them.
func New() *Engine {
	funcs := template.FuncMap{
		"stars":    Stars,
		"price":    Price,
		"excerpt":  Excerpt,
		"truncate": truncate,
		"rich":     func(s string) template.HTML { return template.HTML(s) },
		"title":    titleCase,
	}
	return &Engine{
		tmpl: template.Must(template.New("views").Funcs(funcs).Parse(viewTemplates)),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (e *Engine) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
