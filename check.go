package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/kritikpaudel/portfolio/contact"
	"github.com/kritikpaudel/portfolio/site"
)

// Element ids and attributes the browser program looks up in index.html.
const (
	contactFormID = "contact-form"
	trapFieldName = "website"
	navAttr       = "data-nav"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check index.html against the site configuration",
	Long: `Parses index.html and reports every configured section that is missing
from the page, every navigation entry without a matching link, and any
contact form field the front end expects but cannot find.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := site.Default()
		if err != nil {
			return err
		}

		f, err := os.Open(filepath.Join(cfg.SiteDir, "index.html"))
		if err != nil {
			return err
		}
		defer f.Close()

		problems, err := checkPage(f, s)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range problems {
			fmt.Fprintln(out, "  -", p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d problem(s) in %s", len(problems), f.Name())
		}
		fmt.Fprintf(out, "%s: %d sections, all present\n", f.Name(), len(s.Nav))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// page is what checkPage needs to know about the parsed document.
type page struct {
	title     string
	ids       map[string]bool
	navLinks  map[string][]string // section id -> text of each link to it
	hrefs     map[string]bool
	formField map[string]bool
	hasForm   bool
}

// checkPage lists every way the document breaks the contract with the
// site configuration: each nav id must exist as an element id and be the
// target of nav links reading the configured label, every social link must
// be present, and the title must name the owner.
func checkPage(r io.Reader, s *site.Site) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	p := &page{
		ids:       make(map[string]bool),
		navLinks:  make(map[string][]string),
		hrefs:     make(map[string]bool),
		formField: make(map[string]bool),
	}
	p.walk(doc, false)

	var problems []string
	for _, l := range s.Nav {
		if !p.ids[l.ID] {
			problems = append(problems, fmt.Sprintf("section %q not found", l.ID))
		}
		texts := p.navLinks[l.ID]
		if len(texts) == 0 {
			problems = append(problems, fmt.Sprintf("no nav link to %s", l.Href()))
		}
		for _, text := range texts {
			if l.Label != "" && text != l.Label {
				problems = append(problems, fmt.Sprintf("nav link to %s reads %q, want %q", l.Href(), text, l.Label))
			}
		}
	}
	for _, sl := range s.Socials {
		if !p.hrefs[sl.Href] {
			problems = append(problems, fmt.Sprintf("no %s link to %s", sl.Label, sl.Href))
		}
	}
	if s.Owner != "" && !strings.Contains(p.title, s.Owner) {
		problems = append(problems, fmt.Sprintf("page title %q does not name %s", p.title, s.Owner))
	}

	if !p.hasForm {
		problems = append(problems, fmt.Sprintf("form #%s not found", contactFormID))
		return problems, nil
	}
	for _, name := range append(append([]string(nil), contact.Fields...), trapFieldName) {
		if !p.formField[name] {
			problems = append(problems, fmt.Sprintf("contact form has no %q field", name))
		}
	}
	return problems, nil
}

func (p *page) walk(n *html.Node, inForm bool) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" {
			p.ids[id] = true
			if n.Data == "form" && id == contactFormID {
				p.hasForm = true
				inForm = true
			}
		}
		switch n.Data {
		case "title":
			p.title = text(n)
		case "a":
			href := attr(n, "href")
			p.hrefs[href] = true
			if target := attr(n, navAttr); target != "" && href == "#"+target {
				p.navLinks[target] = append(p.navLinks[target], text(n))
			}
		}
		if inForm && (n.Data == "input" || n.Data == "textarea") {
			if name := attr(n, "name"); name != "" {
				p.formField[name] = true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, inForm)
	}
}

// text is the node's text content with runs of whitespace collapsed.
func text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
