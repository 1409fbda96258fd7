package view

import (
	"io"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StylesheetURL is the utility CSS loaded by full pages
const StylesheetURL = "https://cdn.tailwindcss.com"

// WriteHTML writes the display tree as an HTML fragment
func WriteHTML(w io.Writer, n *Node) error {
	if err := html.Render(w, toHTML(n)); err != nil {
		return goerr.Wrap(err, "failed to render HTML fragment")
	}
	return nil
}

// WritePage writes a complete HTML document with the display tree as its main content
func WritePage(w io.Writer, title string, n *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html", map[string]string{"lang": "en"})
	doc.AppendChild(root)

	head := element("head", nil)
	head.AppendChild(element("meta", map[string]string{"charset": "utf-8"}))
	head.AppendChild(element("meta", map[string]string{
		"name":    "viewport",
		"content": "width=device-width, initial-scale=1",
	}))
	titleNode := element("title", nil)
	titleNode.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleNode)
	head.AppendChild(element("script", map[string]string{"src": StylesheetURL}))
	root.AppendChild(head)

	body := element("body", map[string]string{"class": "bg-gray-50"})
	content := element("main", map[string]string{"class": "mx-auto max-w-7xl p-6"})
	content.AppendChild(toHTML(n))
	body.AppendChild(content)
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return goerr.Wrap(err, "failed to render HTML page", goerr.V("title", title))
	}
	return nil
}

// toHTML converts a display node into an html.Node tree
func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	attrs := make(map[string]string, len(n.Attrs)+2)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if n.Class != "" {
		attrs["class"] = n.Class
	}
	if n.Role != "" {
		attrs["data-role"] = n.Role
	}

	el := element(n.Tag, attrs)
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}

// element creates an element node with attributes sorted by key, so that
// identical trees always serialize to identical bytes
func element(tag string, attrs map[string]string) *html.Node {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	return el
}
