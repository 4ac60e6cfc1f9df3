package diaryhtml

import (
	"strings"

	"golang.org/x/net/html"
)

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// setAttr sets or replaces the named attribute.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// classList returns the element's class attribute split into fields.
func classList(n *html.Node) []string {
	return strings.Fields(attrVal(n, "class"))
}

// addClass appends classes to the element's class attribute.
func addClass(n *html.Node, classes ...string) {
	list := classList(n)
	list = append(list, classes...)
	setAttr(n, "class", strings.Join(list, " "))
}

// hasClass reports whether the element carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range classList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// findElement finds the first descendant element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// findByClass finds the first descendant element carrying the given class.
func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findByClass(c, class); result != nil {
			return result
		}
	}
	return nil
}

// collectElements appends every descendant element with the given tag name,
// in document order.
func collectElements(n *html.Node, tagName string, out []*html.Node) []*html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = collectElements(c, tagName, out)
	}
	return out
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var sb strings.Builder
	textContentRecursive(n, &sb)
	return strings.TrimSpace(sb.String())
}

func textContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, sb)
	}
}

// childCells returns the row's direct td/th children in order.
func childCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// newElement creates a detached element node.
func newElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

// newText creates a detached text node.
func newText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
