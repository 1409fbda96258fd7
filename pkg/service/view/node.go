package view

import "strings"

// Roles identify the repeated fragments of the analytics view
const (
	RoleSummaryCard  = "summary-card"
	RoleSpeedPanel   = "speed-panel"
	RoleSpeedBar     = "speed-bar"
	RoleSkillPanel   = "skill-panel"
	RoleSkillRow     = "skill-row"
	RoleCountryPanel = "country-panel"
	RoleCountryRow   = "country-row"
)

// Node is an element of the display tree. A node with an empty Tag is a text node.
type Node struct {
	Tag      string            `json:"tag,omitempty"`
	Class    string            `json:"class,omitempty"`
	Role     string            `json:"role,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// El creates an element node
func El(tag, class string, children ...*Node) *Node {
	return &Node{
		Tag:      tag,
		Class:    class,
		Children: children,
	}
}

// Text creates a text node
func Text(s string) *Node {
	return &Node{Text: s}
}

// TextEl creates an element node holding a single text child
func TextEl(tag, class, text string) *Node {
	return El(tag, class, Text(text))
}

// WithRole sets the role of the node and returns it
func (n *Node) WithRole(role string) *Node {
	n.Role = role
	return n
}

// WithAttr sets an attribute on the node and returns it
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// IsText reports whether the node is a text node
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Walk visits the node and its descendants in document order.
// Returning false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindByRole returns every descendant (including n) with the given role
func (n *Node) FindByRole(role string) []*Node {
	var found []*Node
	n.Walk(func(node *Node) bool {
		if node.Role == role {
			found = append(found, node)
		}
		return true
	})
	return found
}

// CountRole returns the number of nodes with the given role
func (n *Node) CountRole(role string) int {
	return len(n.FindByRole(role))
}

// TextContent concatenates every text node below n, separated by single spaces
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(node *Node) bool {
		if node.IsText() && node.Text != "" {
			parts = append(parts, node.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}
