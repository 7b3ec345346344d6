package utils

import (
	"fmt"
	"io"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
)

type StepNode struct {
	Level    int
	Label    string
	Children []*StepNode
	Right    *StepNode
}

func NewStepTree(label string) *StepNode {
	return &StepNode{Label: label}
}

// ShowTree prints out the contents of the tree, using its prefix to determine the proper indentation and the difference
// between the tee and lasttee characters to denote the beginning or end of a branch
func (node *StepNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, node.Label)
	} else {
		var subFix string
		if node.Right != nil {
			subFix = tee
		} else {
			subFix = lasttee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Label)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}

// AddChild appends a new last child and links the previous last child to it.
func (node *StepNode) AddChild(label string) *StepNode {
	var pre *StepNode = nil
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &StepNode{
		Level: node.Level + 1,
		Label: label,
	}

	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}

// Addf is AddChild with a formatted label.
func (node *StepNode) Addf(format string, args ...interface{}) *StepNode {
	return node.AddChild(fmt.Sprintf(format, args...))
}

// Count returns the number of nodes below node.
func (node *StepNode) Count() int {
	n := len(node.Children)
	for _, child := range node.Children {
		n += child.Count()
	}
	return n
}
