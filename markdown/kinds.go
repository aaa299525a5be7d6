package markdown

import (
	"strings"

	"github.com/randalmurphal/websearch/doctree"
)

// whitespace is trimmed from the end of blocks and of the final document.
const whitespace = " \t\n\v\f\r\x00"

// Labels written by the built-in render functions.
const (
	LabelURL       = "**URL:**"
	LabelSource    = "**Source:**"
	LabelContent   = "**Content:**"
	LabelLinks     = "**Links:**"
	Delimiter      = "---"
	EmptyLinksItem = "- None"
)

func renderHeader(_ *Renderer, n *doctree.Node) (string, error) {
	return n.Text(), nil
}

func renderResult(r *Renderer, n *doctree.Node) (string, error) {
	title := n.Field(doctree.KeyTitle)
	url := n.Field(doctree.KeyURL)

	lines := []string{
		"### " + link(title, url),
		LabelURL + " " + url,
		LabelSource + " " + n.Field(doctree.KeySource),
	}
	for _, child := range n.Children {
		out, err := r.RenderNode(child)
		if err != nil {
			return "", err
		}
		lines = append(lines, out)
	}
	return block(lines), nil
}

func renderMetadata(_ *Renderer, n *doctree.Node) (string, error) {
	return block([]string{
		LabelSource + " " + n.Field(doctree.KeySource),
		LabelURL + " " + n.Field(doctree.KeyURL),
	}), nil
}

func renderContent(r *Renderer, n *doctree.Node) (string, error) {
	return block([]string{
		LabelContent,
		Delimiter,
		r.ContentText(n),
		Delimiter,
	}), nil
}

func renderLinks(_ *Renderer, n *doctree.Node) (string, error) {
	links := n.List(doctree.KeyLinks)
	if len(links) == 0 {
		return LabelLinks + "\n" + EmptyLinksItem, nil
	}

	lines := make([]string, 0, len(links)+1)
	lines = append(lines, LabelLinks)
	for _, l := range links {
		lines = append(lines, "- "+link(l, l))
	}
	return block(lines), nil
}

func link(text, url string) string {
	return "[" + text + "](" + url + ")"
}

func block(lines []string) string {
	return strings.TrimRight(strings.Join(lines, "\n"), whitespace)
}
