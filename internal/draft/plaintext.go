package draft

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

type span struct {
	start, stop int
}

// PlainText removes the markdown markers models tend to emit anyway: ATX
// heading prefixes, code fences and "**" around a whitespace-bounded phrase.
// Single "*" and any "_" are kept, since they show up in plain text
// (2*3*4, __init__). Lists, hashtags and line breaks are left as written.
func PlainText(s string) string {
	src := []byte(s)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var cuts []span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			cuts = append(cuts, headingMarker(src, node)...)
		case *ast.Emphasis:
			cuts = append(cuts, emphasisMarkers(src, node)...)
		case *ast.FencedCodeBlock:
			cuts = append(cuts, fenceLines(src, node)...)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(string(applyCuts(src, cuts)))
}

func applyCuts(src []byte, cuts []span) []byte {
	if len(cuts) == 0 {
		return src
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].start < cuts[j].start })

	var out bytes.Buffer
	out.Grow(len(src))
	pos := 0
	for _, c := range cuts {
		if c.start < pos || c.stop > len(src) || c.start >= c.stop {
			continue
		}
		out.Write(src[pos:c.start])
		pos = c.stop
	}
	out.Write(src[pos:])
	return out.Bytes()
}

func headingMarker(src []byte, n *ast.Heading) []span {
	lines := n.Lines()
	if lines.Len() == 0 {
		return nil
	}
	start := lines.At(0).Start
	ls := lineStart(src, start)
	if !bytes.HasPrefix(bytes.TrimLeft(src[ls:start], " "), []byte("#")) {
		return nil // setext
	}
	return []span{{ls, start}}
}

func emphasisMarkers(src []byte, n *ast.Emphasis) []span {
	if n.Level != 2 {
		return nil
	}
	start, ok := leftEdge(n.FirstChild())
	if !ok {
		return nil
	}
	stop, ok := rightEdge(n.LastChild())
	if !ok {
		return nil
	}
	open := span{start - n.Level, start}
	closing := span{stop, stop + n.Level}
	if !isStrongStar(src, open) || !isStrongStar(src, closing) {
		return nil
	}
	if open.start > 0 && !isSpace(src[open.start-1]) {
		return nil
	}
	if closing.stop < len(src) && !isSpace(src[closing.stop]) && !isTrailingPunct(src[closing.stop]) {
		return nil
	}
	return []span{open, closing}
}

// leftEdge is where n's source begins, counting nested emphasis delimiters.
func leftEdge(n ast.Node) (int, bool) {
	switch c := n.(type) {
	case *ast.Text:
		return c.Segment.Start, true
	case *ast.Emphasis:
		s, ok := leftEdge(c.FirstChild())
		return s - c.Level, ok
	default:
		return 0, false
	}
}

func rightEdge(n ast.Node) (int, bool) {
	switch c := n.(type) {
	case *ast.Text:
		return c.Segment.Stop, true
	case *ast.Emphasis:
		s, ok := rightEdge(c.LastChild())
		return s + c.Level, ok
	default:
		return 0, false
	}
}

func isStrongStar(src []byte, s span) bool {
	if s.start < 0 || s.stop > len(src) || s.stop-s.start != 2 {
		return false
	}
	return src[s.start] == '*' && src[s.start+1] == '*'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isTrailingPunct(b byte) bool {
	return bytes.IndexByte([]byte(".,;:!?)"), b) >= 0
}

func fenceLines(src []byte, n *ast.FencedCodeBlock) []span {
	lines := n.Lines()
	if lines.Len() == 0 {
		return nil
	}
	first := lines.At(0).Start
	last := lines.At(lines.Len() - 1).Stop

	var cuts []span
	if first > 0 {
		open := lineStart(src, first-1)
		if isFence(src[open:first]) {
			cuts = append(cuts, span{open, first})
		}
	}
	if last < len(src) {
		end := lineEnd(src, last)
		if isFence(src[last:end]) {
			cuts = append(cuts, span{last, end})
		}
	}
	return cuts
}

func isFence(line []byte) bool {
	t := bytes.TrimSpace(line)
	return bytes.HasPrefix(t, []byte("```")) || bytes.HasPrefix(t, []byte("~~~"))
}

func lineStart(src []byte, i int) int {
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

// lineEnd returns the index just past the newline ending the line at i.
func lineEnd(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	if i < len(src) {
		i++
	}
	return i
}
