// Package export renders a wall's support graph as Graphviz DOT and SVG.
//
// Bricks become box nodes labeled by position (R0B0 is the bottom-left
// brick), edges run from each supporting brick up to the brick it carries,
// and courses are pinned to ranks so the diagram reads like the wall itself:
// base course at the bottom, top course at the top.
package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Options configures support-graph rendering.
type Options struct {
	// Detailed includes size class and mm span in node labels.
	// When false, only the position label is shown.
	Detailed bool
	// Placed fills already-placed bricks so partial builds are visible.
	Placed bool
}

// ToDOT converts a wall's support graph to Graphviz DOT. The resulting
// string can be rendered with [RenderSVG] or fed to any Graphviz tool.
func ToDOT(w *wall.Wall, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wall {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			label := fmtLabel(b, opts.Detailed)
			attrs := fmtAttrs(b, label, opts)
			fmt.Fprintf(&buf, "  %q [%s];\n", b.Label(), strings.Join(attrs, ", "))
		}
	}

	// One rank per course keeps the diagram shaped like the wall.
	buf.WriteString("\n")
	for _, c := range w.Courses {
		names := make([]string, len(c.Bricks))
		for i, b := range c.Bricks {
			names[i] = fmt.Sprintf("%q", b.Label())
		}
		fmt.Fprintf(&buf, "  { rank=same; %s }\n", strings.Join(names, "; "))
	}

	buf.WriteString("\n")
	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			for _, sup := range w.Supports(b.Ref()) {
				supBrick, ok := w.Brick(sup)
				if !ok {
					continue
				}
				fmt.Fprintf(&buf, "  %q -> %q;\n", supBrick.Label(), b.Label())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b *wall.Brick, detailed bool) string {
	if !detailed {
		return b.Label()
	}
	return fmt.Sprintf("%s\n%s\n%d-%d mm", b.Label(), b.Class, b.XStart, b.XEnd)
}

func fmtAttrs(b *wall.Brick, label string, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if opts.Placed && b.Placed() {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so the viewBox starts at the
// origin and width/height match it, which keeps browser scaling sane.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
