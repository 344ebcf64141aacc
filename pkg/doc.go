// Package pkg provides the libraries behind the markup tools.
//
// # Overview
//
// markup describes styled terminal text (bold, colors, player references)
// and simple layouts (alignment, indentation, tables and layered canvases)
// as a tree of nodes. A document is written once and resolved for a roster
// of players, then rendered as ANSI, HTML, plain text, JSON or PNG. The pkg
// directory is organized into three areas:
//
//  1. [core] - Domain logic (colors, node tree, layout, rendering)
//  2. [pipeline] - Orchestration (parse → resolve → render)
//  3. Infrastructure: [cache], [io], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	markup text
//	     ↓
//	[core/markup] package (parse into a node tree)
//	     ↓
//	[core/layout] package (resolve players, expand tables and canvases)
//	     ↓
//	[core/styled] tree (text, bold, fg, bg only)
//	     ↓
//	[core/render] package (ANSI/HTML/plain/JSON/PNG)
//
// # Quick Start
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/markup/pkg/core/color"
//	    "github.com/matzehuels/markup/pkg/core/layout"
//	    "github.com/matzehuels/markup/pkg/core/markup"
//	    "github.com/matzehuels/markup/pkg/core/render"
//	)
//
//	doc := []markup.Node{
//	    markup.P(0), markup.T(" to move"),
//	}
//	styled := layout.Resolve(doc, []layout.Player{{Name: "Ann", Color: color.Red}})
//	fmt.Print(render.ANSI(styled))
//
// # Main Packages
//
// [core/color] - RGB colors, the named palette, player colors and terminal
// styles.
//
// [core/markup] - The node tree, builders, the text notation (Format and
// Parse) and Graphviz export of the tree.
//
// [core/styled] - Resolved nodes and the line engine (splitting, slicing and
// background ranges).
//
// [core/layout] - Player resolution, alignment, tables and canvases.
//
// [core/render] - Output formats.
//
// [pipeline] - Cached parse → resolve → render runs.
//
// [cache] - File, Redis and null caches for rendered output.
//
// [io] - Markup documents, TOML rosters and atomic artifact export.
//
// [errors] - Error codes and input validation.
//
// [observability] - Hooks for pipeline and cache events.
//
// [buildinfo] - Version information set at build time.
package pkg
