// Package markup defines the document tree for styled, laid-out text and its
// bracket-tag text notation.
//
// # Overview
//
// A document is a []Node. Styling nodes ([Bold], [Fg], [Bg]) wrap children;
// layout nodes ([Table], [Align], [Indent], [Canvas]) arrange them; [Player]
// refers to a roster entry that is only known when the document is resolved
// for a particular viewer. Colors are [Col] references, so a stored document
// can say "the color of player 2, inverted" without knowing that color.
//
// Documents are resolved into styled text by package layout and rendered by
// package render.
//
// # Notation
//
// [Format] and [Parse] convert between documents and text:
//
//	{{b}}bold{{/b}}
//	{{fg rgb(211,47,47) | mono}}red, reduced to black or white{{/fg}}
//	{{bg player(1) | inv}}inverted player color{{/bg}}
//	{{player 0}}
//	{{table}}{{row}}{{cell left}}a{{/cell}}{{cell right}}b{{/cell}}{{/row}}{{/table}}
//	{{align center 20}}title{{/align}}
//	{{indent 4}}body{{/indent}}
//	{{canvas}}{{layer 0 0}}XXXX{{/layer}}{{layer 1 0}}YY{{/layer}}{{/canvas}}
//
// Anything that is not a tag is literal text. Parse also accepts the legacy
// {{c NAME}} color tag and color names or hex values in fg and bg; Format
// never writes them.
//
// # Debugging
//
// [ToDOT] and [RenderSVG] draw the tree with Graphviz.
package markup
