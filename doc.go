// Package treefold provides path addressing, pin resolution and collapsed
// region summaries over tree-sitter parsed JSON and YAML documents. It
// bridges an editor's fold machinery and the document's syntax tree: the
// host maps cursor positions and fold requests onto the engine, and the
// engine answers with canonical paths, array counts and one summary line
// per collapsed region.
package treefold
