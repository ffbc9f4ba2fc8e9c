// tagfont decodes the game's bitmap font tag resource and rasterizes text
// with it.
//
// The tag is a fixed, versionless big-endian byte layout: a header at a
// known offset, a run of auxiliary character tables (skipped, their content
// is irrelevant to recognition), a variable-length array of glyph records
// indexed by 8-bit character code, and a single shared pool of monochrome
// glyph pixels. A parsed [Font] is read-only for the rest of the process.
package tagfont
