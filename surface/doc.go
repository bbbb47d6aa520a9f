// Package surface implements the core model for Strata: a unified, editable
// text surface assembled from fragments of several source files.
//
// A Surface owns an ordered sequence of Sections. Each Section binds a
// contiguous span of the surface to one file, either the file's whole content
// (Full) or a line-range window of it (Partial). The host keeps one position
// anchor per section; the anchors are the only ground truth for where section
// boundaries sit after the user has edited the surface.
//
// Line numbers are 1-based and inclusive throughout, on both the file side
// (FileStart, FileEnd) and the surface side (BufferStart, BufferEnd).
package surface
