// Package icons defines the glyphs used by profile link badges.
//
// The catalog maps stable icon identifiers to labels and inline SVG markup.
// Glyphs are decorative: they are always rendered with aria-hidden and the
// surrounding link carries the accessible label.
package icons
