// Package teamcard renders team member profile cards.
//
// A card is built in two steps. Build validates a Profile and produces a Card,
// a plain view tree describing what the card shows: the two responsive photo
// placements, the anchored heading, the title line, the biography, the link
// badges and the optional translated-pages disclosure. RenderCard then turns
// that tree into HTML through the collaborators in a Kit (image, links,
// heading, icons) and the region-keyed Styles.
//
// Both steps are pure. Rendering the same Profile twice produces the same
// tree and the same markup, and cards for different profiles can be rendered
// concurrently.
package teamcard
