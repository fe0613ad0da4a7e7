// Package branding holds product naming shared by page chrome and titles.
package branding

// AppName is the product name appended to page titles.
const AppName = "TeamDocs"

// TitleSeparator joins a page title and AppName.
const TitleSeparator = " | "
