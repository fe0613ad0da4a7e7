package templates

import (
	"strings"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is empty for the current page.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the accumulated
// path up to it (for example, "/team/gaearon").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// LabelForSegment resolves labels for each segment.
	LabelForSegment BreadcrumbSegmentLabeler
	// MemberNames maps member slugs to display names for segments under /team/.
	MemberNames map[string]string
}

// BuildTeamBreadcrumbs builds the trail for team pages. The team index has
// no trail; a member page links back to the index.
func BuildTeamBreadcrumbs(path string, loc Localizer, memberNames map[string]string) []BreadcrumbItem {
	crumbs := BuildPathBreadcrumbsWithOptions(path, loc, PathBreadcrumbOptions{
		LabelForSegment: teamSegmentLabel,
		MemberNames:     memberNames,
	})
	if len(crumbs) < 2 {
		return []BreadcrumbItem{}
	}
	return crumbs
}

// BuildPathBreadcrumbsWithOptions builds breadcrumb items for a request path.
// Every segment but the last links to its accumulated path.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	var segments []string
	for _, segment := range strings.Split(strings.TrimSpace(path), "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return []BreadcrumbItem{}
	}

	labeler := options.LabelForSegment
	if labeler == nil {
		labeler = defaultSegmentLabel
	}
	if len(options.MemberNames) > 0 {
		labeler = labelMemberName(options.MemberNames, labeler)
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments))
	pathSoFar := ""
	for idx, segment := range segments {
		pathSoFar += "/" + segment
		label := strings.TrimSpace(labeler(segment, pathSoFar, loc))
		if label == "" {
			label = segment
		}
		item := BreadcrumbItem{Label: label}
		if idx < len(segments)-1 {
			item.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, item)
	}
	return breadcrumbs
}

func labelMemberName(memberNames map[string]string, next BreadcrumbSegmentLabeler) BreadcrumbSegmentLabeler {
	return func(segment string, fullPath string, loc Localizer) string {
		parts := strings.Split(strings.Trim(fullPath, "/"), "/")
		if len(parts) == 2 && parts[0] == "team" && parts[1] == segment {
			if name := strings.TrimSpace(memberNames[segment]); name != "" {
				return name
			}
		}
		return next(segment, fullPath, loc)
	}
}

func teamSegmentLabel(segment string, fullPath string, loc Localizer) string {
	if fullPath == "/team" {
		return T(loc, "core.nav.team")
	}
	return segment
}

func defaultSegmentLabel(segment string, _ string, _ Localizer) string {
	return segment
}
