// Package catalog lists the built-in image assets served through the CDN.
package catalog

import (
	"errors"
	"hash/fnv"
	"strings"
)

// PlaceholderSetV1 names the member placeholder photo set.
const PlaceholderSetV1 = "member_placeholder_v1"

// ErrMemberSlugRequired reports a missing member slug when picking a
// placeholder.
var ErrMemberSlugRequired = errors.New("member slug is required")

var placeholderAssetIDs = []string{
	"team/placeholders/member-01",
	"team/placeholders/member-02",
	"team/placeholders/member-03",
	"team/placeholders/member-04",
}

// PlaceholderAssetIDs returns the stable ordered placeholder asset ids.
func PlaceholderAssetIDs() []string {
	return append([]string(nil), placeholderAssetIDs...)
}

// PlaceholderPhoto returns the placeholder asset id for a member without a
// photo. The same slug always resolves to the same asset.
func PlaceholderPhoto(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", ErrMemberSlugRequired
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(PlaceholderSetV1))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(slug))
	index := hasher.Sum64() % uint64(len(placeholderAssetIDs))
	return placeholderAssetIDs[index], nil
}
