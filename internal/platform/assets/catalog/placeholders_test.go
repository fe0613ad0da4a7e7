package catalog

import (
	"errors"
	"slices"
	"testing"
)

func TestPlaceholderPhotoIsDeterministic(t *testing.T) {
	first, err := PlaceholderPhoto("gaearon")
	if err != nil {
		t.Fatalf("PlaceholderPhoto() error = %v", err)
	}
	second, err := PlaceholderPhoto("  gaearon ")
	if err != nil {
		t.Fatalf("PlaceholderPhoto() error = %v", err)
	}
	if first != second {
		t.Fatalf("PlaceholderPhoto = %q then %q, want stable", first, second)
	}
	if !slices.Contains(PlaceholderAssetIDs(), first) {
		t.Fatalf("PlaceholderPhoto = %q, not in catalog", first)
	}
}

func TestPlaceholderPhotoSpreadsAcrossSet(t *testing.T) {
	seen := map[string]bool{}
	for _, slug := range []string{"gaearon", "acdlite", "rickhanlonii", "sebmarkbage", "sophiebits", "mattcarrollcode", "poteto", "lunaruan"} {
		id, err := PlaceholderPhoto(slug)
		if err != nil {
			t.Fatalf("PlaceholderPhoto(%q) error = %v", slug, err)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Fatalf("placeholders used = %v, want more than one", seen)
	}
}

func TestPlaceholderPhotoRequiresSlug(t *testing.T) {
	if _, err := PlaceholderPhoto(" "); !errors.Is(err, ErrMemberSlugRequired) {
		t.Fatalf("PlaceholderPhoto() error = %v, want %v", err, ErrMemberSlugRequired)
	}
}

func TestPlaceholderAssetIDsReturnsCopy(t *testing.T) {
	ids := PlaceholderAssetIDs()
	ids[0] = "mutated"
	if PlaceholderAssetIDs()[0] == "mutated" {
		t.Fatal("PlaceholderAssetIDs exposed internal slice")
	}
}
