// Package imagecdn resolves team photo references into deliverable URLs.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrAssetIDRequired is returned when a request omits the asset identifier.
var ErrAssetIDRequired = errors.New("asset id is required")

const cloudinaryHost = "res.cloudinary.com"

// Crop selects a source rectangle before delivery.
type Crop struct {
	X        int
	Y        int
	WidthPX  int
	HeightPX int
}

// Delivery describes the requested output size.
type Delivery struct {
	WidthPX int
}

// Request identifies one image asset and optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Crop      *Crop
	Delivery  *Delivery
}

// CDN builds asset URLs under one base URL. A zero CDN resolves to
// root-relative paths.
type CDN struct {
	baseURL    string
	cloudinary bool
}

// New returns a CDN rooted at baseURL.
func New(baseURL string) CDN {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	cdn := CDN{baseURL: baseURL}
	if parsed, err := url.Parse(baseURL); err == nil && strings.EqualFold(parsed.Host, cloudinaryHost) {
		cdn.cloudinary = true
	}
	return cdn
}

// BaseURL returns the normalized base URL.
func (c CDN) BaseURL() string {
	return c.baseURL
}

// URL resolves req to an absolute asset URL. Transforms are only encoded for
// CDNs that understand them; flat hosts ignore them.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	segments := []string{c.baseURL}
	if c.cloudinary {
		if crop := req.Crop; crop != nil && crop.WidthPX > 0 && crop.HeightPX > 0 {
			segments = append(segments, fmt.Sprintf("c_crop,w_%d,h_%d,x_%d,y_%d", crop.WidthPX, crop.HeightPX, crop.X, crop.Y))
		}
		if delivery := req.Delivery; delivery != nil && delivery.WidthPX > 0 {
			segments = append(segments, fmt.Sprintf("f_auto,q_auto,dpr_auto,c_limit,w_%d", delivery.WidthPX))
		}
	}
	segments = append(segments, assetID+ext)
	return strings.Join(segments, "/"), nil
}

// ResolvePhoto maps a profile photo reference to a URL. Absolute URLs and
// root-relative paths are returned unchanged; bare references such as
// "team/dan.jpg" are served from the CDN, sized to widthPX when supported.
func (c CDN) ResolvePhoto(ref string, widthPX int) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "/") || strings.Contains(ref, "://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	assetID, ext := splitExtension(ref)
	req := Request{AssetID: assetID, Extension: ext}
	if widthPX > 0 {
		req.Delivery = &Delivery{WidthPX: widthPX}
	}
	resolved, err := c.URL(req)
	if err != nil {
		return ref
	}
	return resolved
}

func splitExtension(ref string) (string, string) {
	slash := strings.LastIndex(ref, "/")
	dot := strings.LastIndex(ref, ".")
	if dot <= slash+1 {
		return ref, ""
	}
	return ref[:dot], ref[dot:]
}
