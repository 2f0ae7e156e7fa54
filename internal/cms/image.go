package cms

import (
	"fmt"
	"strings"
)

// AssetResolver maps opaque image references to public CDN URLs. Resolution is
// pure URL construction; no bytes are fetched here.
type AssetResolver struct {
	projectID string
	dataset   string
}

// NewAssetResolver creates a resolver for the given project/dataset pair.
func NewAssetResolver(projectID, dataset string) *AssetResolver {
	return &AssetResolver{projectID: projectID, dataset: dataset}
}

type imageOptions struct {
	width  int
	height int
}

// ImageOption adds transform parameters to a resolved URL.
type ImageOption func(*imageOptions)

// WithSize requests a crop-fit rendition at the given dimensions.
func WithSize(width, height int) ImageOption {
	return func(o *imageOptions) {
		o.width = width
		o.height = height
	}
}

// URLFor resolves an image reference to a fully-qualified URL. A nil or
// malformed reference resolves to "", which callers must treat as "no image".
//
// References look like "image-<assetId>-<WxH>-<format>".
func (r *AssetResolver) URLFor(ref *ImageRef, opts ...ImageOption) string {
	if ref.Empty() {
		return ""
	}

	parts := strings.Split(ref.Asset.Ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	assetID, dims, format := parts[1], parts[2], parts[3]
	if assetID == "" || dims == "" || format == "" {
		return ""
	}

	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		r.projectID, r.dataset, assetID, dims, format)
	if o.width > 0 && o.height > 0 {
		return fmt.Sprintf("%s?w=%d&h=%d&fit=crop", base, o.width, o.height)
	}
	return base
}
