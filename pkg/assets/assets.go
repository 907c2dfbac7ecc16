// Package assets resolves image references to absolute URLs. The API
// returns a mix of absolute URLs and storage-relative paths; display
// code always needs the absolute form.
package assets

import (
	"strings"

	"github.com/electro05/storefront/config"
)

// URL resolves ref against ASSET_BASE_URL. Absolute refs (http/https)
// and data URIs pass through untouched; empty refs stay empty so views
// can fall back to a placeholder.
func URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "data:") {
		return ref
	}
	return config.AssetBaseURL() + "/" + strings.TrimLeft(ref, "/")
}
