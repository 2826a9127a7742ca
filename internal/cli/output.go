package cli

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// OutputName derives "<base>.tga" from a local path or URL.
func OutputName(ref string) string {
	base := filepath.Base(ref)
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		base = path.Base(u.Path)
	}

	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "image"
	}

	return base + ".tga"
}
