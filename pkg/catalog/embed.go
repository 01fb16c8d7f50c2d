package catalog

import "embed"

// bundled holds the catalog shipped inside the binary. Read it through
// Default, which strips the assets/ prefix.
//
//go:embed assets/surahs.json assets/*.txt
var bundled embed.FS
