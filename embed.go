package agency

import "embed"

// WebFS contains the built admin/marketing SPA.
// Run "npm run build" in web/ to rebuild.
//
//go:embed web/dist
var WebFS embed.FS
