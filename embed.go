package showcase

import "embed"

// EmbeddedAssets contains static assets shipped with the server:
// site.css and site.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
