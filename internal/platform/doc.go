package platform

// Package platform contains OS/platform integration and external format glue:
// filesystem helpers, config directory discovery, and decoding of layout
// documents from JSON or YAML.
