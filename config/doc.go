// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The candidate feed URLs are ordered lists: position in the list defines
// fallback priority, so editing the file changes probing behavior without a
// redeploy.
package config
