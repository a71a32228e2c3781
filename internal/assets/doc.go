// Package assets loads body surface textures for the detail view.
package assets
