// Package build holds the generated application icons.
package build

//go:generate go run ../cmd/ggicon --output icon.png --icns icon.icns --ico icon.ico
