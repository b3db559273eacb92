// Package importmodel defines the data model for source file import analysis.
package importmodel

// File represents a scanned source file with its detected imports and language.
type File struct {
	Path    string
	Lang    string
	Imports []string
	Size    int64
}
