package models

import "path/filepath"

// ArchiveFileName returns the zip file name for a base name
func ArchiveFileName(baseName string) string {
	return baseName + ".zip"
}

// ArchivePath returns where the zip for a base name is built
// Format: <outDir>/name_version.zip
func ArchivePath(outDir, baseName string) string {
	return filepath.Join(outDir, ArchiveFileName(baseName))
}

// ThumbnailEntry returns the archive-internal path of the thumbnail
func ThumbnailEntry(baseName string) string {
	return baseName + "/" + ThumbnailFile
}
