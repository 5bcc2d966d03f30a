package constants

import (
	"path/filepath"
	"strings"
)

// Resource file kinds shown on the dashboard.
const (
	FileTypeVideo   = "VIDEO"
	FileTypeAudio   = "AUDIO"
	FileTypeDoc     = "DOC"
	FileTypePDF     = "PDF"
	FileTypeSlides  = "SLIDES"
	FileTypeImage   = "IMAGE"
	FileTypeUnknown = "OTHER"
)

func DetectFileTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp4", ".mov", ".webm":
		return FileTypeVideo
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDoc
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx":
		return FileTypeSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}
