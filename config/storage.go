package config

import "path/filepath"

// DataDir holds the JSON document store files.
func DataDir() string {
	return getenv("DATA_DIR", "data")
}

func IdeasFile() string {
	return filepath.Join(DataDir(), "ideas.json")
}

func ReportsFile() string {
	return filepath.Join(DataDir(), "reports.json")
}

// UploadDir is where idea images land; it is served under /images.
func UploadDir() string {
	return getenv("UPLOAD_DIR", filepath.Join("static", "uploads"))
}
