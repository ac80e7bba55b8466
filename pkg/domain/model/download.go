package model

// DownloadOptions controls which releases of a project are downloaded and where
type DownloadOptions struct {
	ReleaseTag string // Exact release title to fetch; latest per logical name when empty
	OutputDir  string // Directory to store assets in

	// Progress is called with the download URL before each asset is fetched
	Progress func(url string)
}

// DownloadResult represents the result of an asset download
type DownloadResult struct {
	Releases []*Release // Releases whose assets were fetched
	Files    []string   // Paths of the stored files
	Size     int64      // Total size in bytes
}
