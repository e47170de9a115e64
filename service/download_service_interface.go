package service

// DownloadServiceInterface defines the contract for item image download operations
type DownloadServiceInterface interface {
	DownloadAllImages(folderID string) (total int, downloaded int, skipped int, errors []string, err error)
}
