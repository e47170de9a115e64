package service

import "kenneths-desserts/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListItemImages(folderID string) ([]models.DriveImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
