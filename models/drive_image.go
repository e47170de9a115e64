package models

// DriveImage represents an item photo discovered in the shop's Google Drive folder
type DriveImage struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	ItemID   string `json:"itemId"` // catalog item id parsed from the filename
	ImageURL string `json:"imageUrl"`
}
