package models

// AssetUploadInput requests a presigned PUT URL for a source asset
// (the image or clip feeding an image2video / video2video generation).
type AssetUploadInput struct {
	Name     string `json:"name" validate:"required,lte=255"`
	MimeType string `json:"mime_type" validate:"required,lte=100"`
	Size     int64  `json:"size" validate:"required,gt=0"`

	// Resolved server-side before hitting S3.
	Key        string `json:"-"`
	BucketName string `json:"-"`
}

type AssetUploadResult struct {
	UploadURL string `json:"upload_url"`
	AssetURL  string `json:"asset_url"`
	Key       string `json:"key"`
}
