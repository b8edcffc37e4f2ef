package config

const (
	DefaultLimitComments = 20
	MaxLimitComments     = 100

	// multipart upload ceiling, main image plus extra photos plus proof
	MaxUploadBytes = 20 << 20

	PostImagesBucket = "post-images"
)
