package file

// UploadResponse carries the public URI of a stored object.
type UploadResponse struct {
	URI string `json:"uri"`
}
