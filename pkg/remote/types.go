package remote

// EncodeRequest carries packed R,G,B,A bytes, row-major from the top-left corner.
type EncodeRequest struct {
	Width  int
	Height int
	Pixels []byte
}

// ImageRequest carries a PNG, JPEG or GIF file.
type ImageRequest struct {
	Image []byte
}

type EncodeResponse struct {
	TGA []byte
}
