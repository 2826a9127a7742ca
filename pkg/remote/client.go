package remote

import (
	"image/color"
	"io"
	"net/rpc"
	"strings"

	"github.com/pkg/errors"

	"tgadump/pkg/bitmap"
	"tgadump/pkg/tga"
)

func New(addr string) (*Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

func NewClient(conn io.ReadWriteCloser) *Client {
	return &Client{rpc: rpc.NewClient(conn)}
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

func (c *Client) Encode(width, height int, pixels []color.NRGBA) ([]byte, error) {
	var resp EncodeResponse
	if err := c.rpc.Call(serviceName+".Encode", &EncodeRequest{
		Width:  width,
		Height: height,
		Pixels: bitmap.Pack(pixels),
	}, &resp); err != nil {
		return nil, remoteError(err)
	}

	return resp.TGA, nil
}

func (c *Client) EncodeImage(img []byte) ([]byte, error) {
	var resp EncodeResponse
	if err := c.rpc.Call(serviceName+".EncodeImage", &ImageRequest{Image: img}, &resp); err != nil {
		return nil, remoteError(err)
	}

	return resp.TGA, nil
}

// remoteError restores the encoder sentinels lost in the string-only rpc.ServerError.
func remoteError(err error) error {
	se, ok := err.(rpc.ServerError)
	if !ok {
		return err
	}

	for _, sentinel := range []error{tga.ErrDimensionTooLarge, tga.ErrPixelCountMismatch, bitmap.ErrPackedLength} {
		if strings.Contains(string(se), sentinel.Error()) {
			return errors.Wrapf(sentinel, "remote: %s", strings.TrimSuffix(string(se), ": "+sentinel.Error()))
		}
	}
	return err
}
