package proto

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.uber.org/zap"

	"tgadump/pkg/tga"
)

var ErrPortNotFound = errors.New("USB port not found")

type Options struct {
	DTR      bool
	RTS      bool
	BaudRate int
}

func DefaultOptions() *Options {
	return &Options{DTR: true, RTS: true, BaudRate: 115200}
}

func NewSerial(name string, logger *zap.Logger) *Serial {
	return &Serial{name: name, logger: logger}
}

// Serial streams TGA frames to the first port whose name contains name.
// A frame is a big-endian uint32 length followed by the encoded image.
type Serial struct {
	name   string
	port   serial.Port
	logger *zap.Logger
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

func (s *Serial) Open(opts *Options) error {
	ports, err := s.Ports()
	if err != nil {
		return err
	}

	var matched string
	for _, name := range ports {
		if strings.Contains(name, s.name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return errors.Wrap(ErrPortNotFound, s.name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return err
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		_ = port.Close()
		return err
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		_ = port.Close()
		return err
	}

	s.logger.With(zap.String("port", matched), zap.Int("baud", opts.BaudRate)).Debug("opened")
	s.port = port
	return nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}

// Send encodes one frame and writes it in a single call.
func (s *Serial) Send(width, height int, pixels []color.NRGBA) error {
	frame, err := Frame(width, height, pixels)
	if err != nil {
		return err
	}

	start := time.Now()
	sent, err := s.Write(frame)
	if err == nil && sent < len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &tga.WriteError{Written: int64(sent), Err: err}
	}

	s.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", time.Since(start).String()),
	).Debug("transfer")

	return nil
}

// Frame returns the length-prefixed TGA bytes of an image.
func Frame(width, height int, pixels []color.NRGBA) ([]byte, error) {
	if err := tga.Validate(width, height, len(pixels)); err != nil {
		return nil, err
	}

	size := tga.Size(width, height)
	if size > 0xFFFFFFFF {
		return nil, fmt.Errorf("frame of %d bytes does not fit the length prefix", size)
	}

	var bs bytes.Buffer
	bs.Grow(4 + int(size))
	_ = binary.Write(&bs, binary.BigEndian, uint32(size))
	if _, err := tga.Encode(&bs, width, height, pixels); err != nil {
		return nil, err
	}

	return bs.Bytes(), nil
}
