package remote

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"net/rpc"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tgadump/pkg/bitmap"
	"tgadump/pkg/source"
	"tgadump/pkg/tga"
)

const serviceName = "Encoder"

func NewService(loader *source.Loader, logger *zap.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

type Service struct {
	loader *source.Loader
	logger *zap.Logger
}

func (s *Service) Encode(req *EncodeRequest, resp *EncodeResponse) error {
	pixels, err := bitmap.Unpack(req.Pixels)
	if err != nil {
		return err
	}

	out, err := tga.Marshal(req.Width, req.Height, pixels)
	if err != nil {
		return err
	}

	s.logger.With(zap.Int("w", req.Width), zap.Int("h", req.Height), zap.Int("size", len(out))).Debug("encoded")
	resp.TGA = out
	return nil
}

func (s *Service) EncodeImage(req *ImageRequest, resp *EncodeResponse) error {
	img, err := s.loader.Decode(bytes.NewReader(req.Image))
	if err != nil {
		return err
	}

	return s.encodeImage(img, resp)
}

func (s *Service) encodeImage(img image.Image, resp *EncodeResponse) error {
	var buf bytes.Buffer
	if _, err := tga.EncodeImage(&buf, img); err != nil {
		return err
	}

	s.logger.With(zap.Int("w", img.Bounds().Dx()), zap.Int("h", img.Bounds().Dy()), zap.Int("size", buf.Len())).Debug("encoded image")
	resp.TGA = buf.Bytes()
	return nil
}

func Register(srv *rpc.Server, svc *Service) error {
	return srv.RegisterName(serviceName, svc)
}

// Proxy serves svc over HTTP on srv for the lifetime of the fx application.
func Proxy(svc *Service, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	rs := rpc.NewServer()
	if err := Register(rs, svc); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, rs)
	srv.Handler = mux

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Fatal("listen failed")
				}
			}()
			logger.With(zap.String("addr", srv.Addr)).Info("serving")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}
