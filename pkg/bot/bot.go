package bot

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tgadump/pkg/source"
	"tgadump/pkg/tga"
)

func New(token string, loader *source.Loader, logger *zap.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{b: b, loader: loader, log: logger.With(zap.String("via", "telegram"))}, nil
}

// Bot replies to photos and image documents with the same picture as a TGA document.
type Bot struct {
	b      *tele.Bot
	loader *source.Loader
	log    *zap.Logger
}

func (b *Bot) handleInfo() {
	b.b.Handle("/size", func(context tele.Context) error {
		w, h, err := source.ParseSize(context.Message().Payload)
		if err != nil {
			return context.Reply("usage: /size WIDTHxHEIGHT")
		}
		return context.Reply(SizeInfo(w, h))
	})
}

func (b *Bot) handleConvert() {
	b.b.Handle(tele.OnPhoto, func(context tele.Context) error {
		photo := context.Message().Photo
		return b.convert(context, &photo.File, "photo")
	})

	b.b.Handle(tele.OnDocument, func(context tele.Context) error {
		doc := context.Message().Document
		if !strings.HasPrefix(doc.MIME, "image/") {
			return context.Reply("send a photo or an image file")
		}
		return b.convert(context, &doc.File, strings.TrimSuffix(doc.FileName, path.Ext(doc.FileName)))
	})
}

func (b *Bot) convert(context tele.Context, file *tele.File, name string) error {
	rc, err := b.b.File(file)
	if err != nil {
		return context.Reply(fmt.Sprintf("download failed: %s", err))
	}
	defer func() {
		_ = rc.Close()
	}()

	img, err := b.loader.Decode(rc)
	if err != nil {
		return context.Reply(fmt.Sprintf("decode failed: %s", err))
	}

	var buf bytes.Buffer
	n, err := tga.EncodeImage(&buf, img)
	if err != nil {
		return context.Reply(fmt.Sprintf("encode failed: %s", err))
	}

	b.log.With(zap.String("file", file.FileID), zap.Int64("size", n)).Debug("converted")

	return context.Reply(&tele.Document{
		File:     tele.FromReader(&buf),
		FileName: name + ".tga",
		MIME:     "image/x-tga",
	})
}

func (b *Bot) Start() {
	b.handleInfo()
	b.handleConvert()
	go b.b.Start()
}

func (b *Bot) Stop() {
	go b.b.Stop()
}

// SizeInfo describes the file a width x height image encodes to.
func SizeInfo(width, height int) string {
	if err := tga.Validate(width, height, width*height); err != nil {
		return err.Error()
	}

	size := tga.Size(width, height)
	return fmt.Sprintf("%dx%d: %d bytes (%s)", width, height, size, bytesize.New(float64(size)).String())
}
