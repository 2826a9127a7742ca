package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"tgadump/internal/cli"
	"tgadump/pkg/bitmap"
	"tgadump/pkg/proto"
	"tgadump/pkg/source"
	"tgadump/pkg/store"
	"tgadump/pkg/tga"
)

var fill = flag.String("fill", "", "crop and scale to WIDTHxHEIGHT")
var resize = flag.String("resize", "", "scale to WIDTHxHEIGHT, 0 keeps the ratio")
var flip = flag.Bool("flip", false, "input rows are stored bottom-up")
var serialName = flag.String("serial", "", "stream the frame to this serial port instead of a file")
var baud = flag.Int("baud", 115200, "serial baud rate")
var progress = flag.Bool("progress", false, "show download progress")
var debug = flag.Bool("debug", false, "set debug")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image-path-or-url> [output.tga|-]\n", os.Args[0])
	flag.PrintDefaults()
}

func loaderOptions() ([]source.Option, error) {
	var opts []source.Option

	if *fill != "" {
		w, h, err := source.ParseSize(*fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, source.WithFill(w, h))
	} else if *resize != "" {
		w, h, err := source.ParseSize(*resize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, source.WithResize(w, h))
	}

	if *progress {
		opts = append(opts, source.WithProgress())
	}

	return opts, nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if err := cli.CheckArgs(args, *serialName != ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	logger := cli.NewLogger(*debug)
	defer func() {
		_ = logger.Sync()
	}()

	opts, err := loaderOptions()
	if err != nil {
		log.Fatal(err)
	}

	img, err := source.NewLoader(logger, opts...).Open(args[0])
	if err != nil {
		log.Fatal(err)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pixels := bitmap.Pixels(img)
	if *flip {
		pixels = bitmap.Flip(pixels, w, h)
	}

	if *serialName != "" {
		s := proto.NewSerial(*serialName, logger)
		mode := proto.DefaultOptions()
		mode.BaudRate = *baud
		if err := s.Open(mode); err != nil {
			log.Fatal(err)
		}
		defer func() {
			_ = s.Close()
		}()

		if err := s.Send(w, h, pixels); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := lo.Ternary(len(args) == 2, args[len(args)-1], cli.OutputName(args[0]))
	if out == "-" {
		bw := bufio.NewWriter(os.Stdout)
		if _, err := tga.Encode(bw, w, h, pixels); err != nil {
			log.Fatal(err)
		}
		if err := bw.Flush(); err != nil {
			log.Fatal(err)
		}
		return
	}

	st, err := store.New(afero.NewOsFs(), filepath.Dir(out), logger)
	if err != nil {
		log.Fatal(err)
	}

	file, n, err := st.Save(filepath.Base(out), w, h, pixels)
	if err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.String("file", filepath.Join(filepath.Dir(out), file)),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Info("written")
}
