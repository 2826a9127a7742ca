package main

import (
	"errors"
	"log"
	"strings"

	"github.com/moolex/wallhaven-go/api"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"tgadump/internal/cli"
	"tgadump/pkg/source"
	"tgadump/pkg/store"
)

var out = flag.String("out", ".", "output directory")
var count = flag.Int("count", 10, "wallpapers to dump")
var fill = flag.String("fill", "", "crop and scale to WIDTHxHEIGHT")
var thumb = flag.Bool("thumb", false, "dump thumbnails instead of full images")
var debug = flag.Bool("debug", false, "set debug")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var whQuery = flag.String("wh-query", "", "wallhaven query string")
var whCategory = flag.String("wh-category", "", "wallhaven category names")
var whPurity = flag.String("wh-purity", "", "wallhaven purity levels")
var whRandom = flag.Bool("wh-random", false, "wallhaven random sort")
var whSorting = flag.String("wh-sorting", "", "wallhaven sorting type")
var whToplist = flag.String("wh-toplist", "1M", "wallhaven toplist range")
var whRatio = flag.String("wh-ratio", "", "wallhaven ratio filter")

func query() *api.QueryCond {
	q := api.NewQuery(*whQuery)
	if *whCategory != "" {
		q.SetCategory(strings.Split(*whCategory, ",")...)
	}
	if *whPurity != "" {
		q.SetPurity(strings.Split(*whPurity, ",")...)
	}
	if *whRatio != "" {
		q.SetRatio(*whRatio)
	}
	if *whRandom {
		q.Random()
	} else if *whSorting != "" {
		q.SortBy(*whSorting)
	} else {
		q.SortBy(api.SortTopList)
		q.TopRange = *whToplist
	}
	return q
}

func main() {
	flag.Parse()

	logger := cli.NewLogger(*debug)

	var opts []source.Option
	if *fill != "" {
		w, h, err := source.ParseSize(*fill)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, source.WithFill(w, h))
	}
	loader := source.NewLoader(logger, append(opts, source.WithProgress())...)

	st, err := store.New(afero.NewOsFs(), *out, logger)
	if err != nil {
		log.Fatal(err)
	}

	wh := api.New(*whKey)
	wh.SetLogger(logger)
	if *debug {
		wh.SetDebug()
	}

	ret, err := wh.Query(query())
	if err != nil {
		log.Fatal(err)
	}

	// skipped and failed picks count against a bounded number of tries
	for saved, tries := 0, 0; saved < *count && tries < *count*3; tries++ {
		wp, err := ret.Pick(api.PickLoop)
		if err != nil {
			if errors.Is(err, api.ErrNoMoreItems) {
				logger.Info("no more wallpapers")
				break
			}
			log.Fatal(err)
		}

		wlog := logger.With(zap.String("id", wp.Id), zap.String("url", wp.Url))

		if exists, err := st.Exists(wp.Id); err != nil {
			wlog.With(zap.Error(err)).Info("check failed")
			continue
		} else if exists {
			wlog.Debug("already dumped")
			continue
		}

		img, err := loader.Fetch(lo.Ternary(*thumb, wp.Thumbs.Original, wp.Path))
		if err != nil {
			wlog.With(zap.Error(err)).Info("fetch failed")
			continue
		}

		file, _, err := st.SaveImage(wp.Id, img)
		if err != nil {
			wlog.With(zap.Error(err)).Info("save failed")
			continue
		}

		wlog.With(zap.String("file", file)).Info("dumped")
		saved++
	}
}
