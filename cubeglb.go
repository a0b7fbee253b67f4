package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/mogaika/cubeglb/config"
	"github.com/mogaika/cubeglb/glb"
	"github.com/mogaika/cubeglb/mesh/cube"
	"github.com/mogaika/cubeglb/utils"
	"github.com/mogaika/cubeglb/utils/gltfutils"
)

func generate(o config.Options) (*glb.Asset, error) {
	winding, err := config.ParseWinding(o.Winding)
	if err != nil {
		return nil, err
	}

	asset, err := glb.Encode(cube.Build(winding), o.Generator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cube")
	}
	if err := glb.WriteFile(o.Output, asset.Bytes); err != nil {
		return nil, err
	}
	return asset, nil
}

func verify(path string) error {
	s, err := gltfutils.Inspect(path)
	if err != nil {
		return err
	}
	if err := s.Validate(cube.VerticesCount, cube.IndexesCount); err != nil {
		return errors.Wrapf(err, "verification of %q failed", path)
	}
	log.Info("Verified", "path", path, "min", s.Min, "max", s.Max, "buffer", s.BufferSize)
	return nil
}

func main() {
	var cfgpath, output, generator, winding string
	var doVerify, doDump, verbose bool
	flag.StringVar(&cfgpath, "config", "", "Path to yaml options file")
	flag.StringVar(&output, "o", config.DefaultOutput, "Output .glb path")
	flag.StringVar(&generator, "generator", config.DefaultGenerator, "asset.generator value")
	flag.StringVar(&winding, "winding", "default", "Triangle winding: 'default' (0,2,1 0,3,2) or 'flipped' (0,1,2 0,2,3)")
	flag.BoolVar(&doVerify, "verify", false, "Reopen written file with glTF reader and check layout")
	flag.BoolVar(&doDump, "dump", false, "Dump metadata document")
	flag.BoolVar(&verbose, "v", false, "Debug logging")
	flag.Parse()

	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "cubeglb",
	}))
	if verbose || doDump {
		log.SetLevel(log.DebugLevel)
	}

	o := config.Default()
	if cfgpath != "" {
		var err error
		if o, err = config.Load(cfgpath); err != nil {
			log.Fatal(err)
		}
	}
	// explicit flags win over config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			o.Output = output
		case "generator":
			o.Generator = generator
		case "winding":
			o.Winding = winding
		}
	})
	log.Debug("Options", "output", o.Output, "generator", o.Generator, "winding", o.Winding)

	asset, err := generate(o)
	if err != nil {
		log.Fatal(err)
	}

	if doDump {
		utils.LogDump(asset.Document)
	}

	log.Info("Written", "path", o.Output,
		"vertices", asset.VertexCount,
		"indices", asset.IndexCount,
		"binary", asset.BinLength,
		"size", len(asset.Bytes))

	if doVerify {
		if err := verify(o.Output); err != nil {
			log.Fatal(err)
		}
	}
}
