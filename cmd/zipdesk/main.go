package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zipdesk/zipdesk/config"
	"github.com/zipdesk/zipdesk/internal/adapters/checksum"
	"github.com/zipdesk/zipdesk/internal/adapters/picker"
	"github.com/zipdesk/zipdesk/internal/adapters/zipengine"
	"github.com/zipdesk/zipdesk/internal/core/domain"
	"github.com/zipdesk/zipdesk/internal/core/services/archiver"
	"github.com/zipdesk/zipdesk/internal/core/services/extractor"
	"github.com/zipdesk/zipdesk/internal/serialize"
	"github.com/zipdesk/zipdesk/pkg/fs"
	"github.com/zipdesk/zipdesk/pkg/logger"
)

func main() {
	log := logger.New("zipdesk")
	defer log.Sync()

	cfg := config.DefaultConfig()
	if path := os.Getenv("ZIPDESK_CONFIG"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			log.Errorw("load config error", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	engine, err := zipengine.New(zipengine.Options{
		Level:      cfg.CompressionLevel,
		BufferSize: cfg.BufferSize,
	})
	if err != nil {
		log.Errorw("create engine error", "error", err)
		os.Exit(1)
	}

	opts := cfg.Options()
	dialogs := picker.New(log)
	fsys := fs.NewLocalFileSystem()

	archive := archiver.New(opts, engine, dialogs, fsys, log)
	extract := extractor.New(opts, engine, dialogs, fsys, checksum.NewCRC32IEEE(), log)

	ctx := context.Background()
	progress := func(percent int) { log.Infow("progress", "percent", percent) }

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var result domain.Result

	switch args[0] {
	case "zip":
		// Omitted paths fall back to the native pickers.
		req := domain.ArchiveRequest{OnProgress: progress}
		if len(args) > 1 {
			req.Destination = args[1]
		}
		if len(args) > 2 {
			req.Sources = args[2:]
		}
		result = archive.ArchiveSync(ctx, req)

	case "unzip":
		req := domain.ExtractRequest{OnProgress: progress}
		if len(args) > 1 {
			req.ArchivePath = args[1]
		}
		if len(args) > 2 {
			req.TargetDir = args[2]
		}
		result = extract.ExtractSync(ctx, req)

	default:
		usage()
		os.Exit(2)
	}

	if out, err := serialize.MarshalResult(result); err == nil {
		fmt.Println(string(out))
	}

	if result.Kind == domain.OutcomeFailed || result.Kind == domain.OutcomeInvalidInput {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  zipdesk zip [destination.zip] [source...]")
	fmt.Fprintln(os.Stderr, "  zipdesk unzip [archive.zip] [destination-dir]")
	fmt.Fprintln(os.Stderr, "omitted paths are requested through the native file dialogs")
}
