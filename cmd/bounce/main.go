package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/media"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/storage"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (overrides config)")
	outputFlag  = flag.String("output", "", "Output video file (overrides config)")
	storeFlag   = flag.String("store", "", "Frame store: dir or gdata (overrides config)")
	previewFlag = flag.Bool("preview", false, "Show a terminal preview while rendering")
	keepFlag    = flag.Bool("keep-frames", false, "Keep intermediate frames after encoding")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/bounce.log")
)

// preview is finalized by the crash handler so the terminal is usable after a panic
var preview *render.TerminalPreview

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup, the log file included,
// runs before main exits
func realMain(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if preview != nil {
				preview.Close()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	if err := flag.CommandLine.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags overrides config values with the flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "output":
			cfg.Output = *outputFlag
		case "store":
			cfg.Store = *storeFlag
		case "preview":
			cfg.Preview = *previewFlag
		case "keep-frames":
			cfg.KeepFrames = *keepFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

func run(ctx context.Context, cfg *config.Config) error {
	runID := uuid.New()
	log.Printf("run %s: seed=%d fps=%d size=%dx%d store=%s", runID, cfg.Seed, cfg.FPS, cfg.Width, cfg.Height, cfg.Store)

	// both are fatal, checked before spending time on rendering
	asset, err := audio.LoadAsset(cfg.SoundAsset)
	if err != nil {
		return err
	}
	encoder, err := media.DetectEncoder(cfg.FPS)
	if err != nil {
		return err
	}

	frames, err := openStore(cfg, runID)
	if err != nil {
		return err
	}

	fmt.Println("Simulating and rendering frames...")
	p := &progress{out: os.Stdout, fps: cfg.FPS}
	if cfg.Preview {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		preview = render.NewTerminalPreview(screen, cfg.PreviewEvery)
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		preview.Interrupt(cancel)
		p.out = io.Discard
		p.next = preview.Observe
	}

	started := time.Now()
	sim := engine.NewSimulation(cfg.Engine())
	result, err := engine.Run(ctx, sim, render.NewRasterizer(), frames, p.observe)

	if preview != nil {
		preview.Close()
		preview = nil
	}
	if err != nil {
		if !cfg.KeepFrames {
			if cerr := frames.Clear(); cerr != nil {
				log.Printf("cleanup after failed run: %v", cerr)
			}
		}
		return err
	}
	log.Printf("run %s: %d frames, %d spawns, %d cues in %s", runID, result.Frames, result.Spawns, len(result.Cues), time.Since(started))

	fmt.Println("Creating video...")
	job := media.Job{
		Frames:     frames,
		Cues:       result.Cues,
		Asset:      asset,
		Volume:     cfg.Volume,
		Output:     cfg.Output,
		KeepFrames: cfg.KeepFrames,
	}
	if err := encoder.Produce(ctx, job); err != nil {
		if errors.Is(err, audio.ErrAssetExhausted) {
			log.Printf("asset %s holds %.2fs, %d cues need %.2fs", cfg.SoundAsset, asset.Duration(), len(result.Cues), float64(len(result.Cues))*cfg.CueDuration)
		}
		return err
	}

	manifest := storage.Manifest{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Seed:      cfg.Seed,
		FPS:       cfg.FPS,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Frames:    result.Frames,
		Duration:  result.Duration(cfg.FPS),
		Spawns:    result.Spawns,
		Output:    cfg.Output,
		Sound:     cfg.SoundAsset,
		Cues:      result.Cues,
	}
	if err := storage.WriteManifest(cfg.Output+".yaml", manifest); err != nil {
		return err
	}

	fmt.Println("Video creation complete!")
	return nil
}

func openStore(cfg *config.Config, runID uuid.UUID) (storage.FrameStore, error) {
	switch cfg.Store {
	case config.StoreGdata:
		s, err := storage.OpenGdataStore(cfg.AppName, runID)
		if err != nil {
			return nil, err
		}
		log.Printf("run %s: frames kept in gdata object %s of app %s", runID, s.Object(), cfg.AppName)
		return s, nil
	default:
		return storage.NewDirStore(cfg.FramesDir)
	}
}
