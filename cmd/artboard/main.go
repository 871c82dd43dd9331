// Command artboard renders a YAML artboard project to a PNG file.
//
// Retouch strokes listed in the project are replayed on their image layers
// before rendering.
//
//	artboard -project poster.yaml -output poster.png -zoom 2
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/artboard"
)

func main() {
	var (
		project  = flag.String("project", "artboard.yaml", "project file")
		output   = flag.String("output", "artboard.png", "output file")
		zoom     = flag.Float64("zoom", 1, "output scale")
		logLevel = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
		timeout  = flag.Duration("timeout", 30*time.Second, "image decode timeout")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level %q", *logLevel)
	}
	artboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := run(ctx, *project, *output, *zoom)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Rendered %s to %s (%d layers, %d placeholders, %v)\n",
		*project, *output, stats.Layers, stats.Placeholders, stats.Duration)
}

func run(ctx context.Context, projectPath, output string, zoom float64) (artboard.RenderStats, error) {
	p, err := LoadProject(projectPath)
	if err != nil {
		return artboard.RenderStats{}, err
	}
	tree, err := p.Tree()
	if err != nil {
		return artboard.RenderStats{}, err
	}
	assets := p.AssetStore()

	c := artboard.NewCompositor(
		artboard.WithAssetStore(assets),
		artboard.WithFetcher(fileFetcher(p.dir)),
	)
	defer c.Close()

	if err := replay(ctx, p.Retouch, tree, assets, c.Images()); err != nil {
		return artboard.RenderStats{}, err
	}
	if err := awaitImages(ctx, tree, assets, c.Images()); err != nil {
		return artboard.RenderStats{}, err
	}

	if zoom <= 0 {
		zoom = 1
	}
	w := int(math.Ceil(float64(tree.Artboard.Width) * zoom))
	h := int(math.Ceil(float64(tree.Artboard.Height) * zoom))
	surface := artboard.NewPixmap(w, h)

	s := artboard.NewScheduler(c, tree, surface)
	s.SetViewport(artboard.Viewport{Zoom: zoom})
	stats, _ := s.Frame()
	if stats.Failures > 0 {
		artboard.Logger().Warn("artboard: layers failed to render", "count", stats.Failures)
	}
	return stats, surface.SavePNG(output)
}

// awaitImages decodes every image the tree references so the frame is
// drawn without placeholders. Failed decodes are logged and left to the
// placeholder.
func awaitImages(ctx context.Context, tree *artboard.Tree, assets artboard.AssetStore, images *artboard.ImageCache) error {
	for _, id := range tree.IDs() {
		l, _ := tree.Layer(id)
		img, ok := l.(*artboard.ImageLayer)
		if !ok {
			continue
		}
		a, ok := assets.Asset(img.AssetID)
		if !ok {
			continue
		}
		if _, err := decode(ctx, images, a.Source); err != nil {
			if ctx.Err() != nil {
				return err
			}
			artboard.Logger().Warn("artboard: image unavailable", "layer", id, "err", err)
		}
	}
	return nil
}

// fileFetcher reads sources as paths relative to dir.
func fileFetcher(dir string) artboard.FetcherFunc {
	return func(_ context.Context, source string) ([]byte, error) {
		path := strings.TrimPrefix(source, "file://")
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		return data, nil
	}
}
