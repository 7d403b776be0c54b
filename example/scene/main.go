// Command scene evaluates the body pairs listed in a YAML scene and logs every contact.
//
// Usage:
//
//	go run ./example/scene -scene example/scene/scene.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/akmonengine/collide"
	"go.uber.org/zap"
)

var scenePath = flag.String("scene", "scene.yaml", "path to the YAML scene")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *scenePath); err != nil {
		fmt.Fprintln(os.Stderr, "scene:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scene, err := LoadScene(f)
	if err != nil {
		return err
	}

	logger, err := collide.NewLogger(scene.Config.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	detector := collide.NewDetector(scene.Config, logger)

	results, err := detector.CollidePairs(ctx, scene.Pairs)
	if err != nil {
		return err
	}

	for i, result := range results {
		logger.Info("pair", pairFields(scene.Names[i], result)...)
	}

	return nil
}

// pairFields describes one result. Colliding pairs also carry the translation that
// moves b out of a.
func pairFields(names [2]string, result collide.Result) []zap.Field {
	fields := []zap.Field{
		zap.String("a", names[0]),
		zap.String("b", names[1]),
		zap.Bool("colliding", result.Colliding()),
	}
	if !result.Colliding() {
		return fields
	}

	translation := result.Info.Translation()
	return append(fields,
		zap.Float32s("normal", result.Info.Normal[:]),
		zap.Float32("depth", result.Info.Depth),
		zap.Float32s("translation", translation[:]),
	)
}
