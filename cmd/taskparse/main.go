package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"todo-me/config"
	"todo-me/internal/catalog"
	"todo-me/internal/parse"
	"todo-me/internal/parse/usecase"
	"todo-me/pkg/dateparse"
	"todo-me/pkg/log"
)

// taskparse parses one natural language task description from its arguments
// (or stdin) and prints the structured result as JSON.
func main() {
	nowFlag := flag.String("now", "", "reference instant as RFC3339 (default: current time)")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			logger.Fatalf(ctx, "Failed to read stdin: %v", readErr)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	// The reference instant is injected so runs are reproducible; only this
	// boundary ever touches the wall clock.
	now := time.Now()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			logger.Fatalf(ctx, "Invalid -now value %q: %v", *nowFlag, err)
		}
	}

	// 3. Parser settings
	format, err := dateparse.ParseFormat(cfg.Parser.DateFormat)
	if err != nil {
		logger.Warnf(ctx, "Invalid date format %q, falling back to MDY: %v", cfg.Parser.DateFormat, err)
	}

	dates, err := dateparse.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		dates, _ = dateparse.NewParser("UTC")
	}

	input := parse.Input{
		Text: text,
		Now:  now,
		Settings: parse.Settings{
			DateFormat:  format,
			StartOfWeek: time.Weekday(cfg.Parser.StartOfWeek),
		},
	}

	// 4. Project/tag catalog (optional)
	if cfg.Catalog.Path != "" {
		cat, catErr := catalog.LoadFile(cfg.Catalog.Path)
		if catErr != nil {
			logger.Fatalf(ctx, "Failed to load catalog: %v", catErr)
		}
		ttl, ttlErr := time.ParseDuration(cfg.Catalog.CacheTTL)
		if ttlErr != nil {
			ttl = 5 * time.Minute
		}
		input.Projects = catalog.NewCachedProjects(cat, cfg.Catalog.CacheSize, ttl)
		input.Tags = catalog.NewCachedTags(cat, cfg.Catalog.CacheSize, ttl)
	}

	// 5. Parse
	uc := usecase.New(logger, dates, cfg.Parser.MaxInputLength)
	result, err := uc.Parse(ctx, input)
	if err != nil {
		logger.Errorf(ctx, "Parse failed: %v", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}
