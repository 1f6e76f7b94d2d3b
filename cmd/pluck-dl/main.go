package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/YSSF8/pluck/internal/config"
	"github.com/YSSF8/pluck/internal/download"
	"github.com/YSSF8/pluck/internal/extract"
	pluckhttp "github.com/YSSF8/pluck/internal/http"
	"github.com/YSSF8/pluck/internal/library"
	"github.com/YSSF8/pluck/internal/model"
)

func main() {
	// Command line flags
	var (
		urlsFlag     = flag.String("url", "", "Page or media URL(s) to extract (comma-separated or newline-separated)")
		configFlag   = flag.String("config", "", "Path to config file")
		libraryFlag  = flag.String("library", "", "Library directory (overrides config)")
		categoryFlag = flag.String("category", "all", "Category filter: image, audio, video, or all")
		downloadFlag = flag.Bool("download", false, "Download the extracted media instead of only listing it")
		sizesFlag    = flag.Bool("sizes", false, "Probe and print file sizes when listing")
		yesFlag      = flag.Bool("yes", false, "Grant library permission without prompting")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// CLI mode - require URL
	if *urlsFlag == "" && flag.NArg() == 0 {
		fmt.Println("Pluck - Extract and download media from webpages")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  pluck-dl -url <URL> [options]")
		fmt.Println("  pluck-dl <URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: pluck-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *libraryFlag != "" {
		settings.LibraryPath = *libraryFlag
	}

	filter, err := parseCategoryFilter(*categoryFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Get URLs
	raw := *urlsFlag
	if raw == "" && flag.NArg() > 0 {
		raw = strings.Join(flag.Args(), "\n")
	}
	inputs := splitInputs(raw)
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no URLs given")
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := pluckhttp.NewClientWithTimeout(settings.UserAgent,
		time.Duration(settings.HTTPTimeoutSeconds)*time.Second)
	extractor := extract.NewExtractor(client)

	fmt.Println("🔍 Pluck")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	sets, failures := extractAll(ctx, extractor, inputs, settings.MaxConcurrentExtractions)
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "❌ %v\n", f)
	}
	if len(sets) == 0 {
		os.Exit(1)
	}

	sizer := func(string) string { return "" }
	if *sizesFlag {
		sizer = func(u string) string {
			size, err := client.GetFileSize(ctx, u)
			if err != nil {
				return "  (size unknown)"
			}
			return fmt.Sprintf("  (%.2f MB)", float64(size)/1024/1024)
		}
	}

	total := 0
	for _, input := range inputs {
		set, ok := sets[input]
		if !ok {
			continue
		}
		total += printSet(input, set, filter, sizer)
	}
	if total == 0 {
		fmt.Println("No media found.")
		return
	}

	if !*downloadFlag {
		return
	}

	// Download everything listed, one job at a time.
	gate := makeGate(settings.LibraryPath, *yesFlag)
	lib := library.New(settings.LibraryPath, library.Options{
		TagAudio:         settings.TagAudioAssets,
		WriteThumbnails:  settings.WriteImageThumbnails,
		ThumbnailMaxSize: settings.ThumbnailMaxSize,
		OnWarning: func(message string) {
			fmt.Println("⚠️  " + message)
		},
	})
	orch := download.NewOrchestrator(client, gate, lib, settings.TempPath, settings.AlbumRoot)

	fmt.Println("\n📥 Starting downloads...")
	fmt.Println()

	succeeded, failed := 0, 0
	for _, input := range inputs {
		set, ok := sets[input]
		if !ok {
			continue
		}
		for _, cat := range filter {
			for _, u := range set.URLs(cat) {
				if ctx.Err() != nil {
					fmt.Println("\nDownload cancelled.")
					os.Exit(130)
				}
				if runJob(ctx, orch, u, cat, *verboseFlag) {
					succeeded++
				} else {
					failed++
				}
			}
		}
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Saved %d file(s)", succeeded)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
	if failed > 0 {
		os.Exit(1)
	}
}

// extractAll runs the extractions concurrently, bounded by limit. Failed
// inputs are reported individually and do not abort the rest.
func extractAll(ctx context.Context, extractor *extract.Extractor, inputs []string, limit int) (map[string]*model.CategorizedMediaSet, []error) {
	if limit <= 0 {
		limit = 1
	}

	var mu sync.Mutex
	sets := make(map[string]*model.CategorizedMediaSet)
	var failures []error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			set, err := extractor.Extract(gctx, input)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return nil
			}
			sets[input] = set
			return nil
		})
	}
	g.Wait()

	return sets, failures
}

// runJob starts one download and drains its events until the terminal one.
func runJob(ctx context.Context, orch *download.Orchestrator, url string, cat model.Category, verbose bool) bool {
	if err := orch.Start(ctx, url, cat); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s: %v\n", url, err)
		return false
	}

	for event := range orch.Events() {
		printEvent(event, verbose)
		if event.Terminal() {
			return event.State == model.JobStateSucceeded
		}
	}
	return false
}

func printEvent(event download.Event, verbose bool) {
	if event.Message == "" {
		return
	}
	if event.Level == download.LevelVerbose && !verbose {
		return
	}

	prefix := ""
	switch event.Level {
	case download.LevelError:
		prefix = "❌ "
	case download.LevelWarning:
		prefix = "⚠️  "
	case download.LevelSuccess:
		prefix = "✅ "
	case download.LevelInfo:
		prefix = "ℹ️  "
	default:
		prefix = "   "
	}

	fmt.Println(prefix + event.Message)
}

// printSet lists the filtered media of one input and returns the count.
func printSet(input string, set *model.CategorizedMediaSet, filter []model.Category, sizer func(string) string) int {
	fmt.Printf("From %s:\n", input)
	count := 0
	for _, cat := range filter {
		urls := set.URLs(cat)
		if len(urls) == 0 {
			continue
		}
		fmt.Printf("  %s (%d):\n", cat.FolderName(), len(urls))
		for _, u := range urls {
			fmt.Printf("    %s%s\n", u, sizer(u))
		}
		count += len(urls)
	}
	if count == 0 {
		fmt.Println("  (no media)")
	}
	fmt.Println()
	return count
}

func parseCategoryFilter(value string) ([]model.Category, error) {
	if value == "" || value == "all" {
		return []model.Category{model.CategoryImage, model.CategoryAudio, model.CategoryVideo}, nil
	}

	seen := make(map[model.Category]struct{})
	var filter []model.Category
	for _, part := range strings.Split(value, ",") {
		cat := model.ParseCategory(part)
		if cat == model.CategoryUnclassified {
			return nil, fmt.Errorf("Error: unknown category %q (want image, audio, video, or all)", part)
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		filter = append(filter, cat)
	}
	sort.Slice(filter, func(i, j int) bool { return filter[i] < filter[j] })
	return filter, nil
}

func splitInputs(raw string) []string {
	var inputs []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			inputs = append(inputs, trimmed)
		}
	}
	return inputs
}

// makeGate builds the permission gate: -yes probes writability silently,
// otherwise the user is prompted on stdin.
func makeGate(libraryPath string, assumeYes bool) library.Gate {
	if assumeYes {
		return library.Writable(libraryPath)
	}
	reader := bufio.NewReader(os.Stdin)
	return library.Ask(func() bool {
		fmt.Printf("Allow pluck to save into %s? [y/N] ", libraryPath)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
