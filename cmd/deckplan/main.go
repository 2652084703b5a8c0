// Command deckplan turns free-form source material into a structured
// slide-deck outline by prompting an OpenAI-compatible LLM endpoint.
//
// Usage:
//
//	deckplan -topic "quarterly results" [-mode slide] [-design] [-o plan.md]
//	deckplan -file notes.txt -mode detail
//	deckplan -url example.com/article -o plan.txt
//
// Configuration is read from the environment (a .env file is honoured):
// DECKPLAN_API_KEY, DECKPLAN_MODEL, DECKPLAN_BASE_URL, DECKPLAN_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"deckplan/core/deck"
	"deckplan/core/export"
	"deckplan/core/session"
	"deckplan/providers/ai"
	"deckplan/providers/ai/openai"
	"deckplan/providers/observability/slogobs"
	"deckplan/providers/source"
)

func main() {
	var (
		topicFlag   = flag.String("topic", "", "topic or pasted source text to outline")
		fileFlag    = flag.String("file", "", "read seed text from a file ('-' for stdin)")
		urlFlag     = flag.String("url", "", "fetch seed text from a web page")
		modeFlag    = flag.String("mode", "slide", "generation mode: detail or slide")
		designFlag  = flag.Bool("design", false, "also run the design suggestion call")
		outFlag     = flag.String("o", "", "output file (.md or .txt, default: derived from topic)")
		modelFlag   = flag.String("model", os.Getenv("DECKPLAN_MODEL"), "model identifier")
		timeoutFlag = flag.Duration("timeout", 60*time.Second, "primary generation timeout")
		quietFlag   = flag.Bool("q", false, "suppress streaming progress output")
	)
	flag.Parse()

	if err := run(*topicFlag, *fileFlag, *urlFlag, *modeFlag, *outFlag, *modelFlag, *timeoutFlag, *designFlag, *quietFlag); err != nil {
		fmt.Fprintln(os.Stderr, "deckplan:", err)
		os.Exit(1)
	}
}

func run(topic, file, url, modeName, out, model string, timeout time.Duration, withDesign, quiet bool) error {
	mode := session.Mode(modeName)
	if mode != session.ModeDetail && mode != session.ModeSlide {
		return fmt.Errorf("unknown mode %q (want detail or slide)", modeName)
	}

	seed, err := loadSeed(topic, file, url)
	if err != nil {
		return err
	}

	observer := slogobs.New()

	opts := []session.Option{
		session.WithObserver(observer),
	}
	if model != "" {
		opts = append(opts, session.WithModel(model))
	}
	if !quiet {
		opts = append(opts, session.WithDeltaHandler(func(delta string) {
			fmt.Fprint(os.Stderr, delta)
		}))
	}

	s := session.New(openai.New(), opts...)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	d, err := s.GenerateOutline(ctx, seed, mode)
	if !quiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		if errors.Is(err, ai.ErrAPIKeyMissing) {
			return fmt.Errorf("API key not configured: set DECKPLAN_API_KEY in the environment or .env")
		}
		return err
	}

	// The design call is auxiliary: a failure is reported but the outline
	// stands on its own.
	if withDesign {
		if _, err := s.GenerateDesign(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, "deckplan: design suggestion unavailable:", err)
		}
		d = s.Deck()
	}

	rendered, path := renderDeck(d, out)
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("wrote %s (%d pages)\n", path, len(d.Pages))
	return nil
}

// loadSeed resolves the seed text from exactly one of the three sources.
func loadSeed(topic, file, url string) (string, error) {
	sources := 0
	for _, s := range []string{topic, file, url} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return "", fmt.Errorf("exactly one of -topic, -file, or -url is required")
	}

	switch {
	case topic != "":
		return topic, nil

	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading seed file: %w", err)
		}
		return string(data), nil

	default:
		fetched, err := source.Fetch(context.Background(), source.Input{URL: url})
		if err != nil {
			return "", fmt.Errorf("fetching seed page: %w", err)
		}
		return fetched.Markdown, nil
	}
}

// renderDeck picks the output format from the file extension (markdown by
// default) and derives a file name from the topic when none was given.
func renderDeck(d *deck.Deck, out string) (rendered, path string) {
	if out == "" {
		out = export.Filename(d.Topic, "md")
	}
	if strings.HasSuffix(out, ".txt") {
		return export.Text(d), out
	}
	return export.Markdown(d), out
}
