// chatlint validates chat-completion payload files against the chatwire
// data model.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/tnglemongrass/chatwire"
	"github.com/tnglemongrass/chatwire/internal/config"
	"github.com/tnglemongrass/chatwire/internal/lint"
	"github.com/tnglemongrass/chatwire/internal/render"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}

	if cfg.Interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(cfg.Files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: chatlint [--kind KIND] [--format FORMAT] FILE...")
		os.Exit(2)
	}

	results := make([]lint.Result, 0, len(cfg.Files))
	for _, path := range cfg.Files {
		results = append(results, lint.CheckFile(path, chatwire.Kind(cfg.Kind)))
	}

	if err := report(cfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		if !r.OK() {
			os.Exit(1)
		}
	}
}

func report(cfg *config.Config, results []lint.Result) error {
	if cfg.Format == "markdown" {
		r, err := render.NewRenderer(os.Stdout)
		if err != nil {
			return err
		}
		return r.Render(lint.MarkdownReport(results))
	}
	fmt.Print(lint.TextReport(results))
	return nil
}

func runInteractive(cfg *config.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chatlint> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Paste one JSON payload per line. Ctrl-D to exit.")
	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		r := lint.Check(fmt.Sprintf("input %d", n), []byte(line), chatwire.Kind(cfg.Kind))
		fmt.Print(lint.TextReport([]lint.Result{r}))
	}
}
