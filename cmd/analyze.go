package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/helmcode/fmea-ai/pkg/analyzer"
	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/helmcode/fmea-ai/pkg/formatter"
	"github.com/helmcode/fmea-ai/pkg/llm"
	"github.com/helmcode/fmea-ai/pkg/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	useExample   bool
	outputDir    string
	jsonOnly     bool
	noSave       bool
	provider     string
	model        string
	maxTokens    int
	timeout      time.Duration
	outputFormat string
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [INPUT_FILE]",
		Short: "Run an AI-assisted Design FMEA",
		Long: `Run a Design Failure Mode and Effects Analysis (IEC 60812:2018) on a system
described by an input file, piped JSON, or the built-in example.

Examples:
  # Analyze a system described in a JSON or YAML file
  fmea-ai analyze brake_system.json
  fmea-ai analyze brake_system.yaml --output-dir ./reports

  # Pipe the input JSON
  cat brake_system.json | fmea-ai analyze

  # Try the built-in automotive brake system example
  fmea-ai analyze --example

  # JSON output only, no HTML report
  fmea-ai analyze brake_system.json --json-only`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().BoolVar(&useExample, "example", false, "Run the built-in automotive brake system example")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory to write fmea_output.json and fmea_report.html")
	cmd.Flags().BoolVar(&jsonOnly, "json-only", false, "Skip HTML report rendering")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not write any output files")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (claude, openai); defaults to LLM_PROVIDER or claude")
	cmd.Flags().StringVar(&model, "model", "", "Model override for the selected provider")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 8096, "Maximum output tokens for the model call")
	cmd.Flags().DurationVar(&timeout, "timeout", 120*time.Second, "Timeout for the model call")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "Stdout format (json, yaml, human)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// When stdin is piped we are being driven by another program: read input
	// from the pipe and default to lean output (no file writes, no HTML).
	pipeMode := !isatty.IsTerminal(os.Stdin.Fd())

	// Resolve the model client first so a missing API key fails before any
	// input parsing or network use.
	aiAnalyzer, err := analyzer.NewFromEnv(provider, model, llm.Options{
		MaxTokens: maxTokens,
		Timeout:   timeout,
	})
	if err != nil {
		return err
	}

	var req fmea.AnalysisRequest
	switch {
	case len(args) == 1 && !useExample:
		req, err = loadRequestFromFile(args[0])
		if err != nil {
			return err
		}
		printInfo(fmt.Sprintf("Loaded input from %s", args[0]))
	case !useExample && pipeMode:
		req, err = loadRequestFromReader(os.Stdin)
		if err != nil {
			return err
		}
		printInfo("Loaded input from stdin")
	default:
		req = exampleRequest
		printInfo("Using built-in example: Automotive Disc Brake System")
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Analyzing %d component(s) with AI...", len(req.Components))
	s.Start()

	resp, err := aiAnalyzer.Run(cmd.Context(), req)
	if err != nil {
		s.Stop()
		return fmt.Errorf("FMEA analysis failed: %w", err)
	}
	s.Stop()
	printSuccess(fmt.Sprintf("Validated %d failure mode entries", resp.Summary.TotalEntries))

	skipHTML := jsonOnly || (pipeMode && outputDir == ".")
	if !skipHTML {
		html, err := report.RenderHTML(resp)
		if err != nil {
			return err
		}
		resp.HTMLReport = html
		printSuccess("HTML report rendered")
	}

	// Keep a potentially huge html_report out of the terminal output.
	display := *resp
	display.HTMLReport = ""
	if err := formatter.DisplayResults(&display, outputFormat); err != nil {
		return err
	}

	shouldSave := !noSave && !(pipeMode && outputDir == ".")
	if shouldSave {
		if err := saveOutputs(resp, outputDir); err != nil {
			return err
		}
	}
	return nil
}

// saveOutputs writes fmea_output.json (without the embedded report) and, when
// rendered, fmea_report.html under dir.
func saveOutputs(resp *fmea.AnalysisResponse, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	saved := *resp
	saved.HTMLReport = ""
	data, err := json.MarshalIndent(&saved, "", "  ")
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(dir, "fmea_output.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write JSON output: %w", err)
	}
	printSuccess(fmt.Sprintf("JSON saved: %s", jsonPath))

	if resp.HTMLReport != "" {
		htmlPath := filepath.Join(dir, "fmea_report.html")
		if err := os.WriteFile(htmlPath, []byte(resp.HTMLReport), 0o644); err != nil {
			return fmt.Errorf("write HTML report: %w", err)
		}
		printSuccess(fmt.Sprintf("HTML report saved: %s", htmlPath))
	}
	return nil
}

func printInfo(msg string) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(os.Stderr, "• %s\n", msg)
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(os.Stderr, "✓ %s\n", msg)
}
