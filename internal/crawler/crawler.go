package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

var (
	headlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bd93f9")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50fa7b")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1fa8c")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")).
			Bold(true)

	runStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff79c6")).
			Bold(true)
)

type crawler struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	progress bool
}

func newCrawler(stdout, stderr io.Writer, logger *slog.Logger, progress bool) *crawler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &crawler{
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		progress: progress,
	}
}

// Run scans inputDir for simulation runs and writes the consolidated report
// to outputPath. The first run that cannot be read aborts the crawl; blocks
// written before it stay in the report.
func Run(ctx context.Context, inputDir, outputPath string, progress bool, logger *slog.Logger) error {
	return newCrawler(os.Stdout, os.Stderr, logger, progress).run(ctx, inputDir, outputPath)
}

func (c *crawler) run(ctx context.Context, inputDir, outputPath string) (err error) {
	c.outln(headlineStyle.Render("Simulation Metadata Crawler"))
	c.outln(infoStyle.Render("Input Directory: ") + inputDir)
	c.outln(infoStyle.Render("Report: ") + outputPath)
	c.outln("")

	report, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if closeErr := report.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close report: %w", closeErr))
		}
	}()

	runs, err := listRunDirs(inputDir)
	if err != nil {
		return err
	}
	c.logger.Info("scanning simulation runs", "input_dir", inputDir, "runs", len(runs))
	if len(runs) == 0 {
		c.outln(warnStyle.Render("No simulation runs found."))
		return nil
	}

	c.outln(infoStyle.Render(fmt.Sprintf("Found %d simulation runs under %s", len(runs), inputDir)))
	c.outln("")

	bar := c.newProgressBar(len(runs))
	results := make([]RunResult, 0, len(runs))

	for _, name := range runs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("crawl interrupted before %s: %w", name, err)
		}

		res, runErr := c.processRun(inputDir, name, report)
		results = append(results, res)
		if bar != nil {
			if err := bar.Add(1); err != nil {
				c.logger.Debug("progress bar update failed", "error", err)
			}
		}
		if runErr != nil {
			c.outln("")
			c.printSummaryTable(results)
			c.logger.Error("crawl aborted", "run", name, "error", runErr)
			return runErr
		}
	}

	c.outln("")
	c.outln(headlineStyle.Render("Summary"))
	c.outln("")
	c.printSummaryTable(results)
	c.outln(mutedStyle.Render("Report written to " + outputPath))
	c.logger.Info("crawl finished", "runs", len(results), "report", outputPath)

	return nil
}

func (c *crawler) newProgressBar(total int) *progressbar.ProgressBar {
	if !c.progress {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Crawling runs…"),
		progressbar.OptionSetWriter(c.stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (c *crawler) outln(s string) {
	if _, err := fmt.Fprintln(c.stdout, s); err != nil {
		c.logger.Debug("stdout write failed", "error", err)
	}
}

func (c *crawler) errln(args ...any) {
	if _, err := fmt.Fprintln(c.stderr, args...); err != nil {
		c.logger.Debug("stderr write failed", "error", err)
	}
}

func (c *crawler) runInfof(name, format string, args ...any) {
	c.outln("  " + runStyle.Render(name) + " " + successStyle.Render("✓") + " " +
		mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *crawler) runErrorf(name, format string, args ...any) {
	c.outln("  " + runStyle.Render(name) + " " + dangerStyle.Render("✗") + " " +
		fmt.Sprintf(format, args...))
}
