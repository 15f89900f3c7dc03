package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/pipeline"
	"github.com/matzehuels/wordspin/pkg/text"
)

// statsOpts holds the command-line flags for the stats command.
type statsOpts struct {
	top       int      // number of words to display
	format    string   // output format: "table" or "markdown"
	output    string   // output file for markdown (empty: stdout)
	stopWords []string // extra stop words
	width     float64  // canvas width used for the size column
	height    float64  // canvas height used for the size column
}

// statsCommand creates the stats command for inspecting word
// frequencies without rendering anything.
func (c *CLI) statsCommand() *cobra.Command {
	var stopWordsStr string
	opts := statsOpts{
		top:    20,
		format: "table",
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show word frequencies and computed font sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if stopWordsStr != "" {
				opts.stopWords = strings.Split(stopWordsStr, ",")
			}
			if opts.format != "table" && opts.format != "markdown" {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown stats format %q (table, markdown)", opts.format)
			}
			return c.runStats(input, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.top, "top", "n", opts.top, "number of words to show")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), markdown")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write markdown to file instead of stdout")
	cmd.Flags().StringVar(&stopWordsStr, "stop-words", "", "extra stop words (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width for the size column")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height for the size column")

	return cmd
}

// runStats counts the input and prints the frequency table.
func (c *CLI) runStats(input string, opts *statsOpts) error {
	raw, err := readInput(input)
	if err != nil {
		return err
	}

	tokens := text.Tokenize(raw, &text.TokenizeOptions{ExtraStopWords: opts.stopWords})
	tbl := text.Count(tokens)
	entries := tbl.Rank(opts.top)
	if len(entries) == 0 {
		printWarning("No words left after filtering")
		return nil
	}

	canvas := cloud.Canvas{Width: opts.width, Height: opts.height}
	scale := cloud.FontScale(canvas, entries)

	if opts.format == "markdown" {
		return writeMarkdownStats(entries, tbl.Len(), len(tokens), canvas, scale, opts.output)
	}

	printTableStats(entries, tbl.Len(), len(tokens), scale)
	printNewline()
	printNextStep("Render it", "wordspin generate "+inputHint(input))
	return nil
}

// printTableStats renders the frequency table to the terminal.
func printTableStats(entries []text.Entry, unique, tokens int, scale float64) {
	fmt.Println(StyleTitle.Render("Word Frequencies"))
	printDetail("%d tokens, %d unique words", tokens, unique)
	printNewline()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "WORD", "COUNT", "SIZE")

	for i, e := range entries {
		size := sizeLabel(e.Count, scale)
		t.Row(strconv.Itoa(i+1), e.Word, strconv.Itoa(e.Count), size)
	}
	fmt.Println(t.Render())
}

// writeMarkdownStats exports the frequency table as a markdown report.
func writeMarkdownStats(entries []text.Entry, unique, tokens int, canvas cloud.Canvas, scale float64, output string) error {
	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	md := markdown.NewMarkdown(out)
	md.H1("Word Frequency Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Tokens", strconv.Itoa(tokens)},
			{"Unique words", strconv.Itoa(unique)},
			{"Canvas", fmt.Sprintf("%.0fx%.0f", canvas.Width, canvas.Height)},
			{"Font scale", strconv.FormatFloat(scale, 'f', 3, 64)},
		},
	})
	md.PlainText("")

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Word,
			strconv.Itoa(e.Count),
			sizeLabel(e.Count, scale),
		})
	}
	md.H2("Top Words")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count", "Size"},
		Rows:   rows,
	})
	if err := md.Build(); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Wrote %s", output)
	}
	return nil
}

// sizeLabel formats the pixel size a word would be rendered at, or a
// dash when it falls below the minimum.
func sizeLabel(count int, scale float64) string {
	size := int(float64(count)*scale + 0.5)
	if size < cloud.MinFontSize {
		return "-"
	}
	return strconv.Itoa(size) + "px"
}

// inputHint echoes the input argument for suggested follow-up commands.
func inputHint(input string) string {
	if input == "" || input == "-" {
		return "-"
	}
	return input
}
