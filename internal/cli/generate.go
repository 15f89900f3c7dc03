package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordspin/pkg/config"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output       string   // output file path (or base path for multiple formats)
	formats      []string // output formats: "svg", "png", "json"
	width        float64  // canvas width in pixels
	height       float64  // canvas height in pixels
	seed         uint64   // random seed for reproducible layouts
	maxWords     int      // cap on ranked words kept for layout
	theme        string   // color theme name
	font         string   // TrueType font path for measurement and PNG output
	noRotate     bool     // force every word horizontal
	monochrome   bool     // collapse the palette to greys
	stopWords    []string // extra stop words on top of the built-in list
	configPath   string   // explicit config file path
	noCache      bool     // disable the artifact cache
	refresh      bool     // recompute even when the cache has the artifact
	granularity  float64  // angular probe density tuning
	distanceStep float64  // ring growth tuning
	carryDivisor int      // scan carry-over tuning (config file only)
	rotateProb   float64  // vertical rendering probability (config file only)
}

// generateCommand creates the generate command, the main entry point
// of the CLI.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr, stopWordsStr string
	opts := generateOpts{
		width:    config.DefaultWidth,
		height:   config.DefaultHeight,
		seed:     uint64(config.DefaultSeed),
		maxWords: config.DefaultMaxWords,
		theme:    pipeline.DefaultTheme,
	}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate a word cloud from a text file or stdin",
		Long: `Generate reads plain text, counts word frequencies, and renders a
word cloud. Pass a file path, or pipe text on stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			opts.formats = parseFormats(formatsStr)
			if stopWordsStr != "" {
				opts.stopWords = strings.Split(stopWordsStr, ",")
			}
			return c.runGenerate(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for reproducible layouts")
	cmd.Flags().IntVar(&opts.maxWords, "max-words", opts.maxWords, "maximum number of words to place")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "color theme (see 'wordspin themes')")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType font file (default: system sans-serif)")
	cmd.Flags().BoolVar(&opts.noRotate, "no-rotate", false, "keep every word horizontal")
	cmd.Flags().BoolVar(&opts.monochrome, "monochrome", false, "render in shades of grey")
	cmd.Flags().StringVar(&stopWordsStr, "stop-words", "", "extra stop words (comma-separated)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().Float64Var(&opts.granularity, "granularity", 0, "spiral probe density (advanced)")
	cmd.Flags().Float64Var(&opts.distanceStep, "distance-step", 0, "spiral growth step (advanced)")

	return cmd
}

// runGenerate executes the full pipeline and writes the artifacts.
func (c *CLI) runGenerate(cmd *cobra.Command, input string, opts *generateOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg, opts)

	text, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipelineOpts := pipeline.Options{
		Text:           text,
		MaxWords:       opts.maxWords,
		ExtraStopWords: opts.stopWords,
		Width:          opts.width,
		Height:         opts.height,
		Seed:           opts.seed,
		Theme:          opts.theme,
		Monochrome:     opts.monochrome,
		NoRotate:       opts.noRotate,
		RotateProb:     opts.rotateProb,
		Granularity:    opts.granularity,
		DistanceStep:   opts.distanceStep,
		CarryDivisor:   opts.carryDivisor,
		Formats:        opts.formats,
		Refresh:        opts.refresh,
		FontPath:       opts.font,
		Logger:         c.Logger,
	}

	spinner := newSpinnerWithContext(cmd.Context(), "Generating word cloud...")
	spinner.Start()
	result, err := runner.Execute(cmd.Context(), pipelineOpts)
	spinner.Stop()
	if err != nil {
		return err
	}

	base := outputBase(opts.output, input)
	single := len(opts.formats) == 1
	for _, format := range opts.formats {
		path := artifactPath(base, format, single, opts.output)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	printSuccess("Generated word cloud")
	printStats(result.Report.UniqueWords, result.Report.PlacedWords, result.CacheInfo.ArtifactHit)
	return nil
}

// applyConfig fills in config-file values for flags the user did not
// set explicitly. Flags win over the file; the file wins over defaults.
func applyConfig(cmd *cobra.Command, cfg *config.Config, opts *generateOpts) {
	f := cmd.Flags()
	if !f.Changed("width") {
		opts.width = float64(cfg.Canvas.Width)
	}
	if !f.Changed("height") {
		opts.height = float64(cfg.Canvas.Height)
	}
	if !f.Changed("seed") && cfg.Engine.Seed > 0 {
		opts.seed = uint64(cfg.Engine.Seed)
	}
	if !f.Changed("max-words") {
		opts.maxWords = cfg.Words.MaxWords
	}
	if !f.Changed("theme") && cfg.Style.Theme != "" {
		opts.theme = cfg.Style.Theme
	}
	if !f.Changed("font") && cfg.Style.FontPath != "" {
		opts.font = cfg.Style.FontPath
	}
	if !f.Changed("no-rotate") {
		opts.noRotate = cfg.Style.NoRotate
	}
	if !f.Changed("monochrome") {
		opts.monochrome = cfg.Style.Monochrome
	}
	if !f.Changed("no-cache") {
		opts.noCache = cfg.Cache.Disabled
	}
	if !f.Changed("granularity") && cfg.Engine.Granularity > 0 {
		opts.granularity = float64(cfg.Engine.Granularity)
	}
	if !f.Changed("distance-step") && cfg.Engine.DistanceStep > 0 {
		opts.distanceStep = float64(cfg.Engine.DistanceStep)
	}
	if cfg.Engine.CarryDivisor > 0 {
		opts.carryDivisor = cfg.Engine.CarryDivisor
	}
	if cfg.Engine.RotateProb > 0 {
		opts.rotateProb = cfg.Engine.RotateProb
	}
	opts.stopWords = append(opts.stopWords, cfg.Words.StopWords...)
}
