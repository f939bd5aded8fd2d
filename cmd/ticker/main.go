package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/config"
	"github.com/san-kum/ticker/internal/diff"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/export"
	"github.com/san-kum/ticker/internal/feed"
	"github.com/san-kum/ticker/internal/logging"
	"github.com/san-kum/ticker/internal/ticker"
	"github.com/san-kum/ticker/internal/viz"
)

var (
	configFile string
	verbose    bool
	alphabets  []string
	direction  string
	easingName string
	duration   time.Duration
	prefix     string
	suffix     string
	seed       int64
	steps      int
	at         float64
	outFile    string
	fontSize   float64
	preset     string
	theme      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ticker",
		Short:         "animated text tickers in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(logging.NewText(os.Stderr, slog.LevelDebug))
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	playCmd := &cobra.Command{
		Use:   "play [preset]",
		Short: "run a live ticker fed by a demo source",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the feed (0 uses the clock)")
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	diffCmd := &cobra.Command{
		Use:   "diff [old] [new]",
		Short: "show the column edit script between two values",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}

	pathCmd := &cobra.Command{
		Use:   "path [from] [to]",
		Short: "show the scroll path between two characters in every direction",
		Args:  cobra.ExactArgs(2),
		RunE:  runPath,
	}

	framesCmd := &cobra.Command{
		Use:   "frames [old] [new]",
		Short: "print sampled frames of a transition",
		Args:  cobra.ExactArgs(2),
		RunE:  runFrames,
	}
	framesCmd.Flags().IntVar(&steps, "steps", 10, "number of samples")

	easingCmd := &cobra.Command{
		Use:   "easing [name]",
		Short: "plot an easing function, or list them all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEasing,
	}

	exportCmd := &cobra.Command{
		Use:   "export [old] [new]",
		Short: "render one frame of a transition as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}
	exportCmd.Flags().Float64Var(&at, "at", 0.5, "linear progress of the frame in [0,1]")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().Float64Var(&fontSize, "font-size", 48, "font size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list demo presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	for _, c := range []*cobra.Command{playCmd, diffCmd, pathCmd, framesCmd, exportCmd} {
		c.Flags().StringSliceVarP(&alphabets, "alphabet", "a", nil,
			"alphabet preset ("+strings.Join(charlist.PresetNames(), ", ")+") or literal characters (repeatable)")
		c.Flags().StringVarP(&direction, "direction", "d", "any", "scroll direction: any, up, down")
		c.Flags().StringVarP(&easingName, "easing", "e", easing.Default, "easing function")
		c.Flags().DurationVar(&duration, "duration", config.DefaultDuration, "transition duration")
		c.Flags().StringVar(&prefix, "prefix", "", "static text before the value")
		c.Flags().StringVar(&suffix, "suffix", "", "static text after the value")
	}

	rootCmd.AddCommand(playCmd, diffCmd, pathCmd, framesCmd, easingCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers the config file over base, then applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command, base *config.Config) (*config.Config, error) {
	cfg := base
	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, base)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("alphabet") {
		cfg.Alphabets = alphabets
	}
	if flags.Changed("direction") {
		cfg.Direction = direction
	}
	if flags.Changed("easing") {
		cfg.Easing = easingName
	}
	if flags.Changed("duration") {
		cfg.Duration = duration
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefix
	}
	if flags.Changed("suffix") {
		cfg.Suffix = suffix
	}
	if flags.Changed("theme") {
		if !slices.Contains(viz.ThemeNames(), theme) {
			return nil, fmt.Errorf("unknown theme %q (available: %v)", theme, viz.ThemeNames())
		}
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	var base *config.Config
	title := "ticker"
	if len(args) == 1 {
		p, err := config.LookupPreset(args[0])
		if err != nil {
			return err
		}
		base, title = p, args[0]
	}
	cfg, err := loadConfig(cmd, base)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	src, err := feed.New(cfg.Feed, rng)
	if err != nil {
		return err
	}
	return viz.Run(title, cfg, src)
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		return err
	}

	source, target := []rune(args[0]), []rune(args[1])
	supported := charlist.UnionSupported(opts.Alphabets...)
	actions := diff.ComputeActions(source, target, supported)
	fmt.Printf("scrolling: %s\n\n", string(supported.Sorted()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COL\tFROM\tACTION\tTO")
	si, ti := 0, 0
	for i, a := range actions {
		from, to := "-", "-"
		switch a {
		case diff.Same:
			from, to = string(source[si]), string(target[ti])
			si++
			ti++
		case diff.Insert:
			to = string(target[ti])
			ti++
		case diff.Delete:
			from = string(source[si])
			si++
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, from, a, to)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c := diff.Count(actions)
	fmt.Printf("\nsame: %d  insert: %d  delete: %d\n", c.Same, c.Insert, c.Delete)
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	from, err := singleRune(args[0])
	if err != nil {
		return err
	}
	to, err := singleRune(args[1])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHABET\tDIRECTION\tSTART\tEND\tSTEPS\tGLYPHS")
	for i, l := range charlist.Resolve(cfg.Alphabets...) {
		for _, dir := range charlist.Directions() {
			p, ok := l.Path(from, to, dir)
			if !ok {
				fmt.Fprintf(w, "%s\t%s\t-\t-\t-\tunsupported\n", cfg.Alphabets[i], dir)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", cfg.Alphabets[i], dir, p.Start, p.End, p.Steps(), pathGlyphs(l.Chars(), p))
		}
	}
	return w.Flush()
}

func singleRune(s string) (rune, error) {
	if s == "" || s == "empty" {
		return charlist.Empty, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r[0], nil
}

func pathGlyphs(chars []rune, p charlist.Path) string {
	step := 1
	if p.End < p.Start {
		step = -1
	}
	var sb strings.Builder
	for i := p.Start; ; i += step {
		switch {
		case i < 0 || i >= len(chars):
			sb.WriteRune('…')
		case chars[i] == charlist.Empty:
			sb.WriteRune('·')
		default:
			sb.WriteRune(chars[i])
		}
		if i == p.End {
			break
		}
	}
	return sb.String()
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		return err
	}
	if steps < 1 {
		steps = 1
	}

	t0 := time.Now()
	tk := ticker.New(args[0], opts)
	tk.SetValue(args[1], t0)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tPROGRESS\tWIDTH\tABOVE\tROW\tBELOW")
	for i := 0; i <= steps; i++ {
		elapsed := time.Duration(float64(cfg.Duration) * float64(i) / float64(steps))
		f := tk.Tick(t0.Add(elapsed))
		lines := viz.Rasterize(f).Lines()
		fmt.Fprintf(w, "%v\t%.3f\t%.2fem\t%s\t%s\t%s\n",
			elapsed.Round(time.Millisecond), f.Progress, f.Width(), lines[0], lines[1], lines[2])
	}
	return w.Flush()
}

func runEasing(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCURVE")
		for _, name := range easing.Names() {
			fn, _ := easing.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\n", name, viz.Sparkline(easing.Sample(fn, 40), 40))
		}
		return w.Flush()
	}

	fn, err := easing.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(easing.Sample(fn, 60),
		asciigraph.Height(12), asciigraph.Width(60), asciigraph.Caption(args[0])))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		return err
	}

	t0 := time.Now()
	tk := ticker.New(args[0], opts)
	tk.SetValue(args[1], t0)
	p := min(max(at, 0), 1)
	f := tk.Tick(t0.Add(time.Duration(float64(cfg.Duration) * p)))

	svgOpts := export.DefaultSVGOptions()
	svgOpts.FontSize = fontSize
	svg := export.FrameToSVG(f, svgOpts)

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALPHABETS\tDIRECTION\tEASING\tDURATION\tFEED")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%s\n",
			name, strings.Join(p.Alphabets, ","), p.Direction, p.Easing, p.Duration, p.Feed.Kind)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHABET	CHARACTERS")
	for _, name := range charlist.PresetNames() {
		chars, _ := charlist.Preset(name)
		fmt.Fprintf(w, "%s\t%s\n", name, chars)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "ticker.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return err
		}
		cfg = p
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
