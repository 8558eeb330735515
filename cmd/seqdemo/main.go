// Command seqdemo evaluates a handful of seqkit pipelines and logs the
// results. Configuration comes from cmd/seqdemo/config.yml, .env and SEQDEMO_*
// environment variables, e.g. SEQDEMO_DEMO__LIMIT=20.
package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pipe"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

// Config is the seqdemo configuration.
type Config struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	Demo              DemoConfig `yaml:"demo" mapstructure:"demo"`
}

// DemoConfig bounds the example pipelines.
type DemoConfig struct {
	Limit int      `yaml:"limit" mapstructure:"limit" validate:"gte=1,lte=100000"`
	Words []string `yaml:"words" mapstructure:"words" validate:"required,min=1"`
	RunID string   `yaml:"run_id" mapstructure:"run_id" validate:"omitempty,uuid"`
}

var defaults = map[string]any{
	"name":        "seqdemo",
	"demo.limit":  10,
	"demo.words":  []string{"fold", "map", "scan", "zip", "head"},
	"environment": "development",
}

// Component logger names.
const (
	componentPipeline = "pipeline"
	componentTrace    = "trace"
)

func main() {
	configFile := flag.String("config", "", "path to the YAML config file (default: search standard locations)")
	envFile := flag.String("env-file", "", "path to a .env file (default: search standard locations)")
	flag.Parse()

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	if err := run(context.Background(), opts...); err != nil {
		fmt.Fprintf(os.Stderr, "seqdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts ...config.LoaderOption) error {
	cfg, err := loadConfig(opts...)
	if err != nil {
		return err
	}

	runID := uuid.New()
	if cfg.Demo.RunID != "" {
		if runID, err = validation.ValidateUUID("demo.run_id", cfg.Demo.RunID); err != nil {
			return err
		}
	}

	logger.Init(cfg.Logging)
	logger.SetGlobalLogger(logger.GetGlobalLogger().
		WithFields(logger.Fields(logger.FieldRunID, runID.String())))
	logger.RegisterDefaults(cfg.Name, componentPipeline, componentTrace)

	log := logger.Get(cfg.Name)
	log.Info("starting", version.Get().Fields())

	start := time.Now()
	if err := evaluate(ctx, cfg.Demo); err != nil {
		log.WithError(err).Error("evaluation failed", logger.Fields(logger.FieldOperation, "evaluate"))
		return err
	}
	log.Info("finished", logger.DurationFields("evaluate", time.Since(start)))
	return nil
}

func loadConfig(opts ...config.LoaderOption) (*Config, error) {
	opts = append([]config.LoaderOption{config.WithDefaults(defaults), config.WithEnvPrefix("SEQDEMO")}, opts...)

	var cfg Config
	if err := config.Load("seqdemo", &cfg, opts...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validation.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validateWords(cfg.Demo.Words); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// validateWords applies the per-element rules the struct tags don't cover.
func validateWords(words []string) error {
	v := validation.New()
	for i, w := range words {
		field := fmt.Sprintf("demo.words[%d]", i)
		v.Required(field, w)
		v.Custom(!strings.ContainsAny(w, " \t\n"), field, "must be a single word")
	}
	return v.Validate()
}

func evaluate(ctx context.Context, demo DemoConfig) error {
	log := logger.Get(componentPipeline)
	report := func(op string, result any) {
		log.Info("evaluated", logger.Fields(logger.FieldOperation, op, logger.FieldResult, result))
	}

	naturals := seq.InitInfinite(func(i int) int { return i })
	evens := seq.Filter(func(n int) bool { return n%2 == 0 })
	squares := seq.Map(func(n int) int { return n * n })
	sum := seq.Fold(func(acc, n int) int { return acc + n }, 0)

	report("pipe", pipe.Pipe4(naturals, seq.Take[int](demo.Limit), evens, squares, sum))

	stages := []func(iter.Seq[int]) iter.Seq[int]{seq.Take[int](demo.Limit)}
	if trace := logger.Get(componentTrace); trace.Enabled(zerolog.DebugLevel) {
		stages = append(stages, seq.Trace[int](trace, "naturals"))
	}
	stages = append(stages, evens)
	report("map_filter", seq.Of(naturals).Pipe(stages...).
		Map(func(n int) int { return n * n }).
		ToSlice())

	running := seq.Scan(func(acc, n int) int { return acc + n }, 0)
	report("scan", seq.ToSlice(running(seq.Take[int](5)(seq.InitInfinite(func(i int) int { return i + 1 })))))

	words := seq.OfSlice(demo.Words)
	indexed := seq.Zip[string, int](words.All())(naturals)
	report("zip", seq.ToSlice(seq.Map(func(p seq.Pair[string, int]) string {
		return fmt.Sprintf("%d:%s", p.Second, p.First)
	})(indexed)))

	joined := seq.FoldBack(func(w string, acc []string) []string {
		return append([]string{strings.ToUpper(w)}, acc...)
	}, words.All())
	report("fold_back", joined(nil))

	first, err := seq.Head(naturals)
	if err != nil {
		return err
	}
	report("head", first)

	shortest, err := seq.MinBy(func(w string) int { return len(w) })(words.All())
	if err != nil {
		return err
	}
	report("min_by", shortest)

	longest, err := seq.Max(seq.Map(func(w string) int { return len(w) })(words.All()))
	if err != nil {
		return err
	}
	report("max", longest)

	// Closable producers release their resources once consumption stops.
	src := seq.FromIterator(ctx, seq.SliceIterator(demo.Words))
	defer src.Close()
	letters, err := seq.TryFold(func(acc int, w string) (int, error) {
		if w == "" {
			return acc, errors.InvalidInput("demo.words", "empty word")
		}
		return acc + len(w), nil
	}, 0)(src.Seq().All())
	if err != nil {
		return err
	}
	if err := src.Err(); err != nil {
		return err
	}
	report("try_fold", letters)

	long, err := seq.Head(seq.Filter(func(w string) bool { return len(w) > 8 })(words.All()))
	switch {
	case errors.HasCode(err, errors.ErrCodeEmptySequence):
		log.Warn("no long words", logger.ErrorFields("head", err))
	case err != nil:
		return err
	default:
		report("first_long_word", long)
	}
	return nil
}
