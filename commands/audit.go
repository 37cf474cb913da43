package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/smartguard/audit"
	"github.com/pivotal-cf/smartguard/cmdflag"
	"github.com/pivotal-cf/smartguard/config"
	"github.com/pivotal-cf/smartguard/dataset"
	"github.com/pivotal-cf/smartguard/lgctx"
	sglog "github.com/pivotal-cf/smartguard/log"
	"github.com/pivotal-cf/smartguard/metrics"
	"github.com/pivotal-cf/smartguard/substitution"
)

const (
	exitCommand = "exit"

	// A pasted password line may be far longer than bufio's default token
	// size.
	maxInputLine = 16 * 1024 * 1024
)

type AuditCommand struct {
	ConfigFile cmdflag.FileFlag `long:"config-file" description:"path to YAML config file" value-name:"PATH"`
	JSON       bool             `long:"json" description:"print results as JSON, one per line"`
	NoColor    bool             `long:"no-color" description:"disable colored output"`
	Quiet      bool             `short:"q" long:"quiet" description:"disable logging"`
	MinScore   int              `long:"min-score" description:"exit with status 3 if any audited argument scores below this" value-name:"SCORE"`

	config.AuditConfig
}

func (command *AuditCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if command.NoColor {
		ansi.DisableColors(true)
	}

	cfg, err := command.loadConfig()
	if err != nil {
		return err
	}

	logger, err := command.buildLogger(cfg)
	if err != nil {
		return err
	}

	d, err := buildDataset(logger, cfg)
	if err != nil {
		return err
	}

	tally := metrics.NewTally()
	s := &session{
		auditor:  audit.New(d),
		reporter: command.reporter(os.Stdout),
		emitter:  tally,
	}

	ctx := lgctx.NewContext(context.Background(), logger)

	if len(args) > 0 {
		lowest, err := s.auditAll(ctx, args)
		if err != nil {
			return err
		}

		s.finish(ctx, "arguments")
		WriteSummary(os.Stderr, tally)

		if lowest < command.MinScore {
			fmt.Fprintln(os.Stderr, red("[FAIL]"), fmt.Sprintf("a password scored %d, below the minimum of %d", lowest, command.MinScore))
			os.Exit(3)
		}

		return nil
	}

	clean := newCleanup()
	clean.register(func() {
		WriteSummary(os.Stderr, tally)
	})

	if !command.JSON {
		printBanner(os.Stdout)
	}

	err = s.prompt(ctx, os.Stdin, os.Stdout, !command.JSON)
	s.finish(ctx, "prompt")
	WriteSummary(os.Stderr, tally)

	return err
}

func (command *AuditCommand) loadConfig() (*config.AuditConfig, error) {
	cfg := &config.AuditConfig{}

	if command.ConfigFile != "" {
		bs, err := ioutil.ReadFile(command.ConfigFile.Path())
		if err != nil {
			return nil, err
		}

		cfg, err = config.LoadAuditConfig(bs)
		if err != nil {
			return nil, fmt.Errorf("invalid config file: %s", err)
		}
	}

	cfg.Merge(&command.AuditConfig)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (command *AuditCommand) buildLogger(cfg *config.AuditConfig) (lager.Logger, error) {
	if command.Quiet {
		return sglog.NewNullLogger(), nil
	}

	level, err := cfg.LagerLogLevel()
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger("smartguard")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, level))

	return logger, nil
}

func (command *AuditCommand) reporter(w io.Writer) Reporter {
	if command.JSON {
		return NewJSONReporter(w)
	}

	return NewTextReporter(w)
}

func buildDataset(logger lager.Logger, cfg *config.AuditConfig) (dataset.Dataset, error) {
	logger = logger.Session("build-dataset")

	d := dataset.Dataset{
		KeyboardPatterns:  cfg.KeyboardPatterns,
		SpecialCharacters: cfg.SpecialCharacters,
	}

	if cfg.CommonPasswordsPath == "" {
		d.CommonPasswords = dataset.DefaultCommonPasswords()
	} else {
		words, err := dataset.LoadWordlistFile(logger, cfg.CommonPasswordsPath)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("failed to load common passwords: %s", err)
		}
		d.CommonPasswords = words
	}

	if cfg.SubstitutionsPath == "" {
		d.Substitutions = dataset.DefaultSubstitutions()
	} else {
		mapping, err := substitution.LoadMappingFile(cfg.SubstitutionsPath)
		switch {
		case err == substitution.ErrMappingNotFound:
			logger.Info("substitutions-not-found", lager.Data{"path": cfg.SubstitutionsPath})
			fmt.Fprintln(os.Stderr, yellow("[WARN]"), "substitution file not found:", cfg.SubstitutionsPath)
			mapping = substitution.Mapping{}
		case err != nil:
			return dataset.Dataset{}, fmt.Errorf("failed to load substitutions: %s", err)
		}
		d.Substitutions = mapping
	}

	logger.Debug("built", lager.Data{
		"common-passwords":  d.CommonPasswords.Len(),
		"substitutions":     len(d.Substitutions),
		"keyboard-patterns": len(d.KeyboardPatterns),
	})

	return d, nil
}

type session struct {
	auditor  *audit.Auditor
	reporter Reporter
	emitter  metrics.Emitter

	audited int
}

func (s *session) check(ctx context.Context, password string) (audit.Result, error) {
	logger := lgctx.WithSession(ctx, "audit")

	var result audit.Result
	s.emitter.Timer("audit").Time(logger, func() {
		result = s.auditor.Audit(password)
	})

	s.audited++
	s.emitter.Counter(auditCounterName(result.Rating)).Inc(logger)
	logger.Info("audited", lager.Data{
		"score":  result.Score,
		"rating": result.Rating,
	})

	return result, s.reporter.Report(result)
}

func (s *session) auditAll(ctx context.Context, passwords []string) (int, error) {
	lowest := 100

	for _, password := range passwords {
		result, err := s.check(ctx, password)
		if err != nil {
			return 0, err
		}

		if result.Score < lowest {
			lowest = result.Score
		}
	}

	return lowest, nil
}

func (s *session) finish(ctx context.Context, mode string) {
	lgctx.WithData(ctx, lager.Data{
		"mode":    mode,
		"audited": s.audited,
	}).Info("finished")
}

func (s *session) prompt(ctx context.Context, in io.Reader, out io.Writer, showPrompt bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, bufio.MaxScanTokenSize), maxInputLine)

	for {
		if showPrompt {
			fmt.Fprint(out, "Enter a password to test: ")
		}

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.ToLower(input) == exitCommand {
			break
		}

		if _, err := s.check(ctx, input); err != nil {
			return err
		}
	}

	if showPrompt {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Stay safe! Exiting...")
	}

	return scanner.Err()
}

func printBanner(w io.Writer) {
	rule := strings.Repeat("=", 41)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, cyan(" SmartGuard: Password Strength Auditor"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Type '%s' to quit.\n\n", exitCommand)
}

type cleanup struct {
	work []func()
}

func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\nStay safe! Exiting...")
		clean.exit(1)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.work = append(c.work, fn)
}

func (c *cleanup) exit(status int) {
	for _, w := range c.work {
		w()
	}

	os.Exit(status)
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Its built-in password list may be out of date.")
	}
}
