package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/prefixcalc"
	"github.com/rs/zerolog"
)

func repl(env *prefixcalc.Env, logger zerolog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if _, err := env.Run(scanner.Text()); err != nil {
			logger.Error().Err(err).Msg("run")
		}
	}
}

func run(env *prefixcalc.Env, r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = env.Run(string(b))
	return err
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	overflow := flag.String("overflow", "", "integer overflow policy (wrap, checked)")
	expr := flag.String("e", "", "program source to run")
	sample := flag.String("sample", "", "bundled sample program to run")
	listSamples := flag.Bool("list-samples", false, "list bundled sample programs")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := prefixcalc.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = prefixcalc.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *overflow != "" {
		cfg.Overflow = *overflow
	}

	level, err := cfg.Level()
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	env := prefixcalc.NewEnv()
	env.SetLogger(logger)
	if err := cfg.Apply(env); err != nil {
		logger.Error().Err(err).Msg("invalid config")
		os.Exit(2)
	}

	if *listSamples {
		names, err := prefixcalc.Samples()
		if err != nil {
			logger.Fatal().Err(err).Msg("list samples")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *sample != "" {
		src, err := prefixcalc.LoadSample(*sample)
		if err != nil {
			logger.Fatal().Err(err).Msg("load sample")
		}
		*expr = src
	}

	if *expr != "" {
		if _, err := env.Run(*expr); err != nil {
			logger.Fatal().Err(err).Msg("run")
		}
		return
	}

	var f *os.File

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl(env, logger)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			logger.Fatal().Err(err).Msg("open")
		}
		defer f.Close()
	}

	if err := run(env, f); err != nil {
		logger.Fatal().Err(err).Str("file", f.Name()).Msg("run")
	}
}
