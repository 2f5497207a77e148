// Command recover reconstructs the secret of each share file given on the command line.
//
// Usage:
//
//	recover [-config file.yaml] [-workers n] [-verify] [-base b] [-log-level lvl] file...
//	recover -convert out.cbor file.json
//
// Files ending in .cbor are read as CBOR, all others as JSON envelopes.
// A failing file is reported and the remaining files are still processed;
// the exit status is 1 if any file failed.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-recovery/internal/config"
	"github.com/taurusgroup/share-recovery/pkg/recovery"
	"github.com/taurusgroup/share-recovery/pkg/share"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.NewFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	lvl, _ := cfg.Level()
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(lvl).With().Timestamp().Logger()

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "recover: no share files given")
		fs.Usage()
		return 2
	}

	if flags.Convert != "" {
		if len(files) != 1 {
			fmt.Fprintln(stderr, "recover: -convert takes exactly one input file")
			return 2
		}
		if err = convert(files[0], flags.Convert); err != nil {
			log.Error().Err(err).Str("file", files[0]).Msg("conversion failed")
			return 1
		}
		log.Info().Str("file", files[0]).Str("out", flags.Convert).Msg("converted")
		return 0
	}

	records := make([]recovery.Record, len(files))
	for i, file := range files {
		set, err := load(file)
		records[i] = recovery.Record{Name: file, Set: set, Err: err}
	}

	var opts []recovery.Option
	if cfg.Verify {
		opts = append(opts, recovery.WithVerify())
	}
	log.Debug().Int("files", len(files)).Int("workers", cfg.Workers).Bool("verify", cfg.Verify).Msg("start")

	failed := 0
	for _, r := range recovery.Batch(ctx, records, cfg.Workers, log, opts...) {
		if r.Err != nil {
			failed++
			continue
		}
		text, err := r.Secret.Text(cfg.OutputBase)
		if err != nil {
			log.Error().Err(err).Str("record", r.Name).Msg("failed to render secret")
			failed++
			continue
		}
		fmt.Fprintf(stdout, "Secret for %s: %s\n", r.Name, text)
	}
	if failed > 0 {
		log.Warn().Int("failed", failed).Int("total", len(files)).Msg("some records could not be recovered")
		return 1
	}
	return 0
}

func isCBOR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cbor")
}

// load reads a share file, as CBOR or JSON depending on its extension.
func load(path string) (*share.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set share.Set
	if isCBOR(path) {
		err = set.UnmarshalBinary(data)
	} else {
		err = json.Unmarshal(data, &set)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &set, nil
}

func convert(in, out string) error {
	if isCBOR(in) {
		return errors.New("input is already CBOR")
	}
	set, err := load(in)
	if err != nil {
		return err
	}
	if err = set.Validate(); err != nil {
		return err
	}
	data, err := set.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o600)
}
