package main

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"math/bits"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// reciptable generates the seed table used by limb.Reciprocal, and can
// check the reciprocal and the 2-by-1 division built on it against the
// hardware divide.
//
// The table is regenerated by 'go generate ./internal/limb'. To run the
// checks instead:
//
//	go run ./misc/reciptable --verify --samples 100000000

type options struct {
	Out     string `long:"out" description:"File to write the generated table to; stdout if empty"`
	Verify  bool   `long:"verify" description:"Check the reciprocal and division routines instead of generating"`
	Samples int    `long:"samples" default:"1000000" description:"Number of random divisors to check"`
	Workers int    `long:"workers" default:"4" description:"Number of goroutines to check with"`
	Seed    int64  `long:"seed" description:"Seed the RNG (0 == current nanotime)"`
	Dump    bool   `long:"dump" description:"Dump the state of each mismatch"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug output"`
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("reciptable failed")
	}
}

func run(opts options) error {
	if opts.Verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if opts.Verify {
		return verify(opts)
	}

	src, err := generate()
	if err != nil {
		return err
	}
	if opts.Out == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(opts.Out, src, 0644); err != nil {
		return err
	}
	log.Info().Str("out", opts.Out).Int("bytes", len(src)).Msg("table written")
	return nil
}

// generate renders the table of floor((2^19 - 3*2^8) / d9) for every 9-bit
// prefix d9 of a normalized divisor.
func generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by misc/reciptable; DO NOT EDIT.\n\n")
	buf.WriteString("package limb\n\n")
	buf.WriteString("// reciprocalTable holds floor((2^19 - 3*2^8) / d9) for d9 in [256, 512).\n")
	buf.WriteString("var reciprocalTable = [256]uint16{\n")

	const numer = 1<<19 - 3<<8
	for d9 := 256; d9 < 512; d9 += 8 {
		buf.WriteByte('\t')
		for i := 0; i < 8; i++ {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%03x,", numer/(d9+i))
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

type mismatch struct {
	Check    string
	Divisor  uint64
	Hi, Lo   uint64
	Got      [2]uint64
	Expected [2]uint64
}

func verify(opts options) error {
	if opts.Workers < 1 {
		return fmt.Errorf("reciptable: --workers must be at least 1, found %d", opts.Workers)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Int64("seed", seed).
		Int("samples", opts.Samples).
		Int("workers", opts.Workers).
		Msg("verifying")

	var failures int64
	per := (opts.Samples + opts.Workers - 1) / opts.Workers
	start := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < opts.Workers; w++ {
		w := w
		rng := rand.New(rand.NewSource(seed + int64(w)))
		n := per
		if rem := opts.Samples - w*per; rem < n {
			n = rem
		}

		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%4096 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				for _, m := range check(rng) {
					atomic.AddInt64(&failures, 1)
					log.Error().
						Str("check", m.Check).
						Uint64("divisor", m.Divisor).
						Msg("mismatch")
					if opts.Dump {
						spew.Fdump(os.Stderr, m)
					}
				}
			}
			log.Debug().Int("worker", w).Int("checked", n).Msg("worker done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().
		Int64("failures", failures).
		Dur("took", time.Since(start)).
		Msg("verification complete")

	if failures > 0 {
		return fmt.Errorf("reciptable: %d mismatches", failures)
	}
	return nil
}

// check compares one random normalized divisor and dividend against the
// hardware divide.
func check(rng *rand.Rand) (out []mismatch) {
	d := rng.Uint64() | 1<<63
	if rng.Intn(16) == 0 {
		// Edge-heavy divisors: all ones below the top bit, or only the top bit.
		if rng.Intn(2) == 0 {
			d = 1 << 63
		} else {
			d = ^uint64(0) >> uint(rng.Intn(2))
			d |= 1 << 63
		}
	}

	v := limb.Reciprocal(d)
	if ref := limb.ReciprocalRef(d); v != ref {
		out = append(out, mismatch{Check: "reciprocal", Divisor: d, Got: [2]uint64{v}, Expected: [2]uint64{ref}})
	}

	hi := rng.Uint64() % d
	lo := rng.Uint64()
	q, r := limb.Div2x1(hi, lo, d, v)
	eq, er := bits.Div64(hi, lo, d)
	if q != eq || r != er {
		out = append(out, mismatch{
			Check: "div2x1", Divisor: d, Hi: hi, Lo: lo,
			Got: [2]uint64{q, r}, Expected: [2]uint64{eq, er},
		})
	}
	return out
}
