package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/berquerant/polylist/pkg/execx"
	"golang.org/x/sync/errgroup"
)

var ErrSource = errors.New("Source")

// Load runs script piped through filters and parses whitespace separated numbers from the output.
func Load(ctx context.Context, shell, script string, filters ...string) ([]float64, error) {
	cmds := make([]*execx.Cmd, 1+len(filters))
	cmds[0] = execx.NewShellCmd(shell, script)
	for i, f := range filters {
		cmds[i+1] = execx.NewShellCmd(shell, f)
	}
	p := execx.NewPipeline(nil, cmds...)

	var (
		pr, pw = io.Pipe()
		values []float64
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := p.Run(ctx, pw)
		if err != nil {
			err = fmt.Errorf("%w: run source", err)
		}
		pw.CloseWithError(err)
		return err
	})
	eg.Go(func() error {
		xs, err := Parse(pr)
		if err != nil {
			pr.CloseWithError(err)
			return err
		}
		values = xs
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("source loaded", slog.Int("len", len(values)))
	return values, nil
}

// Parse reads whitespace separated numbers from r.
func Parse(r io.Reader) ([]float64, error) {
	var (
		sc = bufio.NewScanner(r)
		xs = []float64{}
	)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Join(
				fmt.Errorf("%w: token[%d] %q", ErrSource, len(xs), tok),
				err,
			)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: token[%d] %q is not finite", ErrSource, len(xs), tok)
		}
		xs = append(xs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
