package commands

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/mainakk/lsystem"
	"github.com/mainakk/lsystem/interchange/lsif"
	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Emit selects what stream writes for each document.
type Emit string

const (
	EmitSymbols  Emit = "symbols"
	EmitSegments Emit = "segments"
)

// StreamOptions configures Stream.
type StreamOptions struct {
	Workers    int
	Iterations int // < 0 uses each document's own count
	Emit       Emit
	Expand     []lsystem.ExpandOption
	Logger     *slog.Logger
}

// NewStreamCommand creates the stream command.
func NewStreamCommand() *cobra.Command {
	var emit string

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Process an LSIF stream from stdin",
		Long: `Read LSIF documents from stdin, expand (and optionally trace) each of them
on a pool of workers and write one JSON line per document, in input order.`,
		Example: `  lsystem export | lsystem stream --emit segments --workers 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			e := Emit(emit)
			if e != EmitSymbols && e != EmitSegments {
				return errors.Errorf("unknown --emit %q, want symbols or segments", emit)
			}

			return Stream(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), StreamOptions{
				Workers:    cfg.Workers,
				Iterations: cfg.Iterations,
				Emit:       e,
				Expand:     expandOptions(cfg),
				Logger:     config.GetLogger(ctx),
			})
		},
	}
	cmd.Flags().StringVar(&emit, "emit", string(EmitSymbols), "what to write per document (symbols|segments)")
	_ = cmd.RegisterFlagCompletionFunc("emit", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(EmitSymbols), string(EmitSegments)}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

type order struct {
	seq  int
	line []byte
}

type streamRecord struct {
	Seq        int               `json:"seq"`
	Name       string            `json:"name"`
	Iterations int               `json:"iterations"`
	Letters    int               `json:"letters"`
	Symbols    string            `json:"symbols,omitempty"`
	Segments   []lsystem.Segment `json:"segments,omitempty"`
}

// Stream decodes documents from r as they arrive, processes them
// concurrently and writes the results to w in the order the documents were
// read. The first failing document stops the stream; results already
// resolved in order are still written.
func Stream(ctx context.Context, r io.Reader, w io.Writer, opts StreamOptions) error {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	out := make(chan order, opts.Workers)
	resolved := make(chan error, 1)
	go func() {
		resolved <- resolve(w, out)
	}()

	var decodeErr error
	dec := lsif.NewDecoder(r)
	seq := 0
	for ctx.Err() == nil {
		format, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			decodeErr = errors.Wrapf(err, "document %d", seq)
			break
		}

		n := seq
		g.Go(func() error {
			line, err := process(format, n, opts)
			if err != nil {
				return errors.Wrapf(err, "document %d (%s)", n, format.Name)
			}
			select {
			case out <- order{n, line}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		seq++
	}

	err := g.Wait()
	close(out)
	resolveErr := <-resolved

	opts.Logger.Debug("stream finished", "documents", seq)

	switch {
	case err != nil:
		return err
	case decodeErr != nil:
		return decodeErr
	}
	return resolveErr
}

func process(format *lsif.Format, seq int, opts StreamOptions) ([]byte, error) {
	p, err := format.Import()
	if err != nil {
		return nil, err
	}

	n := opts.Iterations
	if n < 0 {
		n = p.Iterations
	}

	s, err := p.Expand(n, opts.Expand...)
	if err != nil {
		return nil, err
	}

	record := streamRecord{
		Seq:        seq,
		Name:       p.Name,
		Iterations: n,
		Letters:    utf8.RuneCountInString(s),
	}
	switch opts.Emit {
	case EmitSegments:
		if record.Segments, err = lsystem.TraceSegments(s, p.Geometry); err != nil {
			return nil, err
		}
	default:
		record.Symbols = s
	}

	opts.Logger.Debug("document processed", "seq", seq, "name", p.Name, "letters", record.Letters)

	line, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// resolve writes orders to w by ascending sequence number, holding back the
// ones that arrive early. After a write error it keeps draining in so that
// no worker blocks.
func resolve(w io.Writer, in <-chan order) error {
	next := 0
	buffer := make(map[int][]byte)

	var writeErr error
	for o := range in {
		if writeErr != nil {
			continue
		}

		buffer[o.seq] = o.line
		for {
			line, ok := buffer[next]
			if !ok {
				break
			}
			delete(buffer, next)
			next++

			if _, err := w.Write(line); err != nil {
				writeErr = errors.Wrap(err, "error in writing to out")
				break
			}
		}
	}
	return writeErr
}
