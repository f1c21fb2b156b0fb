package facodec

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/hupe1980/facodec/annotation"
	"golang.org/x/sync/errgroup"
)

// Builder collects the distinct annotation tokens of a corpus and builds a
// Dictionary from them. Building is a single-writer phase: a Builder is
// not safe for concurrent use, and once Build has run the Builder is
// sealed. The produced Dictionary is immutable and freely shareable.
type Builder struct {
	opts   builderOptions
	tokens map[string]struct{}
	sealed bool
}

// NewBuilder creates an empty Builder.
func NewBuilder(optFns ...BuilderOption) *Builder {
	return &Builder{
		opts:   applyBuilderOptions(optFns),
		tokens: make(map[string]struct{}),
	}
}

// Add parses one annotation string and records its tokens. Malformed input
// fails the build immediately; the builder never guesses or skips.
func (b *Builder) Add(raw string) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	anns, err := annotation.Parse(raw)
	if err != nil {
		return err
	}
	for _, a := range anns {
		b.tokens[a.String()] = struct{}{}
	}
	return nil
}

// AddReader records tokens from a newline-delimited corpus, one annotation
// string per line. Blank lines are skipped.
func (b *Builder) AddReader(r io.Reader) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := b.Add(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Build sorts the collected tokens and assigns sequential codes starting
// at 0, so the same corpus always yields the same dictionary. It fails
// with ErrDictionaryOverflow when the distinct-token count exceeds the
// 24-bit code space. Build seals the Builder.
func (b *Builder) Build() (*Dictionary, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	if len(b.tokens) > MaxDictionarySize {
		return nil, fmt.Errorf("%w: %d distinct tokens", ErrDictionaryOverflow, len(b.tokens))
	}

	tokens := make([]string, 0, len(b.tokens))
	for t := range b.tokens {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	codes := make(map[string]uint32, len(tokens))
	for i, t := range tokens {
		codes[t] = uint32(i)
	}

	b.opts.logger.Info("dictionary built", "tokens", len(tokens))
	b.tokens = nil

	return &Dictionary{tokens: tokens, codes: codes}, nil
}

// BuildDictionary builds a Dictionary from an in-memory corpus of
// annotation strings.
func BuildDictionary(corpus []string, optFns ...BuilderOption) (*Dictionary, error) {
	b := NewBuilder(optFns...)
	for _, raw := range corpus {
		if err := b.Add(raw); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// BuildFromReaders builds a Dictionary from several newline-delimited
// corpus streams, scanning them concurrently. Token collection is
// per-stream and the final code assignment is a single sorted pass, so the
// result is identical to a sequential build over the concatenated streams.
func BuildFromReaders(ctx context.Context, readers []io.Reader, optFns ...BuilderOption) (*Dictionary, error) {
	sets := make([]map[string]struct{}, len(readers))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range readers {
		sets[i] = make(map[string]struct{})
		set, r := sets[i], r
		g.Go(func() error {
			sc := bufio.NewScanner(r)
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				if err := ctx.Err(); err != nil {
					return err
				}
				line := sc.Text()
				if line == "" {
					continue
				}
				anns, err := annotation.Parse(line)
				if err != nil {
					return err
				}
				for _, a := range anns {
					set[a.String()] = struct{}{}
				}
			}
			return sc.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := NewBuilder(optFns...)
	for _, set := range sets {
		for t := range set {
			b.tokens[t] = struct{}{}
		}
	}
	return b.Build()
}
