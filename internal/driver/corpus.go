package driver

import (
	"context"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"dsig/internal/diag"
	"dsig/internal/sig"
	"dsig/internal/source"
)

// CorpusCase is one entry of a corpus file: a signature and whether the
// grammar is expected to accept it.
type CorpusCase struct {
	Name      string  `toml:"name"`
	Signature *string `toml:"signature"`
	Valid     bool    `toml:"valid"`
}

// Corpus is a parsed corpus file.
type Corpus struct {
	Path  string
	Cases []CorpusCase
}

type corpusFile struct {
	Case []CorpusCase `toml:"case"`
}

// LoadCorpus parses a TOML corpus file of [[case]] tables.
func LoadCorpus(path string) (*Corpus, error) {
	var cfg corpusFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("case") || len(cfg.Case) == 0 {
		return nil, fmt.Errorf("%s: corpus has no [[case]] entries", path)
	}
	return &Corpus{Path: path, Cases: cfg.Case}, nil
}

// CaseResult is the outcome of validating one corpus case.
type CaseResult struct {
	Case CorpusCase
	Err  error // validation error, nil when accepted
	Pass bool  // outcome matched the case's expectation
}

// CorpusReport aggregates an entire corpus run. Mismatches are also
// recorded in Bag against per-case virtual buffers for pretty printing.
type CorpusReport struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Results []CaseResult
	Failed  int
}

// RunCorpus validates every case, fanning the grammar checks out over jobs
// goroutines. Buffers are registered up front so the workers never touch
// the FileSet; each worker writes only its own slot of the results slice.
func RunCorpus(ctx context.Context, corpus *Corpus, jobs, maxDiagnostics int) (*CorpusReport, error) {
	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	if len(corpus.Cases) == 0 {
		return &CorpusReport{FileSet: fs, Bag: bag}, nil
	}
	ids := make([]source.FileID, len(corpus.Cases))
	results := make([]CaseResult, len(corpus.Cases))

	for i, c := range corpus.Cases {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("case %d", i+1)
		}
		text := ""
		if c.Signature != nil {
			text = *c.Signature
		}
		ids[i] = fs.AddVirtual(fmt.Sprintf("%s: %s", corpus.Path, label), []byte(text))
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(corpus.Cases)))

	for i, c := range corpus.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &CorpusReport{FileSet: fs, Bag: bag, Results: results}
	for i, r := range results {
		if r.Pass {
			continue
		}
		report.Failed++
		f := fs.Get(ids[i])
		switch {
		case r.Case.Signature == nil:
			bag.Add(diag.NewError(diag.CorpusMissingSignature, wholeSpan(ids[i], len(f.Content)),
				"case has no signature field"))
		case r.Case.Valid && r.Err != nil:
			bag.Add(signatureDiagnostic(ids[i], 0, r.Err).
				WithNote(wholeSpan(ids[i], len(f.Content)), "case expects this signature to be valid"))
		default:
			bag.Add(diag.NewError(diag.CorpusUnexpectedPass, wholeSpan(ids[i], len(f.Content)),
				fmt.Sprintf("signature %q was expected to be invalid but the grammar accepts it", string(f.Content))))
		}
	}
	return report, nil
}

func runCase(c CorpusCase) CaseResult {
	if c.Signature == nil {
		return CaseResult{Case: c, Pass: false}
	}
	err := sig.Validate(*c.Signature)
	return CaseResult{
		Case: c,
		Err:  err,
		Pass: (err == nil) == c.Valid,
	}
}
