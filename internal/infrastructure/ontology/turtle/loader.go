// Package turtle loads Turtle ontology documents into a triple store.
package turtle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knakk/rdf"
	"go.uber.org/zap"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/triplestore/memory"
)

// ErrBlankNode is the cause of a strict-mode ParseError for a statement
// that uses a blank node.
var ErrBlankNode = errors.New("blank nodes are not addressable")

// ParseError reports a document that could not be loaded. Statement is the
// 1-based index of the statement being decoded when the failure happened.
type ParseError struct {
	Source    string
	Statement int
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: statement %d: %v", e.Source, e.Statement, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loader decodes Turtle documents.
type Loader struct {
	strict bool
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards diagnostics.
func NewLoader(cfg config.OntologyConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		strict: cfg.Strict,
		logger: logger.Named("turtle"),
	}
}

// LoadFile loads the document at path.
func (l *Loader) LoadFile(path string) (*memory.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ontology: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load decodes every statement of r and returns a new store holding them.
// Any syntax error fails the whole load; no partial store is returned.
func (l *Loader) Load(r io.Reader, source string) (*memory.Store, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)

	var (
		rels    []entities.Relation
		dropped int
	)
	for n := 1; ; n++ {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Source: source, Statement: n, Err: err}
		}

		rel, blank := convert(triple)
		if blank {
			if l.strict {
				return nil, &ParseError{Source: source, Statement: n, Err: ErrBlankNode}
			}
			dropped++
			continue
		}
		rels = append(rels, rel)
	}

	if dropped > 0 {
		l.logger.Warn("Dropped statements with blank nodes",
			zap.String("source", source),
			zap.Int("dropped", dropped))
	}

	store := memory.FromRelations(rels)
	l.logger.Debug("Loaded ontology",
		zap.String("source", source),
		zap.Int("statements", len(rels)),
		zap.Int("relations", store.Len()))

	return store, nil
}

// convert maps a decoded triple onto a relation. It reports true when the
// subject or object is a blank node.
func convert(t rdf.Triple) (entities.Relation, bool) {
	rel := entities.Relation{
		Subject:   t.Subj.String(),
		Predicate: t.Pred.String(),
	}
	blank := t.Subj.Type() == rdf.TermBlank

	switch obj := t.Obj.(type) {
	case rdf.Literal:
		rel.Object = entities.Term{
			Value:    obj.String(),
			Kind:     entities.KindLiteral,
			Datatype: obj.DataType.String(),
			Lang:     obj.Lang(),
		}
	case rdf.Blank:
		blank = true
		rel.Object = entities.Term{Value: blankLabel(obj.String()), Kind: entities.KindBlank}
	default:
		rel.Object = entities.IRI(t.Obj.String())
	}

	if t.Subj.Type() == rdf.TermBlank {
		rel.Subject = blankLabel(rel.Subject)
	}
	return rel, blank
}

func blankLabel(id string) string {
	if strings.HasPrefix(id, "_:") {
		return id
	}
	return "_:" + id
}
