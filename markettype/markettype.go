// Package markettype holds the catalog of market types and the rules that
// score a finished race against the selections players made.
package markettype

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

// NotAvailable is the canonical result when a market cannot be answered from
// the race data. Every selection on such a market scores 0.
const NotAvailable = "N/A"

// Three-way answers.
const (
	AnswerYes   = "YES"
	AnswerNo    = "NO"
	AnswerEqual = "EQUAL"
)

// Input is everything a rule may look at. Roster and Discipline are only
// filled for definitions that ask for them.
type Input struct {
	Results    []biathlon.Result
	Selections []models.Selection
	Roster     []models.Competitor
	Discipline string
}

// Outcome is the canonical answer of a market and the points of every
// selection passed in.
type Outcome struct {
	ResultKeys []string
	Points     map[models.SelectionKey]int
}

// Result joins the result keys into the string stored on the market.
func (o Outcome) Result() string {
	if len(o.ResultKeys) == 0 {
		return NotAvailable
	}
	return strings.Join(o.ResultKeys, ", ")
}

// Rule scores one market type. Implementations are pure: the same Input
// always yields the same Outcome.
type Rule interface {
	Score(in Input) Outcome
}

// Definition describes one market type.
type Definition struct {
	ID              int
	Label           string
	IsTeam          bool
	Input           models.InputKind
	NeedsRoster     bool
	NeedsDiscipline bool
	// Analysis names the alternate ranking the rule reads instead of the
	// official results. Empty means the official results.
	Analysis biathlon.AnalysisType
	Rule     Rule
}

func (d Definition) NeedsAnalysis() bool { return d.Analysis != "" }

// Group returns the mutually exclusive podium group the type belongs to.
func (d Definition) Group() (Group, bool) { return GroupOf(d.ID) }

var (
	ErrDuplicateID = errors.New("markettype: duplicate definition id")
	ErrMissingRule = errors.New("markettype: definition has no rule")
)

// Catalog is an immutable id-indexed registry of definitions.
type Catalog struct {
	defs []Definition
	byID map[int]Definition
}

// NewCatalog validates defs and indexes them by id.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[int]Definition, len(defs))}
	for _, d := range defs {
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, d.ID)
		}
		if d.Rule == nil {
			return nil, fmt.Errorf("%w: %d", ErrMissingRule, d.ID)
		}
		if !d.Input.Valid() {
			return nil, fmt.Errorf("markettype: definition %d has unknown input kind %q", d.ID, d.Input)
		}
		c.byID[d.ID] = d
	}
	c.defs = append([]Definition(nil), defs...)
	sort.SliceStable(c.defs, func(i, j int) bool { return c.defs[i].ID < c.defs[j].ID })
	return c, nil
}

// Lookup returns the definition with the given id.
func (c *Catalog) Lookup(id int) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// All returns the definitions ordered by id.
func (c *Catalog) All() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Len is the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(definitions())
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }
