package filter

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"spireseed/pkg/game/card"
	"spireseed/pkg/game/character"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/events"
	"spireseed/pkg/game/names"
)

// ErrArguments is wrapped when a filter call has the wrong arguments.
var ErrArguments = errors.New("bad filter arguments")

type expression struct {
	Or []*conjunction `parser:"@@ ( 'or' @@ )*"`
}

type conjunction struct {
	And []*unary `parser:"@@ ( 'and' @@ )*"`
}

type unary struct {
	Not  bool  `parser:"@'not'?"`
	Term *term `parser:"@@"`
}

type term struct {
	Group *expression `parser:"  '(' @@ ')'"`
	Call  *call       `parser:"| @@"`
}

type call struct {
	Name string   `parser:"@Ident"`
	Args []string `parser:"( '(' ( @(Int | Ident) ( ',' @(Int | Ident) )* )? ')' )?"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[expression](
	participle.Lexer(exprLexer),
)

// Options adjust how expressions are compiled.
type Options struct {
	// Ascension selects ascension maps for map filters.
	Ascension bool
}

// DefaultOptions compile map filters against ascension maps.
var DefaultOptions = Options{Ascension: true}

// ParseExpression compiles a filter expression such as
//
//	bottleneck(6) and not avoid_cards(silent, 3, Prepared)
//
// Each call accepts the seeds it describes; the result rejects exactly
// the seeds for which the expression is false.
func ParseExpression(input string) (Filter, error) {
	return DefaultOptions.ParseExpression(input)
}

// ParseExpression compiles input with o.
func (o Options) ParseExpression(input string) (Filter, error) {
	expr, err := exprParser.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse filter")
	}
	return o.compile(expr)
}

func (o Options) compile(expr *expression) (Filter, error) {
	var alternatives Any
	for _, c := range expr.Or {
		var all All
		for _, u := range c.And {
			f, err := o.compileUnary(u)
			if err != nil {
				return nil, err
			}
			all = append(all, f)
		}
		alternatives = append(alternatives, single(all))
	}
	if len(alternatives) == 1 {
		return alternatives[0], nil
	}
	return alternatives, nil
}

func single(all All) Filter {
	if len(all) == 1 {
		return all[0]
	}
	return all
}

func (o Options) compileUnary(u *unary) (Filter, error) {
	var (
		f   Filter
		err error
	)
	if u.Term.Group != nil {
		f, err = o.compile(u.Term.Group)
	} else {
		f, err = o.compileCall(u.Term.Call)
	}
	if err != nil {
		return nil, err
	}
	if u.Not {
		return Not{f}, nil
	}
	return f, nil
}

type builder func(o Options, args []string) (Filter, error)

var builders = map[string]builder{
	"bottleneck":   buildBottleneck,
	"buffed_elite": buildBuffedElite,
	"avoid_cards":  buildAvoidCards,
	"pandora":      buildPandora,
	"juzu":         buildJuzu,
}

var calls = func() *names.Lookup[builder] {
	l := names.NewLookup[builder]("filter")
	for _, name := range []string{"bottleneck", "buffed_elite", "avoid_cards", "pandora", "juzu"} {
		l.Add(builders[name], name)
	}
	return l
}()

// Names returns the functions an expression can call.
func Names() []string {
	return calls.Names()
}

func (o Options) compileCall(c *call) (Filter, error) {
	build, err := calls.Find(c.Name)
	if err != nil {
		return nil, err
	}
	f, err := build(o, c.Args)
	return f, errors.Wrap(err, c.Name)
}

func arity(args []string, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return errors.Wrapf(ErrArguments, "got %d arguments", len(args))
	}
	return nil
}

func integer(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrArguments, "%q is not a number", arg)
	}
	return n, nil
}

func floor(args []string) (int, error) {
	if len(args) == 0 {
		return DefaultFloor, nil
	}
	return integer(args[0])
}

func buildBottleneck(o Options, args []string) (Filter, error) {
	if err := arity(args, 0, 1); err != nil {
		return nil, err
	}
	n, err := floor(args)
	if err != nil {
		return nil, err
	}
	return Bottleneck{Floor: n, Ascension: o.Ascension}, nil
}

func buildBuffedElite(o Options, args []string) (Filter, error) {
	n, err := floor(args)
	if err != nil {
		return nil, err
	}
	buffs := mapset.New[dungeon.EliteBuff]()
	if len(args) > 1 {
		for _, arg := range args[1:] {
			b, err := dungeon.ParseBuff(arg)
			if err != nil {
				return nil, err
			}
			buffs.Put(b)
		}
	}
	return BuffedEliteBottleneck{Floor: n, Ascension: o.Ascension, Buffs: buffs}, nil
}

func buildAvoidCards(_ Options, args []string) (Filter, error) {
	if err := arity(args, 2, -1); err != nil {
		return nil, err
	}
	c, err := character.Parse(args[0])
	if err != nil {
		return nil, err
	}
	rewards, err := integer(args[1])
	if err != nil {
		return nil, err
	}
	cards, err := card.ParseList(args[2:])
	if err != nil {
		return nil, err
	}
	rejected := mapset.New[card.Card]()
	for _, rc := range cards {
		rejected.Put(rc)
	}
	return CardReward{Character: c, Rewards: rewards, Rejected: rejected}, nil
}

func buildPandora(_ Options, args []string) (Filter, error) {
	if err := arity(args, 1, 1); err != nil {
		return nil, err
	}
	c, err := character.Parse(args[0])
	if err != nil {
		return nil, err
	}
	return PandoraFor(c), nil
}

func buildJuzu(_ Options, args []string) (Filter, error) {
	if err := arity(args, events.Segments, events.Segments); err != nil {
		return nil, err
	}
	var j Juzuless
	for i, arg := range args {
		n, err := integer(arg)
		if err != nil {
			return nil, err
		}
		j.Path[i] = n
	}
	return j, nil
}
