package persistence

import (
	"fmt"
	"strings"

	"github.com/erp/backoffice/internal/domain/shared/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, lower-cased
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// buildExpression translates a predicate tree into a GORM clause.
// True yields a nil expression, meaning no WHERE clause at all.
func buildExpression(p query.Predicate, schema *query.Schema) (clause.Expression, error) {
	switch n := p.(type) {
	case nil, query.True:
		return nil, nil
	case query.And:
		exprs, err := buildAll(n, schema)
		if err != nil || len(exprs) == 0 {
			return nil, err
		}
		return clause.And(exprs...), nil
	case query.Or:
		exprs, err := buildAll(n, schema)
		if err != nil {
			return nil, err
		}
		if len(exprs) == 0 {
			// an empty disjunction matches nothing
			return clause.Expr{SQL: "1 = 0"}, nil
		}
		return clause.Or(exprs...), nil
	case query.Condition:
		return buildCondition(n, schema)
	default:
		return nil, fmt.Errorf("unsupported predicate node %T", p)
	}
}

func buildAll(nodes []query.Predicate, schema *query.Schema) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(nodes))
	for _, node := range nodes {
		expr, err := buildExpression(node, schema)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}
	return exprs, nil
}

func buildCondition(c query.Condition, schema *query.Schema) (clause.Expression, error) {
	col, ok := schema.Column(c.Field)
	if !ok {
		return nil, fmt.Errorf("unknown filter field %q", c.Field)
	}
	column := clause.Column{Table: clause.CurrentTable, Name: col}

	switch c.Op {
	case query.OpEquals:
		return clause.Eq{Column: column, Value: c.Value}, nil
	case query.OpGTE:
		return clause.Gte{Column: column, Value: c.Value}, nil
	case query.OpLTE:
		return clause.Lte{Column: column, Value: c.Value}, nil
	case query.OpContains:
		term, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("contains on %q needs a string, got %T", c.Field, c.Value)
		}
		return clause.Expr{
			SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
			Vars: []any{column, containsPattern(term)},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", c.Op)
	}
}

// applyPredicate adds the WHERE clause of p to db
func applyPredicate(db *gorm.DB, p query.Predicate, schema *query.Schema) (*gorm.DB, error) {
	expr, err := buildExpression(p, schema)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return db, nil
	}
	return db.Where(expr), nil
}
