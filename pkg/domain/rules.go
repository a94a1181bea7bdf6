package domain

import "context"

// RuleView provides read-only access to the transactional snapshot for rule
// evaluation. Listings are unordered; callers sort when order matters.
type RuleView interface {
	List(entity EntityType) []Record
	Find(entity EntityType, id int64) (Record, bool)
}

// Rule defines an evaluation executed within a transaction boundary.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error)
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine. Registration order is evaluation
// order, and the first rule producing a blocking violation ends evaluation:
// checks later in the sequence never run once an earlier one has failed.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes registered rules in order and aggregates their results,
// stopping after the first rule that blocks.
func (e *RulesEngine) Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view, changes)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
		if res.HasBlocking() {
			break
		}
	}
	return combined, nil
}
