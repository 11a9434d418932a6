package authz

import (
	"context"
	"fmt"

	"marketcal/internal/marketcal/model"
)

// Decision is the outcome of an authorization check. A denial is a normal
// result the caller renders as a rejection, not an error.
type Decision struct {
	Allowed bool
	Level   model.Level
	Reason  string
}

// Gate wraps the resolver with the action→level policy. Callers run exactly
// one check before a mutating operation and abort on a denial.
type Gate struct {
	Resolver *Resolver
}

func NewGate(resolver *Resolver) *Gate {
	return &Gate{Resolver: resolver}
}

// requiredLevel maps an action to the minimum level that satisfies it. Delete
// is deliberately narrower than edit: only owner level may delete, so an
// invited editor cannot take a whole calendar down.
func requiredLevel(action string) (model.Level, error) {
	switch action {
	case model.ActionView:
		return model.LevelView, nil
	case model.ActionEdit:
		return model.LevelEdit, nil
	case model.ActionDelete:
		return model.LevelOwner, nil
	default:
		return model.LevelNone, fmt.Errorf("unknown action: %s", action)
	}
}

func (g *Gate) Authorize(ctx context.Context, p model.Principal, action, kind, id string) (Decision, error) {
	required, err := requiredLevel(action)
	if err != nil {
		return Decision{}, err
	}

	level, err := g.Resolver.ResolveAccess(ctx, p, kind, id)
	if err != nil {
		return Decision{}, err
	}

	if level < required {
		return Decision{
			Allowed: false,
			Level:   level,
			Reason:  fmt.Sprintf("%s on %s requires %s access, caller has %s", action, kind, required, level),
		}, nil
	}

	return Decision{Allowed: true, Level: level}, nil
}
