package decision

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
	"github.com/MikeSquared-Agency/Fuzzy/internal/scoring"
)

// Variable names accepted by Advisor.Evaluate.
const (
	VariableHealth  = "health"
	VariableEnemies = "enemies"
)

// ErrUnknownVariable is returned for a variable name the profile does not define.
var ErrUnknownVariable = errors.New("unknown variable")

// Action is the behaviour chosen for a reading.
type Action string

const (
	ActionFight    Action = "fight"
	ActionFlee     Action = "flee"
	ActionCautious Action = "cautious"
)

// Profile holds the fuzzy variables a decision is made over.
type Profile struct {
	Health  fuzzy.Variable
	Enemies fuzzy.Variable
}

// DefaultProfile returns health on a 0–100 scale and nearby enemy count on 0–10.
func DefaultProfile() Profile {
	return Profile{
		Health: fuzzy.NewVariable(VariableHealth,
			fuzzy.MustTrapezoid(0, 0, 30, 50),
			fuzzy.MustTriangle(30, 50, 70),
			fuzzy.MustTrapezoid(50, 70, 100, 100),
		),
		Enemies: fuzzy.NewVariable(VariableEnemies,
			fuzzy.MustTrapezoid(0, 0, 2, 4),
			fuzzy.MustTriangle(2, 5, 8),
			fuzzy.MustTrapezoid(6, 8, 10, 10),
		),
	}
}

// Reading is one observation to decide on.
type Reading struct {
	Health  float64 `json:"health"`
	Enemies float64 `json:"enemies"`
}

// Decision is the full outcome for a reading.
type Decision struct {
	Reading      Reading               `json:"reading"`
	Action       Action                `json:"action"`
	Health       fuzzy.Evaluation      `json:"health"`
	Enemies      fuzzy.Evaluation      `json:"enemies"`
	HealthCrisp  float64               `json:"health_crisp"`
	EnemiesCrisp float64               `json:"enemies_crisp"`
	Utility      scoring.UtilityResult `json:"utility"`
}

// Advisor turns readings into decisions. It holds no mutable state and is
// safe for concurrent use.
type Advisor struct {
	profile Profile
	weights scoring.UtilityWeights
	logger  *slog.Logger
}

// NewAdvisor creates an Advisor over the given profile and utility weights.
func NewAdvisor(profile Profile, weights scoring.UtilityWeights, logger *slog.Logger) *Advisor {
	return &Advisor{
		profile: profile,
		weights: weights,
		logger:  logger,
	}
}

// Profile returns the advisor's variables.
func (a *Advisor) Profile() Profile {
	return a.profile
}

// Variable looks up a profile variable by name.
func (a *Advisor) Variable(name string) (fuzzy.Variable, error) {
	switch name {
	case VariableHealth:
		return a.profile.Health, nil
	case VariableEnemies:
		return a.profile.Enemies, nil
	}
	return fuzzy.Variable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
}

// Evaluate fuzzifies x in the named variable and returns its crisp value.
func (a *Advisor) Evaluate(name string, x float64) (fuzzy.Evaluation, float64, error) {
	v, err := a.Variable(name)
	if err != nil {
		return fuzzy.Evaluation{}, 0, err
	}
	e := v.Evaluate(x)
	return e, v.CrispValue(e), nil
}

// Decide evaluates both variables and picks an action:
// high health facing few enemies fights, low health or many enemies flees,
// anything else proceeds cautiously.
func (a *Advisor) Decide(r Reading) Decision {
	health := a.profile.Health.Evaluate(r.Health)
	enemies := a.profile.Enemies.Evaluate(r.Enemies)

	d := Decision{
		Reading:      r,
		Action:       chooseAction(health, enemies),
		Health:       health,
		Enemies:      enemies,
		HealthCrisp:  a.profile.Health.CrispValue(health),
		EnemiesCrisp: a.profile.Enemies.CrispValue(enemies),
	}

	d.Utility = scoring.Score([]scoring.Factor{
		{Name: "health", Score: normalize(d.HealthCrisp, a.profile.Health), Weight: a.weights.Health},
		{Name: "safety", Score: 1 - normalize(d.EnemiesCrisp, a.profile.Enemies), Weight: a.weights.Safety},
	})

	a.logger.Debug("decision",
		"health", health.String(),
		"enemies", enemies.String(),
		"health_crisp", d.HealthCrisp,
		"enemies_crisp", d.EnemiesCrisp,
		"action", d.Action,
		"utility", d.Utility.Utility,
	)
	return d
}

func chooseAction(health, enemies fuzzy.Evaluation) Action {
	switch {
	case health.IsHigh() && enemies.IsLow():
		return ActionFight
	case health.IsLow() || enemies.IsHigh():
		return ActionFlee
	default:
		return ActionCautious
	}
}

// normalize maps x onto [0,1] across the variable's range.
func normalize(x float64, v fuzzy.Variable) float64 {
	lo, hi := v.Range()
	if hi <= lo {
		return 0
	}
	return (x - lo) / (hi - lo)
}
