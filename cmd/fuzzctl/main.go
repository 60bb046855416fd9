// fuzzctl evaluates readings against the default fuzzy profile, locally or
// through a running fuzzyd when --server is set.
//
// Usage:
//
//	fuzzctl decide --health 45 --enemies 3
//	fuzzctl evaluate --variable health --input 45
//	fuzzctl utility --factors 0.4,0.7 --weights 0.6,0.4
//	fuzzctl --server http://localhost:8700 --token $FUZZY_ADMIN_TOKEN stats
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/MikeSquared-Agency/Fuzzy/internal/apiclient"
	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
	"github.com/MikeSquared-Agency/Fuzzy/internal/scoring"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "fuzzctl",
		Usage:   "Evaluate fuzzy variables and decisions",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log decision details to stderr",
				EnvVars: []string{"FUZZY_VERBOSE"},
			},
			&cli.StringFlag{
				Name:    "server",
				Usage:   "fuzzyd base URL; evaluate locally when empty",
				EnvVars: []string{"FUZZY_SERVER"},
			},
			&cli.StringFlag{
				Name:  "client-id",
				Value: "fuzzctl",
				Usage: "X-Client-ID sent to fuzzyd",
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Admin token for fuzzyd",
				EnvVars: []string{"FUZZY_ADMIN_TOKEN"},
			},
		},
		Commands: []*cli.Command{
			decideCommand(),
			evaluateCommand(),
			utilityCommand(),
			statsCommand(),
		},
	}
}

func newAdvisor(c *cli.Context) *decision.Advisor {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	return decision.NewAdvisor(decision.DefaultProfile(), scoring.DefaultUtilityWeights(), logger)
}

// remote returns a fuzzyd client, or nil when no server is configured.
func remote(c *cli.Context) apiclient.Client {
	if c.String("server") == "" {
		return nil
	}
	return apiclient.NewHTTPClient(c.String("server"), c.String("client-id"), c.String("token"))
}

func decideCommand() *cli.Command {
	return &cli.Command{
		Name:  "decide",
		Usage: "Decide between fight, flee and caution for a reading",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "health", Usage: "Current health (0-100)", Required: true},
			&cli.Float64Flag{Name: "enemies", Usage: "Enemies nearby (0-10)", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "Print the full decision as JSON"},
		},
		Action: func(c *cli.Context) error {
			if rc := remote(c); rc != nil {
				rec, err := rc.Decide(c.Context, c.Float64("health"), c.Float64("enemies"))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, rec)
			}

			d := newAdvisor(c).Decide(decision.Reading{
				Health:  c.Float64("health"),
				Enemies: c.Float64("enemies"),
			})
			if c.Bool("json") {
				return printJSON(c.App.Writer, d)
			}

			w := c.App.Writer
			fmt.Fprintln(w, "Health Variable:")
			printEvaluation(w, d.Health, d.HealthCrisp)
			fmt.Fprintln(w, "Enemy Density Variable:")
			printEvaluation(w, d.Enemies, d.EnemiesCrisp)
			fmt.Fprintf(w, "Decision: %s\n", describe(d.Action))
			fmt.Fprintf(w, "Utility: %.4f\n", d.Utility.Utility)
			return nil
		},
	}
}

func evaluateCommand() *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "Fuzzify one input and print its degrees and crisp value",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "variable", Aliases: []string{"V"}, Value: decision.VariableHealth, Usage: "Variable name (health, enemies)"},
			&cli.Float64Flag{Name: "input", Aliases: []string{"x"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			if rc := remote(c); rc != nil {
				e, err := rc.Evaluate(c.Context, c.String("variable"), c.Float64("input"))
				if err != nil {
					return err
				}
				printEvaluation(c.App.Writer, e.Evaluation, e.CrispValue)
				return nil
			}

			e, crisp, err := newAdvisor(c).Evaluate(c.String("variable"), c.Float64("input"))
			if err != nil {
				return err
			}
			printEvaluation(c.App.Writer, e, crisp)
			return nil
		},
	}
}

func utilityCommand() *cli.Command {
	return &cli.Command{
		Name:  "utility",
		Usage: "Compute a weighted utility from factor and weight lists",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "factors", Usage: "Comma-separated factor values", Required: true},
			&cli.StringFlag{Name: "weights", Usage: "Comma-separated weights", Required: true},
		},
		Action: func(c *cli.Context) error {
			factors, err := parseFloats(c.String("factors"))
			if err != nil {
				return fmt.Errorf("factors: %w", err)
			}
			weights, err := parseFloats(c.String("weights"))
			if err != nil {
				return fmt.Errorf("weights: %w", err)
			}
			u, err := scoring.CalculateUtility(factors, weights)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Utility: %g\n", u)
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show decision counts from a running fuzzyd",
		Action: func(c *cli.Context) error {
			rc := remote(c)
			if rc == nil {
				return errors.New("stats needs --server")
			}
			stats, err := rc.Stats(c.Context)
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, stats)
		},
	}
}

func printEvaluation(w io.Writer, e fuzzy.Evaluation, crisp float64) {
	fmt.Fprintf(w, "Low Degree: %g, Medium Degree: %g, High Degree: %g, Crisp Value: %g\n",
		e.Low, e.Medium, e.High, crisp)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func describe(a decision.Action) string {
	switch a {
	case decision.ActionFight:
		return "Fight!"
	case decision.ActionFlee:
		return "Flee!"
	default:
		return "Be cautious, assess further!"
	}
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
