package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/talgya/wedgesim/internal/config"
	"github.com/talgya/wedgesim/internal/engine"
	"github.com/talgya/wedgesim/internal/persistence"
	"github.com/talgya/wedgesim/internal/scenario"
)

func runSimulation(path string, seed int64, dbPath, label string) error {
	rf, err := config.Load(path)
	if err != nil {
		return err
	}
	sc, err := rf.Scenario()
	if err != nil {
		return err
	}
	pol, err := rf.BuildPolicy()
	if err != nil {
		return err
	}

	mode := "ead"
	if sc.EventMode() {
		mode = "event"
	}
	slog.Info("starting run",
		"file", path,
		"mode", mode,
		"horizon", sc.Horizon,
		"discount_rate", sc.DiscountRate,
		"seed", seed,
	)

	rng := rand.New(rand.NewSource(seed))
	res := engine.RunTraced(sc, pol, rng)

	if res.Infeasible {
		fmt.Println("policy is infeasible for this city geometry")
		return nil
	}

	fmt.Printf("discounted investment: $%s\n", humanize.CommafWithDigits(res.Investment, 0))
	fmt.Printf("discounted damage:     $%s\n", humanize.CommafWithDigits(res.Damage, 0))
	fmt.Printf("total:                 $%s\n", humanize.CommafWithDigits(res.Total(), 0))

	if dbPath != "" {
		db, err := persistence.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if label == "" {
			label = path
		}
		id, err := db.SaveRun(label, sc.Horizon, sc.DiscountRate, sc.EventMode(), res)
		if err != nil {
			return fmt.Errorf("persist run: %w", err)
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

// runSweep evaluates barrier-only static policies over a crest-height grid,
// the shape of query an outer optimizer makes millions of times.
func runSweep(path string, maxCrest float64, steps int) error {
	rf, err := config.Load(path)
	if err != nil {
		return err
	}
	sc, err := rf.Scenario()
	if err != nil {
		return err
	}
	if steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}

	fmt.Printf("%8s  %22s  %22s  %22s\n", "crest_m", "investment", "damage", "total")
	for i := 0; i < steps; i++ {
		crest := maxCrest * float64(i) / float64(steps-1)
		pol := scenario.Static{}
		pol.Vector.D = crest

		// Each evaluation gets its own source so rows are independent and
		// reproducible regardless of sweep order.
		rng := rand.New(rand.NewSource(int64(i) + 1))
		res := engine.Run(sc, pol, rng)

		fmt.Printf("%8.2f  %22s  %22s  %22s\n",
			crest,
			humanize.CommafWithDigits(res.Investment, 0),
			humanize.CommafWithDigits(res.Damage, 0),
			humanize.CommafWithDigits(res.Total(), 0),
		)
	}
	return nil
}
