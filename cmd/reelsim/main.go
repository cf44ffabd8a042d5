package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"

	"slot_machine/internal/config/env"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/sim"
)

func main() {
	spins := flag.Int("spins", 10000, "number of spins")
	seed := flag.Uint64("seed", 1, "rng seed")
	cfgPath := flag.String("config", "config.yaml", "game config")
	flag.Parse()

	cfg, err := env.NewGameConfigFromYAML(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	catalog := cfg.Catalog()

	bar := pb.StartNew(*spins)
	res, err := sim.Run(catalog, stats_repo.NewStatsRepository(catalog), sim.Options{
		Spins:     *spins,
		Seed:      *seed,
		Params:    cfg.ReelParams(),
		FrameRate: cfg.Settings().FrameRate,
	}, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}

	r := res.Report
	fmt.Printf("spins:        %d\n", res.Spins)
	fmt.Printf("mislandings:  %d\n", res.Mislandings)
	fmt.Printf("stuck:        %d\n", res.Stuck)
	fmt.Printf("frames:       avg %.1f, max %d\n", res.AvgFrames, res.MaxFrames)
	fmt.Printf("hit rate:     %s\n", r.HitRate)
	fmt.Printf("return/spin:  %s\n", r.ReturnPerSpin)
	fmt.Printf("chi-square:   %.3f (p=%.4f)\n", r.ChiSquare, r.PValue)
	for _, s := range r.Symbols {
		fmt.Printf("  %-10s observed %6d expected %9.1f\n", s.SymbolID, s.Observed, s.Expected)
	}

	if res.Mislandings > 0 || res.Stuck > 0 {
		os.Exit(1)
	}
}
