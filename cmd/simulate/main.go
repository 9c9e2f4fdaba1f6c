// Headless balance-tuning harness: runs the stand simulation at a fixed step
// with a greedy buyer strategy and prints a run summary. No server, no
// database, no wall clock.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dagwood-games/hotdog-tycoon/internal/balance"
	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

func main() {
	seconds := flag.Int("seconds", 600, "simulated play time in seconds")
	step := flag.Duration("step", 100*time.Millisecond, "simulation step size")
	configPath := flag.String("config", "", "balance YAML (default: built-in)")
	prestige := flag.Bool("prestige", true, "prestige whenever eligible")
	flag.Parse()

	cfg := balance.Default()
	if *configPath != "" {
		loaded, err := balance.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load balance config: %v", err)
		}
		cfg = loaded
	}

	bus := event.NewMemoryBus(event.WithQueuing())
	svc, err := stand.NewService(cfg, bus)
	if err != nil {
		log.Fatalf("Failed to create stand: %v", err)
	}

	ctx := context.Background()
	counts := map[event.Type]int{}
	for _, t := range []event.Type{
		event.HotdogSold, event.UpgradePurchased,
		event.MilestoneReached, event.PrestigeCompleted, event.QueueFull,
	} {
		t := t
		bus.Subscribe(t, func(_ context.Context, evt event.Event) error {
			counts[evt.Type]++
			return nil
		})
	}

	run(ctx, svc, *seconds, *step, *prestige)

	printSummary(os.Stdout, svc.State(ctx), counts, *seconds)
}

// run drives the simulation: each step it tops up the queue, advances the
// clock, buys the cheapest affordable upgrade, and optionally prestiges.
func run(ctx context.Context, svc stand.Service, seconds int, step time.Duration, prestige bool) {
	total := time.Duration(seconds) * time.Second
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		for {
			if err := svc.Enqueue(ctx); err != nil {
				if !errors.Is(err, domain.ErrQueueFull) {
					log.Fatalf("Enqueue failed: %v", err)
				}
				break
			}
		}

		svc.Advance(ctx, step)

		if id, ok := cheapestAffordable(ctx, svc); ok {
			if _, err := svc.Purchase(ctx, id); err != nil {
				log.Fatalf("Purchase of %s failed: %v", id, err)
			}
		}

		if prestige {
			if _, err := svc.PerformPrestige(ctx); err != nil && !errors.Is(err, domain.ErrPrestigeIneligible) {
				log.Fatalf("Prestige failed: %v", err)
			}
		}
	}
}

func cheapestAffordable(ctx context.Context, svc stand.Service) (string, bool) {
	bestID := ""
	bestCost := 0.0
	for _, u := range svc.Upgrades(ctx) {
		if !u.Affordable {
			continue
		}
		if bestID == "" || u.NextCost < bestCost {
			bestID = u.ID
			bestCost = u.NextCost
		}
	}
	return bestID, bestID != ""
}

func printSummary(w *os.File, s *stand.State, counts map[event.Type]int, seconds int) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, "--- Run Summary ---")
	p.Fprintf(w, "Simulated time:    %v seconds\n", number.Decimal(seconds))
	p.Fprintf(w, "Hot dogs produced: %v\n", number.Decimal(s.TotalProduced))
	p.Fprintf(w, "Balance:           $%v\n", number.Decimal(s.Balance, number.MaxFractionDigits(2)))
	p.Fprintf(w, "Lifetime earned:   $%v\n", number.Decimal(s.Prestige.LifetimeEarned, number.MaxFractionDigits(2)))
	p.Fprintf(w, "Production rate:   %v/s\n", number.Decimal(s.Rate, number.MaxFractionDigits(2)))
	fmt.Fprintf(w, "Prestige level:    %d (multiplier x%.2f)\n", s.Prestige.Level, s.PrestigeMultiplier)

	fmt.Fprintln(w, "--- Events ---")
	p.Fprintf(w, "Sales:      %v\n", number.Decimal(counts[event.HotdogSold]))
	p.Fprintf(w, "Upgrades:   %v\n", number.Decimal(counts[event.UpgradePurchased]))
	p.Fprintf(w, "Milestones: %v\n", number.Decimal(counts[event.MilestoneReached]))
	p.Fprintf(w, "Prestiges:  %v\n", number.Decimal(counts[event.PrestigeCompleted]))
	p.Fprintf(w, "Queue full: %v\n", number.Decimal(counts[event.QueueFull]))
}
