// README: CLI smoke tool; plans a short trip against a live model backend and prints the result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"trek/internal/config"
	"trek/internal/destinations"
	"trek/internal/llm"
	"trek/internal/planner"
)

func main() {
	destination := flag.String("destination", "Paris", "destination to plan")
	days := flag.Int("days", 3, "trip length in days")
	budget := flag.String("budget", "midrange", "budget tier")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	completer := llm.NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	svc := planner.NewService(completer, destinations.NewStaticProvider())

	result, err := svc.Plan(context.Background(), planner.TripRequest{
		Destination: *destination,
		Days:        *days,
		Budget:      *budget,
	})
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	fmt.Println(result.Itinerary.Text)
	fmt.Printf("Estimated cost: %d\n", result.EstimatedCost)
	out, _ := json.MarshalIndent(result.Itinerary.Structured, "", "  ")
	fmt.Println(string(out))
}
