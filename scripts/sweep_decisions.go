// sweep_decisions.go records a grid of health/enemy readings through the Fuzzy API.
//
// Usage:
//
//	go run scripts/sweep_decisions.go -api http://localhost:8700 -client sweep -health-step 10 -enemies-step 1
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
)

type reading struct {
	Health  float64 `json:"health"`
	Enemies float64 `json:"enemies"`
}

type decisionRecord struct {
	Action  string  `json:"action"`
	Utility float64 `json:"utility"`
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Fuzzy API base URL")
	clientID := flag.String("client", "sweep", "X-Client-ID header value")
	healthStep := flag.Float64("health-step", 10, "health increment across 0-100")
	enemiesStep := flag.Float64("enemies-step", 1, "enemy count increment across 0-10")
	dryRun := flag.Bool("dry-run", false, "print readings without posting")
	flag.Parse()

	if *healthStep <= 0 || *enemiesStep <= 0 {
		log.Fatal("steps must be positive")
	}

	var readings []reading
	for h := 0.0; h <= 100; h += *healthStep {
		for e := 0.0; e <= 10; e += *enemiesStep {
			readings = append(readings, reading{Health: h, Enemies: e})
		}
	}

	if *dryRun {
		for i, r := range readings {
			fmt.Printf("[%d] health=%g enemies=%g\n", i+1, r.Health, r.Enemies)
		}
		return
	}

	client := &http.Client{}
	actions := make(map[string]int)
	failed := 0
	for _, r := range readings {
		body, _ := json.Marshal(r)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/decisions", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %+v: %v", r, err)
			failed++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-ID", *clientID)

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %+v: %v", r, err)
			failed++
			continue
		}

		var rec decisionRecord
		if resp.StatusCode == http.StatusCreated {
			if err := json.NewDecoder(resp.Body).Decode(&rec); err == nil {
				actions[rec.Action]++
			}
		} else {
			log.Printf("skip %+v: status %d", r, resp.StatusCode)
			failed++
		}
		resp.Body.Close()
	}

	names := make([]string, 0, len(actions))
	for a := range actions {
		names = append(names, a)
	}
	sort.Strings(names)
	for _, a := range names {
		log.Printf("%s: %d", a, actions[a])
	}
	log.Printf("done: %d readings, %d failed", len(readings), failed)
}
