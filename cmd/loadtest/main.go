package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"scrapquote/internal/env"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type vehicle struct {
	make  string
	model string
}

var vehicles = []vehicle{
	{make: "Toyota", model: "Corolla"},
	{make: "Honda", model: "Civic"},
	{make: "Ford", model: "F-150"},
	{make: "Chevrolet", model: "Malibu"},
	{make: "Mazda", model: "3"},
	{make: "Hyundai", model: "Elantra"},
}

func randomQuery(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	v := vehicles[rand.Intn(len(vehicles))]
	q := u.Query()
	q.Set("year", strconv.Itoa(2000+rand.Intn(25)))
	q.Set("make", v.make)
	q.Set("model", v.model)
	if rand.Intn(2) == 1 {
		q.Set("isOntario", strconv.FormatBool(rand.Intn(2) == 1))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

func main() {

	env.LoadEnv()
	if needTest := os.Getenv("NEED_TEST"); needTest != "true" {
		return
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	target := "http://localhost:8080/get_vehicle_weight"
	concurrency := flag.Int("concurrency", 20, "Number of concurrent workers")
	duration := flag.Duration("duration", 5*time.Second, "Duration of the load test")
	flag.Parse()

	if envURL := os.Getenv("TARGET_URL"); envURL != "" {
		target = envURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info().
		Str("target", target).
		Int("concurrency", *concurrency).
		Dur("duration", *duration).
		Msg("Starting load test")

	startTime := time.Now()
	var wg sync.WaitGroup
	var latencies []time.Duration
	codes := make(map[int]int)
	var mu sync.Mutex

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			client := &http.Client{}
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				reqURL, err := randomQuery(target)
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error building url")
					return
				}

				req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error creating request")
					continue
				}

				reqStart := time.Now()
				resp, err := client.Do(req)
				latency := time.Since(reqStart)

				if err != nil {
					if ctx.Err() == nil {
						log.Error().Err(err).Int("worker", workerID).Msg("Error sending request")
					}
					continue
				}
				_ = resp.Body.Close()

				mu.Lock()
				latencies = append(latencies, latency)
				codes[resp.StatusCode]++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		log.Info().
			Str("50th_percentile", percentile(latencies, 0.5).String()).
			Str("99th_percentile", percentile(latencies, 0.99).String()).
			Msg("latency")
	}

	totalTime := time.Since(startTime).Seconds()
	for code, n := range codes {
		log.Info().Int("code", code).Int("count", n).Msg("responses")
	}
	log.Info().
		Int("total_requests", len(latencies)).
		Float64("rps", float64(len(latencies))/totalTime).
		Msg("Load test completed")
}
