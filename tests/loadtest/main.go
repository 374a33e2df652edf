package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8087"
	numWorkers   = 20
	testDuration = 10 * time.Second
	firstYear    = 2022
	numYears     = 3
)

var units = []string{"glass", "bottle"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== DrinkDays Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Years: %d-%d\n\n", firstYear, firstYear+numYears-1)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding records (POST /records) ---")
	runPhase(testDuration, doPost)

	// Writes bump the record version, so every read below starts cold.
	fmt.Println("\n--- Phase 2: Mixed load (30% POST, 70% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.30 {
			return doPost(rng)
		}
		return doRead(rng)
	})

	fmt.Println("\n--- Phase 3: Read-only load (memoized) ---")
	runPhase(testDuration, doRead)
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func randomDate(rng *rand.Rand) (int, int, int) {
	year := firstYear + rng.Intn(numYears)
	month := rng.Intn(12) + 1
	day := rng.Intn(time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()) + 1
	return year, month, day
}

func doPost(rng *rand.Rand) result {
	year, month, day := randomDate(rng)
	body := map[string]interface{}{
		"date":  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		"drank": rng.Float64() < 0.4,
	}
	if body["drank"] == true {
		body["amount"] = rng.Intn(6) + 1
		body["unit"] = units[rng.Intn(len(units))]
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/records", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /records", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /records", resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doRead(rng *rand.Rand) result {
	year, month, _ := randomDate(rng)
	r := rng.Float64()
	switch {
	case r < 0.30:
		return doGet("/stats/month", fmt.Sprintf("year=%d&month=%d", year, month))
	case r < 0.45:
		return doGet("/stats/year", fmt.Sprintf("year=%d", year))
	case r < 0.60:
		return doGet("/stats/week", fmt.Sprintf("offset=%d", -rng.Intn(numYears*52)))
	case r < 0.70:
		return doGet("/stats/streaks", "")
	case r < 0.80:
		return doGet("/stats/weekdays", "")
	case r < 0.90:
		return doGet("/calendar", fmt.Sprintf("year=%d&month=%d", year, month))
	default:
		return doGet("/records", fmt.Sprintf("prefix=%04d-%02d", year, month))
	}
}

func doGet(path, query string) result {
	url := baseURL + path
	if query != "" {
		url += "?" + query
	}
	endpoint := "GET " + path
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
