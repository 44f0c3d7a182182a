package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"saunie/internal/shared/config"
	"saunie/internal/shared/constants"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// CheckResult is one request against a cached endpoint
type CheckResult struct {
	Endpoint     string        `json:"endpoint"`
	Attempt      int           `json:"attempt"`
	StatusCode   int           `json:"statusCode"`
	ResponseTime time.Duration `json:"responseTime"`
	DataSize     int           `json:"dataSize"`
	KeyPresent   bool          `json:"keyPresent"`
	Error        string        `json:"error,omitempty"`
}

type endpointCheck struct {
	name     string
	endpoint string
	cacheKey string
}

type CacheCheck struct {
	baseURL string
	redis   *redis.Client
	http    *http.Client
	results []CheckResult
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	baseURL := flag.String("base-url", "http://localhost:"+cfg.Port+cfg.GetAPIBasePath(), "console API base URL")
	tripID := flag.String("trip", "", "trip id to check the detail cache with")
	patronID := flag.String("patron", "", "patron id to check the detail cache with")
	output := flag.String("out", "", "write the JSON report to this file")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx := context.Background()

	fmt.Println("🧪 Starting cache check...")
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	fmt.Println("✅ Redis connection: OK")

	checks := []endpointCheck{
		{"Trip list page 1", "/trips?page=1&limit=10", constants.BuildTripListKey(1, 10, "")},
		{"Trip list page 2", "/trips?page=2&limit=10", constants.BuildTripListKey(2, 10, "")},
		{"Dashboard", "/dashboard/stats", constants.CACHE_KEY_ANALYTICS_DASHBOARD},
	}
	if *tripID != "" {
		checks = append(checks, endpointCheck{"Trip detail", "/trips/" + *tripID, constants.BuildTripDetailKey(*tripID)})
	}
	if *patronID != "" {
		checks = append(checks, endpointCheck{"Patron detail", "/patrons/" + *patronID, constants.BuildPatronDetailKey(*patronID)})
	}

	check := &CacheCheck{
		baseURL: *baseURL,
		redis:   client,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	for _, p := range checks {
		fmt.Printf("\n🔍 %s\n", p.name)
		// drop the key so the first request is a guaranteed miss
		if err := client.Del(ctx, p.cacheKey).Err(); err != nil {
			log.Printf("   failed to clear %s: %v", p.cacheKey, err)
		}

		first := check.run(ctx, p, 1)
		second := check.run(ctx, p, 2)

		if first.Error == "" && second.Error == "" && first.ResponseTime > 0 {
			improvement := float64(first.ResponseTime-second.ResponseTime) / float64(first.ResponseTime) * 100
			fmt.Printf("   📈 %.1f%% faster on the cached read (%v -> %v)\n", improvement, first.ResponseTime, second.ResponseTime)
		}
	}

	failed := check.report(*output)
	if failed > 0 {
		os.Exit(1)
	}
}

func (c *CacheCheck) run(ctx context.Context, p endpointCheck, attempt int) CheckResult {
	result := CheckResult{Endpoint: p.endpoint, Attempt: attempt}

	start := time.Now()
	resp, err := c.http.Get(c.baseURL + p.endpoint)
	if err != nil {
		result.Error = err.Error()
		c.record(result)
		return result
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	result.ResponseTime = time.Since(start)
	result.StatusCode = resp.StatusCode
	result.DataSize = len(body)
	if err != nil {
		result.Error = err.Error()
	} else if resp.StatusCode >= http.StatusBadRequest {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	exists, err := c.redis.Exists(ctx, p.cacheKey).Result()
	if err != nil && result.Error == "" {
		result.Error = err.Error()
	}
	result.KeyPresent = exists == 1
	if result.Error == "" && !result.KeyPresent {
		result.Error = "cache key not written: " + p.cacheKey
	}

	c.record(result)
	return result
}

func (c *CacheCheck) record(result CheckResult) {
	c.results = append(c.results, result)

	icon := "✅"
	if result.Error != "" {
		icon = "❌"
	}
	cacheIcon := "💾"
	if result.Attempt > 1 {
		cacheIcon = "🔥"
	}
	fmt.Printf("   %s %s #%d %v (%d bytes) key=%t %s\n",
		icon, cacheIcon, result.Attempt, result.ResponseTime, result.DataSize, result.KeyPresent, result.Error)
}

// report prints the summary and returns the number of failed requests
func (c *CacheCheck) report(output string) int {
	fmt.Println("\n📊 CACHE CHECK REPORT")
	fmt.Println("=====================")

	failed := 0
	var missTime, hitTime time.Duration
	var misses, hits int
	for _, r := range c.results {
		if r.Error != "" {
			failed++
			continue
		}
		if r.Attempt == 1 {
			misses++
			missTime += r.ResponseTime
		} else {
			hits++
			hitTime += r.ResponseTime
		}
	}

	fmt.Printf("Requests: %d, failed: %d\n", len(c.results), failed)
	if misses > 0 && hits > 0 {
		avgMiss := missTime / time.Duration(misses)
		avgHit := hitTime / time.Duration(hits)
		fmt.Printf("Average miss: %v, average hit: %v\n", avgMiss, avgHit)
	}

	if output != "" {
		data, err := json.MarshalIndent(map[string]interface{}{
			"failed":  failed,
			"results": c.results,
		}, "", "  ")
		if err == nil {
			err = os.WriteFile(output, data, 0o644)
		}
		if err != nil {
			log.Printf("failed to write report: %v", err)
		} else {
			fmt.Printf("💾 Detailed results saved to %s\n", output)
		}
	}
	return failed
}
