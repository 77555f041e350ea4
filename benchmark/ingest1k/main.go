package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxSensors int = 1000
var readingsPerSensor int = 3
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var metricTypes = []string{"temperature", "humidity", "wind_speed"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxSensors; i++ {
		i := i
		wg.Add(1)
		go func() {
			postReadings(i + 1)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	total := maxSensors * readingsPerSensor
	fmt.Printf(
		"ingested %v readings for %v sensors: used time=%v seconds, throughput=%v readings/second\n",
		total, maxSensors, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postReadings(sensorID int) {
	for n := 0; n < readingsPerSensor; n++ {
		payload := map[string]any{
			"sensor_id":   sensorID,
			"metric_type": metricTypes[rnd.Intn(len(metricTypes))],
			"value":       rndFloat64(-20.0, 100.0, 2),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/metrics", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			panic(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			panic(fmt.Sprintf("unexpected status %v for sensor %v", resp.StatusCode, sensorID))
		}
	}
}
