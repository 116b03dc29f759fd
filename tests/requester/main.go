package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var paths = []string{
	"/customer/pickups",
	"/customer/pickups/recent",
	"/partner/pickups",
}

func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		fmt.Println("TOKEN is required")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(token string) {
	path := paths[rand.Intn(len(paths))]
	if rand.Intn(5) == 0 {
		path = fmt.Sprintf("/partner/pickups/%d", time.Now().UnixMilli()-rand.Int63n(1_000_000))
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", path, "->", resp.Status)
	resp.Body.Close()
}
