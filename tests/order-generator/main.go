package main

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"
)

type Item struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Items    []Item `json:"items"`
	Total    int    `json:"total"`
	InitData string `json:"init_data"`
}

var products = []Item{
	{Name: "La Seine Coat Black", Price: 22000},
	{Name: "Paris Hoodie Black", Price: 9000},
	{Name: "Fragment Shirt Grey", Price: 10000},
	{Name: "EDEC T-Shirt Black", Price: 4000},
	{Name: "Diana Bag Black", Price: 50000},
}

// signInitData подписывает параметры тем же алгоритмом, что проверяет сервер.
func signInitData(botToken string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func generateOrder(botToken string) OrderRequest {
	userID := int64(100000000 + rand.Intn(900000000))

	count := 1 + rand.Intn(3)
	items := make([]Item, 0, count)
	total := 0
	for range count {
		item := products[rand.Intn(len(products))]
		item.Quantity = 1 + rand.Intn(2)
		total += item.Price * item.Quantity
		items = append(items, item)
	}

	initData := signInitData(botToken, map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
		"query_id":  fmt.Sprintf("AA%d", rand.Intn(999999)),
		"user":      fmt.Sprintf(`{"id":%d,"username":"load_test"}`, userID),
	})

	return OrderRequest{
		UserID:   userID,
		Username: "load_test",
		Name:     "Load Test",
		Phone:    "+7 (999) 123-45-67",
		Items:    items,
		Total:    total,
		InitData: initData,
	}
}

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateOrder(botToken)
			data, _ := json.Marshal(order)

			res, err := http.Post(baseURL+"/api/orders", "application/json", bytes.NewReader(data))
			if err != nil {
				log.Println("request failed:", err)
				continue
			}
			res.Body.Close()
			log.Println("order sent", res.Status)
		case <-ctx.Done():
			return
		}
	}
}
