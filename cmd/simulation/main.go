package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Scripted shopping trip against a running instance. Useful for demos and
// smoke-testing a deployment without the tablet UI.

var (
	header    = color.New(color.FgCyan, color.Bold)
	shopper   = color.New(color.FgYellow)
	assistant = color.New(color.FgGreen)
	failure   = color.New(color.FgRed, color.Bold)
)

type baseResponse struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	SessionId uuid.UUID `json:"session_id"`
}

type utteranceData struct {
	Intent     string `json:"intent"`
	Response   string `json:"response"`
	ActiveView string `json:"active_view"`
}

type summaryData struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

type paymentData struct {
	Status string  `json:"status"`
	Paid   float64 `json:"paid"`
	Method string  `json:"method"`
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:3000", "server base URL")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	header.Println("=== Smart Trolley simulation ===")

	var session sessionData
	if err := call(client, http.MethodPost, *baseURL+"/api/assistant/session", nil, &session); err != nil {
		log.Fatalf("create session: %v", err)
	}
	header.Printf("Session: %s\n\n", session.SessionId)

	script := []string{
		"where can I find bread",
		"add milk to my list",
		"add caviar to my list",
		"show my list",
		"I want to checkout",
	}

	for _, utterance := range script {
		shopper.Printf("🛒 %q\n", utterance)
		var res utteranceData
		body := map[string]interface{}{
			"session_id": session.SessionId,
			"utterance":  utterance,
		}
		if err := call(client, http.MethodPost, *baseURL+"/api/assistant/utterance", body, &res); err != nil {
			failure.Printf("   error: %v\n", err)
			continue
		}
		assistant.Printf("🤖 [%s → %s] %s\n\n", res.Intent, res.ActiveView, res.Response)
		time.Sleep(300 * time.Millisecond)
	}

	var summary summaryData
	if err := call(client, http.MethodGet, fmt.Sprintf("%s/api/checkout/summary/%s", *baseURL, session.SessionId), nil, &summary); err != nil {
		log.Fatalf("summary: %v", err)
	}
	header.Printf("Order: subtotal %.2f + tax %.2f = %.2f %s\n", summary.Subtotal, summary.Tax, summary.Total, summary.Currency)

	var payment paymentData
	payBody := map[string]interface{}{
		"session_id": session.SessionId,
		"method":     "qpay",
		"qpay_phone": "555-0100",
	}
	if err := call(client, http.MethodPost, *baseURL+"/api/checkout/pay", payBody, &payment); err != nil {
		log.Fatalf("pay: %v", err)
	}
	header.Printf("Payment: %s, paid %.2f via %s\n", payment.Status, payment.Paid, payment.Method)
}

func call(client *http.Client, method, url string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var base baseResponse
	if err := json.NewDecoder(resp.Body).Decode(&base); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !base.Success {
		return fmt.Errorf("server error %d: %s", base.Code, base.Message)
	}
	if out != nil {
		return json.Unmarshal(base.Data, out)
	}
	return nil
}
