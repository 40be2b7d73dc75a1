// Command smoketest exercises a running symptom checker instance end to end.
// Point it at a server with BASE_URL (default http://localhost:8080); it
// exits non-zero if any check fails.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

type analysisResponse struct {
	Conditions []string `json:"conditions"`
	Advice     string   `json:"advice"`
	Urgent     bool     `json:"urgent"`
}

type symptomsResponse struct {
	Symptoms []string `json:"symptoms"`
	Count    int      `json:"count"`
}

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	failures := 0
	fail := func(format string, args ...any) {
		failures++
		fmt.Printf("FAIL: "+format+"\n", args...)
	}
	pass := func(format string, args ...any) {
		fmt.Printf("ok:   "+format+"\n", args...)
	}

	// Health check first; nothing else is worth running if this fails.
	resp, err := client.R().Get("/health")
	if err != nil {
		fmt.Printf("FAIL: could not reach %s: %v\n", baseURL, err)
		fmt.Println("is the server running?")
		os.Exit(1)
	}
	if resp.StatusCode() != http.StatusOK {
		fail("health check returned %d", resp.StatusCode())
	} else {
		pass("health check")
	}

	var symptoms symptomsResponse
	resp, err = client.R().SetResult(&symptoms).Get("/symptoms")
	if err != nil || resp.StatusCode() != http.StatusOK {
		fail("get symptoms: err=%v status=%d", err, resp.StatusCode())
	} else if symptoms.Count != len(symptoms.Symptoms) || symptoms.Count == 0 {
		fail("symptom list inconsistent: count=%d len=%d", symptoms.Count, len(symptoms.Symptoms))
	} else {
		pass("symptom list (%d entries)", symptoms.Count)
	}

	checks := []struct {
		input        string
		expectUrgent bool
	}{
		{"I have a headache", false},
		{"I have chest pain and shortness of breath", true},
		{"I have a fever and cough", false},
		{"I have severe abdominal pain", true},
		{"I have dizziness and nausea", false},
		{"I have purple spots on my elbow", false},
	}
	for _, check := range checks {
		var result analysisResponse
		resp, err := client.R().
			SetBody(map[string]string{"input": check.input}).
			SetResult(&result).
			Post("/check-symptoms")
		switch {
		case err != nil:
			fail("check %q: %v", check.input, err)
		case resp.StatusCode() != http.StatusOK:
			fail("check %q: status %d, body %s", check.input, resp.StatusCode(), resp.String())
		case len(result.Conditions) == 0:
			fail("check %q: empty conditions", check.input)
		case result.Urgent != check.expectUrgent:
			fail("check %q: urgent=%v, expected %v", check.input, result.Urgent, check.expectUrgent)
		default:
			pass("check %q → %v (urgent=%v)", check.input, result.Conditions, result.Urgent)
		}
	}

	errorCases := []struct {
		name string
		body any
	}{
		{"missing input field", map[string]string{}},
		{"empty input", map[string]string{"input": ""}},
	}
	for _, ec := range errorCases {
		resp, err := client.R().SetBody(ec.body).Post("/check-symptoms")
		if err != nil {
			fail("%s: %v", ec.name, err)
		} else if resp.StatusCode() != http.StatusBadRequest {
			fail("%s: expected 400, got %d", ec.name, resp.StatusCode())
		} else {
			pass("%s rejected with 400", ec.name)
		}
	}

	if failures > 0 {
		fmt.Printf("\n%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nall checks passed")
}
