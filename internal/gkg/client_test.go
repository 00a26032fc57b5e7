package gkg

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

func stubClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	client, err := NewClient("test-key", 1000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.HTTPClient = &http.Client{
		Transport: roundTrip(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}
		}),
	}
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("", 1000, nil)
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	if !errors.Is(err, ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}
	if !strings.Contains(err.Error(), "API key required") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSuggest_HighScoreReturnsName(t *testing.T) {
	var gotQuery, gotLimit, gotKey string
	client, err := NewClient("test-key", 1000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.HTTPClient = &http.Client{
		Transport: roundTrip(func(req *http.Request) *http.Response {
			q := req.URL.Query()
			gotQuery = q.Get("query")
			gotLimit = q.Get("limit")
			gotKey = q.Get("key")
			return &http.Response{
				StatusCode: 200,
				Body: io.NopCloser(strings.NewReader(`{
					"itemListElement":[{"result":{"name":"Apple Inc."},"resultScore":8117.129883}]
				}`)),
				Header: make(http.Header),
			}
		}),
	}

	got, err := client.Suggest(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "Apple Inc." {
		t.Errorf("expected %q, got %q", "Apple Inc.", got)
	}
	if gotQuery != "Apple" {
		t.Errorf("expected query param %q, got %q", "Apple", gotQuery)
	}
	if gotLimit != "1" {
		t.Errorf("expected limit param %q, got %q", "1", gotLimit)
	}
	if gotKey != "test-key" {
		t.Errorf("expected key param %q, got %q", "test-key", gotKey)
	}
}

func TestSuggest_LowScoreReturnsQuery(t *testing.T) {
	client := stubClient(t, 200, `{"itemListElement":[{"result":{"name":"Banana"},"resultScore":42.5}]}`)

	got, err := client.Suggest(context.Background(), "Bananas")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "Bananas" {
		t.Errorf("expected query back, got %q", got)
	}
}

func TestSuggest_ScoreAtMinimumReturnsQuery(t *testing.T) {
	client := stubClient(t, 200, `{"itemListElement":[{"result":{"name":"Banana"},"resultScore":1000}]}`)

	got, err := client.Suggest(context.Background(), "Bananas")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "Bananas" {
		t.Errorf("expected query back for score == minimum, got %q", got)
	}
}

func TestSuggest_NoResultsReturnsQuery(t *testing.T) {
	client := stubClient(t, 200, `{"itemListElement":[]}`)

	got, err := client.Suggest(context.Background(), "zxqv")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "zxqv" {
		t.Errorf("expected query back, got %q", got)
	}
}

func TestSuggest_QualifyingResultWithoutName(t *testing.T) {
	client := stubClient(t, 200, `{"itemListElement":[{"result":{},"resultScore":5000}]}`)

	got, err := client.Suggest(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty suggestion, got %q", got)
	}
}

func TestSuggest_APIError(t *testing.T) {
	client := stubClient(t, 403, `{"error":{"code":403,"message":"API key not valid"}}`)

	_, err := client.Suggest(context.Background(), "Apple")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected API message in error, got %v", err)
	}
}

func TestSuggest_UnexpectedStatus(t *testing.T) {
	client := stubClient(t, 503, `<html>unavailable</html>`)

	_, err := client.Suggest(context.Background(), "Apple")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Errorf("expected status in error, got %v", err)
	}
}
