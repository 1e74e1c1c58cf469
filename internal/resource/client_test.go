package resource

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"wuwaconv/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	client := NewClient(config.Config{
		APIBaseURL:   "https://example.test",
		APILocale:    "zh-Hans",
		APITimeoutMs: 1000,
	})
	client.httpClient = &http.Client{Transport: rt}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchWeapons(t *testing.T) {
	client := testClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/zh-Hans/weapon" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"weapons":[{"Id":21010026,"Name":"远行者臂铠·破障"},{"Id":0,"Name":"skip"},{"Id":3,"Name":""}]}`), nil
	})

	weapons, err := client.FetchWeapons(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(weapons) != 1 {
		t.Fatalf("len=%d", len(weapons))
	}
	if weapons[21010026] != "远行者臂铠·破障" {
		t.Fatalf("map=%v", weapons)
	}
}

func TestFetchCharactersBareArray(t *testing.T) {
	client := testClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/zh-Hans/character" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		return jsonResponse(http.StatusOK, `[{"Id":1205,"Name":"长离"}]`), nil
	})

	characters, err := client.FetchCharacters(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if characters[1205] != "长离" {
		t.Fatalf("map=%v", characters)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	client := testClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `boom`), nil
	})

	if _, err := client.FetchWeapons(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	client := testClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"weapons": "nope"}`), nil
	})

	if _, err := client.FetchWeapons(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
