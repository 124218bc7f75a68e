package aur

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExists(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"match", "<html><body>yay 12.0.1</body></html>", true},
		{"no match", "<html><body>No packages matched your search criteria.</body></html>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query().Get("K")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithOptions(server.URL+"/packages/", "", 0)

			got, err := client.Exists(context.Background(), "yay")
			if err != nil {
				t.Fatalf("Exists() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists() = %v, want %v", got, tt.want)
			}
			if query != "yay" {
				t.Errorf("search keyword = %q, want %q", query, "yay")
			}
		})
	}
}

func TestExistsConnectionError(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()

	client := NewClientWithOptions(server.URL+"/packages/", "", 0)

	if _, err := client.Exists(context.Background(), "yay"); err == nil {
		t.Error("expected an error for a refused connection")
	}
}

func TestInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"version":5,"type":"multiinfo","resultcount":1,"results":[{"ID":1,"Name":"yay","PackageBase":"yay","Version":"12.0.1-1","Description":"Yet another yogurt","NumVotes":2000}]}`))
	}))
	defer server.Close()

	client := NewClientWithOptions("", server.URL, 0)

	packages, err := client.Info(context.Background(), "yay")
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("expected 1 result, got %d", len(packages))
	}
	if packages[0].Name != "yay" || packages[0].Version != "12.0.1-1" {
		t.Errorf("unexpected package: %+v", packages[0])
	}
}

func TestInfoEmptyNames(t *testing.T) {
	client := NewClient()

	packages, err := client.Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if packages != nil {
		t.Errorf("expected nil result for no names, got %v", packages)
	}
}

func TestInfoAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":5,"type":"error","resultcount":0,"results":[],"error":"Incorrect by field specified."}`))
	}))
	defer server.Close()

	client := NewClientWithOptions("", server.URL, 0)

	if _, err := client.Info(context.Background(), "yay"); err == nil {
		t.Error("expected an error when the RPC response carries one")
	}
}

func TestGetPackageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":5,"type":"multiinfo","resultcount":0,"results":[]}`))
	}))
	defer server.Close()

	client := NewClientWithOptions("", server.URL, 0)

	if _, err := client.GetPackage(context.Background(), "nope"); err == nil {
		t.Error("expected an error for a missing package")
	}
}
