package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acm-uic/acm-catalog/internal/agent/api"
	"github.com/acm-uic/acm-catalog/internal/shared/models"
)

func TestClient_ListItems_NoToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		// чтение каталога публичное, заголовок Authorization не нужен
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Fatalf("unexpected Authorization header: %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ItemListResponse{
			Success: true,
			Items: []models.Item{
				{ID: "id-1", Name: "Oscilloscope", Qty: 3},
				{ID: "id-2", Name: "Soldering iron", Qty: 7},
			},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.ListItems()
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
	if resp.Items[0].Name != "Oscilloscope" {
		t.Fatalf("unexpected item: %+v", resp.Items[0])
	}
}

func TestClient_GetItem_ByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items/id-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ItemResponse{
			Success: true,
			Item:    models.Item{ID: "id-1", Name: "Oscilloscope", Description: "Rigol DS1054Z", Qty: 3},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.GetItem("id-1")
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if resp.Item.Description != "Rigol DS1054Z" {
		t.Fatalf("unexpected item: %+v", resp.Item)
	}
}

func TestClient_GetItem_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Item not found",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.GetItem("missing")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Item not found" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_CreateItem_SendsTokenAndBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Bearer token-1, got %q", auth)
		}

		var req models.CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Multimeter" || req.Qty != 5 {
			t.Fatalf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.ItemResponse{
			Success: true,
			Item:    models.Item{ID: "id-3", Name: req.Name, Qty: req.Qty},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.CreateItem(models.CreateItemRequest{Name: "Multimeter", Qty: 5}, "token-1")
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}
	if resp.Item.ID != "id-3" {
		t.Fatalf("unexpected item: %+v", resp.Item)
	}
}

func TestClient_UpdateItem_PartialBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items/id-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}

		// omitempty: незаданные поля не должны попасть в JSON
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := raw["name"]; ok {
			t.Fatal("name must be omitted")
		}
		if qty, ok := raw["qty"]; !ok || qty != float64(9) {
			t.Fatalf("unexpected qty: %v", raw["qty"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ItemResponse{
			Success: true,
			Item:    models.Item{ID: "id-1", Name: "Oscilloscope", Qty: 9},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	qty := 9
	resp, err := c.UpdateItem("id-1", models.UpdateItemRequest{Qty: &qty}, "token-1")
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if resp.Item.Qty != 9 {
		t.Fatalf("unexpected item: %+v", resp.Item)
	}
}

func TestClient_DeleteItem_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog/items/id-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Not authorized, no token",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.DeleteItem("id-1", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Not authorized, no token" {
		t.Fatalf("unexpected error: %v", err)
	}
}
