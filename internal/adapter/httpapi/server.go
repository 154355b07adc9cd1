package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/shop-order-service/internal/domain"
)

// Server exposes a read-only storefront view of the catalog and the
// pending orders. It never mutates state; the order engine stays the
// sole writer.
type Server struct {
	Router  *mux.Router
	Catalog domain.Catalog
	Ledger  domain.Ledger
}

func NewServer(cat domain.Catalog, led domain.Ledger) *Server {
	s := &Server{Router: mux.NewRouter(), Catalog: cat, Ledger: led}
	s.Router.HandleFunc("/api/shops", s.handleShops).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/shops/{name}", s.handleShop).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/orders/{buyer}", s.handleOrders).Methods(http.MethodGet)
	return s
}

func (s *Server) handleShops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Catalog.Shops())
}

func (s *Server) handleShop(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	known := false
	for _, shop := range s.Catalog.Shops() {
		if shop == name {
			known = true
			break
		}
	}
	if !known {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	entries := s.Catalog.Entries(name)
	if entries == nil {
		entries = []domain.CatalogEntry{}
	}
	writeJSON(w, entries)
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	buyer := mux.Vars(r)["buyer"]
	orders := s.Ledger.PendingFor(buyer)
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, orders)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
