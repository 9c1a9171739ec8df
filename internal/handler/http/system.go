package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
)

type SystemHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	TestDatabase(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	db *database.DB
}

func NewSystemHandler(db *database.DB) SystemHandler {
	return &systemHandlerImpl{db: db}
}

// Root implements SystemHandler - liveness message.
func (h *systemHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "Attendance API running"})
}

type testDatabaseResponse struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}

// TestDatabase implements SystemHandler - store connectivity probe. This is
// the only endpoint that surfaces store diagnostics, and only as a
// truncated summary.
func (h *systemHandlerImpl) TestDatabase(w http.ResponseWriter, r *http.Request) {
	resp := testDatabaseResponse{
		Backend:     "running",
		Database:    "not-connected",
		Collections: []string{},
	}

	if err := h.db.Ping(r.Context()); err != nil {
		resp.Database = "error: " + truncate(err.Error(), 80)
		response.Success(w, resp)
		return
	}

	resp.Database = "connected"
	tables, err := postgresql.ListTables(r.Context(), h.db)
	if err != nil {
		resp.Database = "error: " + truncate(err.Error(), 80)
		response.Success(w, resp)
		return
	}
	if tables != nil {
		resp.Collections = tables
	}

	response.Success(w, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
