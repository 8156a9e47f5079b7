package dto

import (
	"time"

	"github.com/google/uuid"
)

// SelectionRequest updates a session selection. A nil field keeps the
// current value; an empty list selects nothing.
type SelectionRequest struct {
	Countries   []string `json:"countries" validate:"max=1000,dive,max=256"`
	Products    []string `json:"products" validate:"max=1000,dive,max=256"`
	Competitors []string `json:"competitors" validate:"max=1000,dive,max=256"`
}

type SelectionResponse struct {
	Countries   []string `json:"countries"`
	Products    []string `json:"products"`
	Competitors []string `json:"competitors"`
}

type MetricsResponse struct {
	TotalLeads   int      `json:"total_leads"`
	AvgFrequency *float64 `json:"avg_frequency"`
	TopProduct   string   `json:"top_product"`
	TopSupplier  string   `json:"top_supplier"`
}

type ChartPointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type ChartResponse struct {
	Key       string               `json:"key"`
	Heading   string               `json:"heading"`
	Title     string               `json:"title"`
	Kind      string               `json:"kind"`
	Dimension string               `json:"dimension"`
	XLabel    string               `json:"x_label"`
	YLabel    string               `json:"y_label"`
	Points    []ChartPointResponse `json:"points"`
}

type DashboardResponse struct {
	Selection SelectionResponse `json:"selection"`
	Metrics   MetricsResponse   `json:"metrics"`
	Charts    []ChartResponse   `json:"charts"`
}

type LeadResponse struct {
	Country    string            `json:"country"`
	Product    string            `json:"product"`
	Competitor string            `json:"competitor"`
	Industry   string            `json:"industry"`
	Supplier   string            `json:"supplier"`
	Frequency  float64           `json:"frequency"`
	ImportDate string            `json:"import_date"`
	LeadScore  int               `json:"lead_score"`
	Extra      map[string]string `json:"extra,omitempty"`
}

type LeadTableResponse struct {
	Total   int            `json:"total"`
	Columns []string       `json:"columns"`
	Leads   []LeadResponse `json:"leads"`
}

type FilterOptionsResponse struct {
	Title       string            `json:"title"`
	Countries   []string          `json:"countries"`
	Products    []string          `json:"products"`
	Competitors []string          `json:"competitors"`
	Default     SelectionResponse `json:"default"`
}

type SessionResponse struct {
	Id        uuid.UUID         `json:"id"`
	Selection SelectionResponse `json:"selection"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ExportResult is the downloadable CSV for one selection.
type ExportResult struct {
	FileName    string
	ContentType string
	Rows        int
	Content     []byte
}

type ActivityResponse struct {
	SessionsCreated   int        `json:"sessions_created"`
	SelectionsChanged int        `json:"selections_changed"`
	DashboardsViewed  int        `json:"dashboards_viewed"`
	ExportsGenerated  int        `json:"exports_generated"`
	ExportedRows      int        `json:"exported_rows"`
	LastEventAt       *time.Time `json:"last_event_at"`
}

type HealthResponse struct {
	Source   string    `json:"source"`
	Leads    int       `json:"leads"`
	LoadedAt time.Time `json:"loaded_at"`
}

const (
	WsMessageDashboard = "dashboard"
	WsMessageError     = "error"
)

// WsMessage is the server-to-client frame on the live dashboard socket.
type WsMessage struct {
	Type    string             `json:"type"`
	Message string             `json:"message,omitempty"`
	Data    *DashboardResponse `json:"data,omitempty"`
}

func NewDashboardMessage(d *DashboardResponse) WsMessage {
	return WsMessage{Type: WsMessageDashboard, Data: d}
}

func NewErrorMessage(message string) WsMessage {
	return WsMessage{Type: WsMessageError, Message: message}
}
