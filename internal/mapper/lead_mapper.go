package mapper

import (
	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/entity"
	"lead-generator-be/pkg/leads/dashboard"
	"lead-generator-be/pkg/leads/usage"
)

type LeadMapper struct {
	dateLayout string
}

func NewLeadMapper(dateLayout string) *LeadMapper {
	return &LeadMapper{dateLayout: dateLayout}
}

func (m *LeadMapper) ToLeadResponse(l entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		Country:    l.Country,
		Product:    l.Product,
		Competitor: l.Competitor,
		Industry:   l.Industry,
		Supplier:   l.Supplier,
		Frequency:  l.Frequency,
		ImportDate: l.ImportDate.Format(m.dateLayout),
		LeadScore:  l.LeadScore,
		Extra:      l.Extra,
	}
}

func (m *LeadMapper) ToLeadTableResponse(leads []entity.Lead, columns []string) *dto.LeadTableResponse {
	rows := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, m.ToLeadResponse(l))
	}
	return &dto.LeadTableResponse{
		Total:   len(rows),
		Columns: columns,
		Leads:   rows,
	}
}

func (m *LeadMapper) ToDashboardResponse(sel entity.Selection, d *dashboard.Dashboard) *dto.DashboardResponse {
	charts := make([]dto.ChartResponse, 0, len(d.Charts))
	for _, c := range d.Charts {
		points := make([]dto.ChartPointResponse, 0, len(c.Points))
		for _, p := range c.Points {
			points = append(points, dto.ChartPointResponse{Label: p.Label, Value: p.Value, Count: p.Count})
		}
		charts = append(charts, dto.ChartResponse{
			Key:       c.Key,
			Heading:   c.Heading,
			Title:     c.Title,
			Kind:      string(c.Kind),
			Dimension: string(c.Dimension),
			XLabel:    c.XLabel,
			YLabel:    c.YLabel,
			Points:    points,
		})
	}

	return &dto.DashboardResponse{
		Selection: ToSelectionResponse(sel),
		Metrics: dto.MetricsResponse{
			TotalLeads:   d.Summary.Count,
			AvgFrequency: d.Summary.MeanFrequency,
			TopProduct:   d.Summary.ModalProduct,
			TopSupplier:  d.Summary.ModalSupplier,
		},
		Charts: charts,
	}
}

func ToSelectionResponse(sel entity.Selection) dto.SelectionResponse {
	c := sel.Clone()
	return dto.SelectionResponse{
		Countries:   c.Countries,
		Products:    c.Products,
		Competitors: c.Competitors,
	}
}

func ToSessionResponse(s *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        s.Id,
		Selection: ToSelectionResponse(s.Selection),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToActivityResponse(s usage.Stats) *dto.ActivityResponse {
	res := &dto.ActivityResponse{
		SessionsCreated:   s.SessionsCreated,
		SelectionsChanged: s.SelectionsChanged,
		DashboardsViewed:  s.DashboardsViewed,
		ExportsGenerated:  s.ExportsGenerated,
		ExportedRows:      s.ExportedRows,
	}
	if !s.LastEventAt.IsZero() {
		last := s.LastEventAt
		res.LastEventAt = &last
	}
	return res
}

// ApplySelectionRequest overlays the non-nil fields of req onto current.
func ApplySelectionRequest(current entity.Selection, req dto.SelectionRequest) entity.Selection {
	next := current.Clone()
	if req.Countries != nil {
		next.Countries = append([]string{}, req.Countries...)
	}
	if req.Products != nil {
		next.Products = append([]string{}, req.Products...)
	}
	if req.Competitors != nil {
		next.Competitors = append([]string{}, req.Competitors...)
	}
	return next
}
