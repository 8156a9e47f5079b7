package service

import (
	"context"

	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/entity"
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/pkg/events"
	"lead-generator-be/pkg/leads/dashboard"
	"lead-generator-be/pkg/leads/export"
	"lead-generator-be/pkg/leads/filter"
	"lead-generator-be/pkg/leads/store"
)

// DashboardTitle is shown above the filters.
const DashboardTitle = "Lead Generation Engine"

type ILeadService interface {
	DefaultSelection() entity.Selection
	Options(ctx context.Context) *dto.FilterOptionsResponse
	Dashboard(ctx context.Context, sel entity.Selection) *dto.DashboardResponse
	Table(ctx context.Context, sel entity.Selection) *dto.LeadTableResponse
	Export(ctx context.Context, sel entity.Selection) (*dto.ExportResult, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type leadService struct {
	snapshot       *store.Snapshot
	aggregator     *dashboard.Aggregator
	exporter       *export.Exporter
	mapper         *mapper.LeadMapper
	publisher      IPublisherService
	logger         logger.ILogger
	exportFileName string
}

func NewLeadService(
	snapshot *store.Snapshot,
	aggregator *dashboard.Aggregator,
	exporter *export.Exporter,
	mapper *mapper.LeadMapper,
	publisher IPublisherService,
	logger logger.ILogger,
	exportFileName string,
) ILeadService {
	if exportFileName == "" {
		exportFileName = export.DefaultFileName
	}
	return &leadService{
		snapshot:       snapshot,
		aggregator:     aggregator,
		exporter:       exporter,
		mapper:         mapper,
		publisher:      publisher,
		logger:         logger,
		exportFileName: exportFileName,
	}
}

func (s *leadService) DefaultSelection() entity.Selection {
	return filter.Default(s.snapshot)
}

func (s *leadService) Options(ctx context.Context) *dto.FilterOptionsResponse {
	return &dto.FilterOptionsResponse{
		Title:       DashboardTitle,
		Countries:   s.snapshot.Options(entity.DimensionCountry),
		Products:    s.snapshot.Options(entity.DimensionProduct),
		Competitors: s.snapshot.Options(entity.DimensionCompetitor),
		Default:     mapper.ToSelectionResponse(s.DefaultSelection()),
	}
}

func (s *leadService) Dashboard(ctx context.Context, sel entity.Selection) *dto.DashboardResponse {
	filtered := filter.Apply(s.snapshot.Leads(), sel)
	res := s.mapper.ToDashboardResponse(sel, s.aggregator.Build(filtered))

	s.publisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeDashboardViewed,
		Data: map[string]interface{}{"rows": len(filtered)},
	})
	return res
}

func (s *leadService) Table(ctx context.Context, sel entity.Selection) *dto.LeadTableResponse {
	filtered := filter.Apply(s.snapshot.Leads(), sel)
	return s.mapper.ToLeadTableResponse(filtered, s.exporter.Header())
}

func (s *leadService) Export(ctx context.Context, sel entity.Selection) (*dto.ExportResult, error) {
	filtered := filter.Apply(s.snapshot.Leads(), sel)
	content, err := s.exporter.Export(filtered)
	if err != nil {
		s.logger.Error("LeadService", "Export failed", map[string]interface{}{"rows": len(filtered), "error": err.Error()})
		return nil, err
	}

	s.publisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeExportGenerated,
		Data: map[string]interface{}{"rows": len(filtered), "bytes": len(content)},
	})
	return &dto.ExportResult{
		FileName:    s.exportFileName,
		ContentType: export.ContentType,
		Rows:        len(filtered),
		Content:     content,
	}, nil
}

func (s *leadService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Source:   s.snapshot.Source(),
		Leads:    s.snapshot.Len(),
		LoadedAt: s.snapshot.LoadedAt(),
	}
}
