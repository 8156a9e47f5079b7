package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/internal/repository/memory"
	"lead-generator-be/pkg/events"
	"lead-generator-be/pkg/leads/dashboard"
	"lead-generator-be/pkg/leads/export"
	"lead-generator-be/pkg/leads/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate\n" +
	"DE,AC,ABB,Mining,S1,10,2024-01-05\n" +
	"DE,DC,WEG,Food,S2,30,2024-02-10\n" +
	"FR,AC,,Mining,S1,20,2024-03-15\n"

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.BaseEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.BaseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type recordingBroadcaster struct {
	sessionID uuid.UUID
	payloads  [][]byte
}

func (b *recordingBroadcaster) BroadcastToSession(id uuid.UUID, payload []byte) {
	b.sessionID = id
	b.payloads = append(b.payloads, payload)
}

func newLeadService(t *testing.T, pub IPublisherService) ILeadService {
	t.Helper()
	snap, err := store.Parse(strings.NewReader(source), store.Options{})
	require.NoError(t, err)

	log := logger.NewNopLogger()
	return NewLeadService(
		snap,
		dashboard.NewAggregator(log),
		export.NewExporter(snap.Columns(), store.DefaultDateLayout),
		mapper.NewLeadMapper(store.DefaultDateLayout),
		pub,
		log,
		"",
	)
}

func TestLeadService(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newLeadService(t, pub)
	ctx := context.Background()

	t.Run("Default selection", func(t *testing.T) {
		sel := svc.DefaultSelection()
		assert.Equal(t, []string{"DE", "FR"}, sel.Countries)
		assert.Equal(t, []string{"AC", "DC"}, sel.Products)
		assert.Empty(t, sel.Competitors)
	})

	t.Run("Options list the empty competitor", func(t *testing.T) {
		res := svc.Options(ctx)
		assert.Equal(t, DashboardTitle, res.Title)
		assert.Equal(t, []string{"", "ABB", "WEG"}, res.Competitors)
	})

	t.Run("Dashboard", func(t *testing.T) {
		res := svc.Dashboard(ctx, svc.DefaultSelection())
		assert.Equal(t, 3, res.Metrics.TotalLeads)
		require.NotNil(t, res.Metrics.AvgFrequency)
		assert.Equal(t, 20.0, *res.Metrics.AvgFrequency)
		assert.Contains(t, pub.types(), events.TypeDashboardViewed)
	})

	t.Run("Export", func(t *testing.T) {
		res, err := svc.Export(ctx, svc.DefaultSelection())
		require.NoError(t, err)
		assert.Equal(t, export.DefaultFileName, res.FileName)
		assert.Equal(t, export.ContentType, res.ContentType)
		assert.Equal(t, 3, res.Rows)
		assert.True(t, strings.HasPrefix(string(res.Content), "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate,LeadScore\n"))
		assert.Contains(t, pub.types(), events.TypeExportGenerated)
	})

	t.Run("Health", func(t *testing.T) {
		assert.Equal(t, 3, svc.Health(ctx).Leads)
	})
}

func TestSessionService(t *testing.T) {
	pub := &recordingPublisher{}
	bc := &recordingBroadcaster{}
	repo := memory.NewSessionRepository(time.Hour, time.Minute)
	svc := NewSessionService(repo, newLeadService(t, pub), bc, pub, logger.NewNopLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"DE", "FR"}, created.Selection.Countries)
	assert.Contains(t, pub.types(), events.TypeSessionCreated)

	t.Run("Update broadcasts the new dashboard", func(t *testing.T) {
		res, err := svc.UpdateSelection(ctx, created.Id, dto.SelectionRequest{Competitors: []string{"ABB"}})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Metrics.TotalLeads)
		assert.Equal(t, []string{"DE", "FR"}, res.Selection.Countries)

		require.Len(t, bc.payloads, 1)
		assert.Equal(t, created.Id, bc.sessionID)
		var msg dto.WsMessage
		require.NoError(t, json.Unmarshal(bc.payloads[0], &msg))
		assert.Equal(t, dto.WsMessageDashboard, msg.Type)
		require.NotNil(t, msg.Data)
		assert.Equal(t, 1, msg.Data.Metrics.TotalLeads)
	})

	t.Run("Table follows stored selection", func(t *testing.T) {
		res, err := svc.Table(ctx, created.Id)
		require.NoError(t, err)
		require.Len(t, res.Leads, 1)
		assert.Equal(t, "ABB", res.Leads[0].Competitor)
	})

	t.Run("Unknown session", func(t *testing.T) {
		_, err := svc.Dashboard(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.Id))
		_, err := svc.Get(ctx, created.Id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, created.Id), ErrSessionNotFound)
	})
}
