package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guardian-sec/guardian-console/internal/api"
	"github.com/guardian-sec/guardian-console/internal/domain/model"
	"github.com/guardian-sec/guardian-console/internal/mocks"
	"github.com/guardian-sec/guardian-console/internal/testutil"
)

func TestNewSession_RequiresPipeline(t *testing.T) {
	assert.Panics(t, func() {
		NewSession(SessionOptions{})
	})
}

func TestSession_NowUsesInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := NewFixedClock(testutil.BaseTime())
	session := NewSession(SessionOptions{
		Pipeline: mocks.NewMockPipeline(ctrl),
		Clock:    clock,
	})

	assert.Equal(t, testutil.BaseTime(), session.Now())
	clock.Advance(65 * time.Second)
	assert.Equal(t, testutil.BaseTime().Add(65*time.Second), session.Now())
}

func TestSession_StartScanRefreshesTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	session := NewSession(SessionOptions{Pipeline: pipeline})

	req := api.StartScanRequest{RepoURL: "https://github.com/acme/shop"}
	submitted := testutil.NewScanResult().WithID(11).WithStatus(model.ScanStatusPending).Build()

	gomock.InOrder(
		pipeline.EXPECT().StartScan(gomock.Any(), req).
			Return(&api.StartScanResponse{ScanID: 11, Status: "pending"}, nil),
		pipeline.EXPECT().ListScans(gomock.Any()).Return([]model.ScanResult{submitted}, nil),
	)

	resp, err := session.StartScan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 11, resp.ScanID)

	scan, ok := session.List.Scan(11)
	require.True(t, ok)
	assert.Equal(t, model.ScanStatusPending, scan.Status)
}

func TestSession_StartScanFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	session := NewSession(SessionOptions{Pipeline: pipeline})

	submitErr := errors.New("repo_url is required")
	pipeline.EXPECT().StartScan(gomock.Any(), gomock.Any()).Return(nil, submitErr)

	resp, err := session.StartScan(context.Background(), api.StartScanRequest{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, submitErr)
}

func TestSession_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	session := NewSession(SessionOptions{
		Pipeline: pipeline,
		Config:   SessionConfig{ListInterval: time.Hour},
	})
	defer session.Close()

	polled := make(chan struct{})
	pipeline.EXPECT().ListScans(gomock.Any()).DoAndReturn(
		func(context.Context) ([]model.ScanResult, error) {
			close(polled)
			return []model.ScanResult{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("session never polled the scan list")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestSession_SettingsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	session := NewSession(SessionOptions{Pipeline: pipeline})

	entries := []model.ConfigEntry{
		{Key: "github_token", Value: "ghp_secret", IsSecret: true},
		{Key: "default_branch", Value: "main"},
	}
	pipeline.EXPECT().Settings(gomock.Any()).Return(entries, nil)
	pipeline.EXPECT().UpdateSetting(gomock.Any(), entries[1]).Return(nil)

	got, err := session.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	assert.NoError(t, session.UpdateSetting(context.Background(), entries[1]))
}
