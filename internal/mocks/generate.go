// Package mocks provides mock implementations for testing the console.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the pipeline API interface. To regenerate after interface changes:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	pipeline := mocks.NewMockPipeline(ctrl)
//	pipeline.EXPECT().ListScans(gomock.Any()).Return(scans, nil)
package mocks

// Generate mock for the Pipeline interface from internal/api.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=pipeline_mock.go github.com/guardian-sec/guardian-console/internal/api Pipeline
