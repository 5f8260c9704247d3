package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-stego-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	ctx := context.Background()

	appInfo.EXPECT().GetAppVersion(ctx).Return("1.2.3")

	svc := NewHealthService(appInfo).(*healthService)
	svc.started = time.Unix(1000, 0)
	svc.now = func() time.Time { return time.Unix(1090, 500) }

	got := svc.Check(ctx)

	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, int64(90), got.UptimeSeconds)
}
