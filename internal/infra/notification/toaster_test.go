package notification

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"solarsavers/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestToaster_DrainKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	toaster := NewToaster(slog.New(slog.NewJSONHandler(&buf, nil)))

	toaster.Success("Added to cart!")
	toaster.Info("Already in wishlist")
	toaster.Error("Failed to place order")

	notices := toaster.Drain()
	assert.Equal(t, []service.Notice{
		{Level: service.NoticeSuccess, Message: "Added to cart!"},
		{Level: service.NoticeInfo, Message: "Already in wishlist"},
		{Level: service.NoticeError, Message: "Failed to place order"},
	}, notices)
	assert.Empty(t, toaster.Drain())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestToaster_DropsOldest(t *testing.T) {
	toaster := NewToaster(slog.Default())

	for i := 0; i < DefaultCapacity+3; i++ {
		toaster.Info(fmt.Sprintf("notice %d", i))
	}

	notices := toaster.Drain()
	assert.Len(t, notices, DefaultCapacity)
	assert.Equal(t, "notice 3", notices[0].Message)
}
