package resend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestDryRunClient_Send(t *testing.T) {
	c := NewDryRunClient(logger.NewNop())

	first, err := c.Send(context.Background(), "thandi@example.com", "Booking received", "<p>hi</p>")
	require.NoError(t, err)
	second, err := c.Send(context.Background(), "thandi@example.com", "Booking received", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "dry-run-1", first)
	assert.Equal(t, "dry-run-2", second)
}
