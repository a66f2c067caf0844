package watermark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quarkpapers/quark/internal/client/models"
)

func TestText_ServerInfo(t *testing.T) {
	info := &models.WatermarkInfo{
		StudentName: "Bob Lee",
		StudentID:   "S123",
		Timestamp:   time.Date(2024, 3, 5, 14, 30, 9, 0, time.Local),
	}
	got := Text(info, nil, time.Now())
	require.Equal(t, "Bob Lee (S123)\n3/5/2024, 2:30:09 PM", got)
}

func TestText_FallbackIdentity(t *testing.T) {
	identity := &models.Identity{ID: "u1", Username: "alice"}
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	got := Text(nil, identity, now)
	require.Equal(t, "User: alice (ID: u1)\nTime: 1/1/2024, 10:00:00 AM", got)
}

func TestText_NoInfoAtAll(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	got := Text(nil, nil, now)
	require.Equal(t, "User: N/A (ID: N/A)\nTime: 1/1/2024, 10:00:00 AM", got)
}

func TestText_PartialIdentity(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	got := Text(nil, &models.Identity{Username: "alice"}, now)
	require.Equal(t, "User: alice (ID: N/A)\nTime: 1/1/2024, 10:00:00 AM", got)
}

func TestDefaultOverlay(t *testing.T) {
	o := DefaultOverlay()
	require.True(t, o.ClickThrough)
	require.InDelta(t, 0.1, o.Opacity, 1e-9)
	require.InDelta(t, -30, o.RotationDeg, 1e-9)
	// the print variant must be more visible than the screen one
	require.Greater(t, o.PrintOpacity, o.Opacity)
	require.Greater(t, o.PrintFontScale, 1.0)
}
