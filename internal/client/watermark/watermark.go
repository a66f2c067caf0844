// Package watermark derives the identifying overlay text shown above a
// rendered paper. The overlay is purely informational: it must never block
// interaction with the document underneath, and the server burns an
// equivalent mark into downloaded copies, so this text is display-only.
package watermark

import (
	"fmt"
	"time"

	"github.com/quarkpapers/quark/internal/client/models"
)

// timeLayout approximates a short locale timestamp, e.g. "1/1/2024, 10:00:00 AM".
const timeLayout = "1/2/2006, 3:04:05 PM"

// Text produces the two-line watermark string for a resolved paper.
//
// When the service supplied watermark info the lines are
//
//	<name> (<id>)
//	<locale-formatted timestamp>
//
// Otherwise (content fetched outside the authenticated view endpoint) it
// falls back to the locally known identity and the current client time.
func Text(info *models.WatermarkInfo, fallback *models.Identity, now time.Time) string {
	if info != nil {
		return fmt.Sprintf("%s (%s)\n%s",
			info.StudentName, info.StudentID, info.Timestamp.Local().Format(timeLayout))
	}

	username, id := "N/A", "N/A"
	if fallback != nil {
		if fallback.Username != "" {
			username = fallback.Username
		}
		if fallback.ID != "" {
			id = fallback.ID
		}
	}
	return fmt.Sprintf("User: %s (ID: %s)\nTime: %s", username, id, now.Format(timeLayout))
}

// Overlay describes how the watermark text is drawn above the document
// surface. Renderers apply it as a fixed, rotated layer that lets pointer
// events pass through to the page below.
type Overlay struct {
	Opacity      float64
	RotationDeg  float64
	ClickThrough bool

	// Print output uses a higher-contrast variant so the mark survives
	// grayscale printing.
	PrintOpacity   float64
	PrintFontScale float64
}

// DefaultOverlay matches the treatment of the web viewer.
func DefaultOverlay() Overlay {
	return Overlay{
		Opacity:        0.1,
		RotationDeg:    -30,
		ClickThrough:   true,
		PrintOpacity:   0.5,
		PrintFontScale: 2.5,
	}
}
