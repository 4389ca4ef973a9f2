package service

import (
	"context"
	"encoding/json"
	"io"
)

// ImageAnalysisService relays an uploaded food image to the external analysis
// workflow. The classification result is opaque to this core and passed
// through to the caller untouched.
type ImageAnalysisService interface {
	AnalyzeImage(ctx context.Context, image io.Reader, filename, userEmail, foodItem string) (json.RawMessage, error)
}
