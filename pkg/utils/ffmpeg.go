package utils

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// GetVideoDuration probes the staged media file and returns its duration in
// seconds, rounded down.
func GetVideoDuration(videoPath string) (int64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe video file")
	}
	var info probeFormat
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return 0, errors.WithMessage(err, "Failed to parse probe output")
	}
	seconds, err := strconv.ParseFloat(info.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to parse video duration")
	}
	return int64(seconds), nil
}
