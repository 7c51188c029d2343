package extract

import (
	"fmt"

	"github.com/cwbudde/algo-audiofeatures/audio"
)

// ShapeError reports a buffer whose shape does not fit an extractor:
// the wrong channel count, or no samples at all.
type ShapeError struct {
	Extractor    string
	GotChannels  int
	WantChannels int // 0 when the extractor accepts any channel count
	Samples      int
}

func (e *ShapeError) Error() string {
	if e.Samples == 0 {
		return fmt.Sprintf("extract: %s: empty buffer", e.Extractor)
	}

	return fmt.Sprintf("extract: %s: requires %d channels, got %d",
		e.Extractor, e.WantChannels, e.GotChannels)
}

// ConfigError reports an invalid extractor configuration value.
type ConfigError struct {
	Extractor string
	Field     string
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("extract: %s: invalid %s: %s", e.Extractor, e.Field, e.Reason)
}

// checkShape validates a buffer against an extractor's input requirement.
// wantChannels 0 accepts any channel count.
func checkShape(extractor string, buf *audio.Buffer, wantChannels int) error {
	if buf == nil || buf.Len() == 0 {
		var got int
		if buf != nil {
			got = buf.Channels()
		}

		return &ShapeError{Extractor: extractor, GotChannels: got, WantChannels: wantChannels}
	}

	if wantChannels > 0 && buf.Channels() != wantChannels {
		return &ShapeError{
			Extractor:    extractor,
			GotChannels:  buf.Channels(),
			WantChannels: wantChannels,
			Samples:      buf.Len(),
		}
	}

	return nil
}
