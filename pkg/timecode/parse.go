package timecode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// framesPerFoot is the 35mm convention of 16 frames per foot of film.
const framesPerFoot = 16

var (
	// SMPTE timecode with left-truncated higher fields: [-][[[HH:]MM:]SS:]FF.
	// ':' and ';' are both accepted on every separator.
	tcPattern = regexp.MustCompile(`^(-)?(?:(\d+)[:;])?(?:(\d+)[:;])?(?:(\d+)[:;])?(\d+)$`)
	// Runtime: [-][[HH:]MM:]SS[.fraction].
	runtimePattern = regexp.MustCompile(`^(-)?(?:(\d+):)?(?:(\d+):)?(\d+(?:\.\d+)?)$`)
	// Feet and frames: [-]<feet>+<frames>.
	feetFramesPattern = regexp.MustCompile(`^(-)?(\d+)\+(\d+)$`)
)

// ParseFrames reads a frame position from any of the frame-based grammars,
// trying SMPTE timecode first and falling back to feet+frames. A bare
// integer parses as a plain frame count. Drop-frame field errors are not
// masked by the fallback.
func ParseFrames(s string, r rate.Framerate) (Framestamp, error) {
	stamp, err := ParseTimecode(s, r)
	if err == nil {
		return stamp, nil
	}
	if vtcerr.IsKind(err, vtcerr.KindBadDropFrames) || vtcerr.IsKind(err, vtcerr.KindDropFrameMaximumExceeded) {
		return Framestamp{}, err
	}
	if stamp, ffErr := ParseFeetAndFrames(s, r); ffErr == nil {
		return stamp, nil
	}
	return Framestamp{}, err
}

// ParseTimecode reads an SMPTE timecode string. Missing higher fields are
// zero, and overflowing fields roll over into the next one, so "00:00:48"
// at 24fps is the same position as "00:00:02:00". Fields are summed rather
// than validated against the timebase.
func ParseTimecode(s string, r rate.Framerate) (Framestamp, error) {
	match := tcPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Framestamp{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "%q is not a timecode", s)
	}

	sec := Sections{Negative: match[1] == "-"}
	fields := make([]int64, 0, 3)
	for _, group := range match[2:5] {
		if group == "" {
			continue
		}
		value, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "timecode field out of range")
		}
		fields = append(fields, value)
	}
	// Present fields fill from the right: SS, then MM, then HH.
	switch len(fields) {
	case 3:
		sec.Hours, sec.Minutes, sec.Seconds = fields[0], fields[1], fields[2]
	case 2:
		sec.Minutes, sec.Seconds = fields[0], fields[1]
	case 1:
		sec.Seconds = fields[0]
	}
	frameField, err := strconv.ParseInt(match[5], 10, 64)
	if err != nil {
		return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "frame field out of range")
	}
	sec.Frames = frameField

	adjustment, err := dfParseAdjustment(r, sec)
	if err != nil {
		return Framestamp{}, err
	}

	timebase := r.Timebase()
	frames := ((sec.Hours*60+sec.Minutes)*60+sec.Seconds)*timebase + sec.Frames + adjustment
	if r.NTSC() == rate.NTSCDrop && frames > maxFrames(r) {
		return Framestamp{}, vtcerr.Newf(
			vtcerr.KindDropFrameMaximumExceeded,
			"drop-frame timecode %q exceeds the 24-hour maximum", s,
		)
	}
	if sec.Negative {
		frames = -frames
	}
	return FromFrames(frames, r), nil
}

// ParseFeetAndFrames reads a film footage position such as "5400+00".
func ParseFeetAndFrames(s string, r rate.Framerate) (Framestamp, error) {
	match := feetFramesPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Framestamp{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "%q is not a feet+frames value", s)
	}
	feet, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "feet field out of range")
	}
	frames, err := strconv.ParseInt(match[3], 10, 64)
	if err != nil {
		return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "frame field out of range")
	}
	total := feet*framesPerFoot + frames
	if match[1] == "-" {
		total = -total
	}
	return FromFrames(total, r), nil
}

// ParseRuntime reads a wall-clock duration such as "01:30:00.5" and rounds
// it onto the frame grid per mode. RoundOff fails with PartialFrame for
// runtimes that fall between frames.
func ParseRuntime(s string, r rate.Framerate, mode rational.RoundMode) (Framestamp, error) {
	match := runtimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Framestamp{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "%q is not a runtime", s)
	}

	fields := make([]int64, 0, 2)
	for _, group := range match[2:4] {
		if group == "" {
			continue
		}
		value, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "runtime field out of range")
		}
		fields = append(fields, value)
	}
	var hours, minutes int64
	switch len(fields) {
	case 2:
		hours, minutes = fields[0], fields[1]
	case 1:
		minutes = fields[0]
	}

	seconds, err := rational.Parse(match[4])
	if err != nil {
		return Framestamp{}, vtcerr.Wrap(err, vtcerr.KindUnrecognizedFormat, "cannot parse runtime seconds")
	}
	total := rational.FromInt(hours*3600 + minutes*60).Add(seconds)
	if match[1] == "-" {
		total = total.Neg()
	}
	return FromSeconds(total, r, mode)
}
