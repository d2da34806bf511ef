package rate

import "github.com/opencinemac/vtc-go/pkg/rational"

// Well-known production rates. These are initialized once at startup and
// read-only thereafter; concurrent use needs no synchronization.
var (
	// F23_98 is 23.98 NTSC (24000/1001), the standard digital cinema rate.
	F23_98 = mustNew(24000, 1001, NTSCNonDrop)
	// F24 is true 24 fps film.
	F24 = mustNew(24, 1, NTSCNone)
	// F25 is PAL video.
	F25 = mustNew(25, 1, NTSCNone)
	// F29_97Ndf is 29.97 NTSC video with non-drop timecode.
	F29_97Ndf = mustNew(30000, 1001, NTSCNonDrop)
	// F29_97Df is 29.97 NTSC video with drop-frame timecode.
	F29_97Df = mustNew(30000, 1001, NTSCDrop)
	// F30 is true 30 fps.
	F30 = mustNew(30, 1, NTSCNone)
	// F47_95 is 47.95 NTSC (48000/1001).
	F47_95 = mustNew(48000, 1001, NTSCNonDrop)
	// F48 is true 48 fps.
	F48 = mustNew(48, 1, NTSCNone)
	// F50 is double-rate PAL.
	F50 = mustNew(50, 1, NTSCNone)
	// F59_94Ndf is 59.94 NTSC with non-drop timecode.
	F59_94Ndf = mustNew(60000, 1001, NTSCNonDrop)
	// F59_94Df is 59.94 NTSC with drop-frame timecode.
	F59_94Df = mustNew(60000, 1001, NTSCDrop)
	// F60 is true 60 fps.
	F60 = mustNew(60, 1, NTSCNone)
)

func mustNew(num, den int64, ntsc NTSC) Framerate {
	f, err := New(rational.MustNew(num, den), ntsc)
	if err != nil {
		panic(err)
	}
	return f
}
