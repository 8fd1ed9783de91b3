package ani

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/internal/mmfile"
	"github.com/joshuapare/curkit/internal/writer"
)

// JiffiesPerSecond is the timing base of rate values.
const JiffiesPerSecond = 60

// DefaultRate is the step duration used when no rate table is present:
// 6 jiffies, i.e. 10 steps per second.
const DefaultRate = 6

// Header flag bits.
const (
	FlagIcon     = format.AnihFlagIcon
	FlagSequence = format.AnihFlagSequence
)

// Frame is one image of an animated cursor. Data is a complete
// single-image cursor (or icon) resource.
type Frame struct {
	Width    uint32
	Height   uint32
	HotspotX uint16
	HotspotY uint16
	Data     []byte
	// Duration in jiffies. Zero means the frame has no duration of its own.
	Duration uint32
}

// Delay returns the frame duration as a time.Duration.
func (fr Frame) Delay() time.Duration {
	return time.Duration(fr.Duration) * time.Second / JiffiesPerSecond
}

// Jiffies converts d to jiffies, rounding to the nearest one.
func Jiffies(d time.Duration) uint32 {
	j := (d*JiffiesPerSecond + time.Second/2) / time.Second
	if j < 0 {
		return 0
	}
	if j > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(j)
}

// Header mirrors the anih chunk. Width, Height, BitCount and Planes are
// informational. On encode Frames and Steps are recomputed from the frame
// list and sequence; every other field is written as is.
type Header struct {
	Frames      uint32
	Steps       uint32
	Width       uint32
	Height      uint32
	BitCount    uint32
	Planes      uint32
	DefaultRate uint32
	Flags       uint32
}

// Info is the optional LIST INFO metadata.
type Info struct {
	Title  string
	Artist string
}

// IsZero reports whether no metadata is set.
func (i Info) IsZero() bool { return i.Title == "" && i.Artist == "" }

// File is an animated cursor.
type File struct {
	Header Header
	Frames []Frame
	// Sequence maps each step to a frame index. Empty means 0..len(Frames)-1.
	Sequence []uint32
	// Rates holds one duration per step in jiffies. Empty means every step
	// uses Header.DefaultRate.
	Rates []uint32
	Info  Info
}

// New returns an animated cursor playing frames in order. Header size comes
// from the first frame. When any frame carries a Duration, a rate table is
// built from the durations, with the header default rate standing in for
// frames without one.
func New(frames []Frame) *File {
	n := uint32(len(frames))
	f := &File{
		Header: Header{
			Frames:      n,
			Steps:       n,
			DefaultRate: DefaultRate,
			Flags:       FlagIcon,
		},
		Frames:   frames,
		Sequence: identity(n),
	}
	if len(frames) > 0 {
		f.Header.Width = frames[0].Width
		f.Header.Height = frames[0].Height
		f.Header.BitCount = 32
		f.Header.Planes = 1
	}
	if f.hasDurations() {
		f.Rates = f.ratesFromDurations()
	}
	return f
}

// WithSequence replaces the step sequence. Rates derived from frame
// durations follow the new sequence; set explicit rates afterwards with
// WithRates.
func (f *File) WithSequence(seq []uint32) *File {
	f.Sequence = seq
	f.Header.Steps = uint32(len(seq))
	if isIdentity(seq, uint32(len(f.Frames))) {
		f.Header.Flags &^= FlagSequence
	} else {
		f.Header.Flags |= FlagSequence
	}
	if f.hasDurations() {
		f.Rates = f.ratesFromDurations()
	}
	return f
}

// WithDefaultRate sets the header default rate. Rates derived from frame
// durations are rebuilt so frames without a duration use the new rate.
func (f *File) WithDefaultRate(rate uint32) *File {
	f.Header.DefaultRate = rate
	if f.hasDurations() {
		f.Rates = f.ratesFromDurations()
	}
	return f
}

// WithRates sets one duration per step, in jiffies.
func (f *File) WithRates(rates []uint32) *File {
	f.Rates = rates
	return f
}

// WithInfo sets the title and artist metadata.
func (f *File) WithInfo(info Info) *File {
	f.Info = info
	return f
}

// StepCount returns the number of steps on the timeline.
func (f *File) StepCount() int {
	if len(f.Sequence) > 0 {
		return len(f.Sequence)
	}
	return len(f.Frames)
}

// StepRate returns the duration of step i in jiffies.
func (f *File) StepRate(i int) uint32 {
	if i >= 0 && i < len(f.Rates) {
		return f.Rates[i]
	}
	return f.Header.DefaultRate
}

// TotalDuration returns the length of one loop of the animation.
func (f *File) TotalDuration() time.Duration {
	var j uint64
	for i := range f.StepCount() {
		j += uint64(f.StepRate(i))
	}
	return time.Duration(j) * time.Second / JiffiesPerSecond
}

func (f *File) hasDurations() bool {
	for _, fr := range f.Frames {
		if fr.Duration != 0 {
			return true
		}
	}
	return false
}

func (f *File) ratesFromDurations() []uint32 {
	seq := f.Sequence
	if len(seq) == 0 {
		seq = identity(uint32(len(f.Frames)))
	}
	fallback := f.Header.DefaultRate
	if fallback == 0 {
		fallback = DefaultRate
	}
	rates := make([]uint32, len(seq))
	for step, idx := range seq {
		rates[step] = fallback
		if int(idx) < len(f.Frames) && f.Frames[idx].Duration != 0 {
			rates[step] = f.Frames[idx].Duration
		}
	}
	return rates
}

// identity returns 0..n-1.
func identity(n uint32) []uint32 {
	seq := make([]uint32, n)
	for i := range seq {
		seq[i] = uint32(i)
	}
	return seq
}

// isIdentity reports whether seq is empty or exactly 0..n-1.
func isIdentity(seq []uint32, n uint32) bool {
	if len(seq) == 0 {
		return true
	}
	if uint32(len(seq)) != n {
		return false
	}
	for i, v := range seq {
		if v != uint32(i) {
			return false
		}
	}
	return true
}

// MarshalBinary encodes f into a new byte slice.
func (f *File) MarshalBinary() ([]byte, error) {
	var w writer.MemWriter
	if err := f.Encode(&w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// WriteFile encodes f and writes it to path atomically.
func (f *File) WriteFile(path string) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("ani: %w", err)
	}
	return nil
}

// Parse decodes an animated cursor held in memory.
func Parse(b []byte) (*File, error) {
	return Decode(bytes.NewReader(b))
}

// Open decodes the animated cursor at path.
func Open(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("ani: open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()
	return Parse(data)
}

func (f *File) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Animated Cursor with %d frame(s):\n", len(f.Frames))
	if f.Info.Title != "" {
		fmt.Fprintf(&sb, "  Title: %s\n", f.Info.Title)
	}
	if f.Info.Artist != "" {
		fmt.Fprintf(&sb, "  Artist: %s\n", f.Info.Artist)
	}
	fmt.Fprintf(&sb, "  Steps: %d\n", f.Header.Steps)
	fmt.Fprintf(&sb, "  Size: %dx%d\n", f.Header.Width, f.Header.Height)
	fmt.Fprintf(&sb, "  Default Rate: %d jiffies\n", f.Header.DefaultRate)
	fmt.Fprintf(&sb, "  Sequence: %v\n", f.Sequence)
	if len(f.Rates) > 0 {
		fmt.Fprintf(&sb, "  Individual Rates: %v\n", f.Rates)
	}
	for i, fr := range f.Frames {
		fmt.Fprintf(&sb, "  Frame %d:\n    Size:    %dx%d\n    Hotspot: (%d, %d)\n",
			i, fr.Width, fr.Height, fr.HotspotX, fr.HotspotY)
	}
	return sb.String()
}
