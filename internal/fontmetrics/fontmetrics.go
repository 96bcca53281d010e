// Package fontmetrics measures label and tooltip text with HarfBuzz shaping
// so layout decisions (tooltip width, label clearance) match what the raster
// backend draws.
package fontmetrics

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Measurer returns the advance width of s at a font size, in pixels.
type Measurer interface {
	Measure(s string, size float64) float64
}

// approxAdvance is the average advance per character, in ems, used when the
// font cannot be parsed.
const approxAdvance = 0.55

// Shaper measures text by shaping it with go-text/typesetting.
//
// Shaper is safe for concurrent use. The parsed font is shared; HarfBuzz
// shapers carry mutable buffers and are pooled.
type Shaper struct {
	data []byte

	once sync.Once
	font *font.Font
	err  error

	pool sync.Pool
}

// New creates a measurer for a TrueType/OpenType font.
func New(data []byte) *Shaper {
	return &Shaper{
		data: data,
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}
}

var (
	defaultOnce sync.Once
	defaultMeas *Shaper
)

// Default returns the shared measurer for the Go Regular font, the same face
// the raster backend draws with.
func Default() *Shaper {
	defaultOnce.Do(func() { defaultMeas = New(goregular.TTF) })
	return defaultMeas
}

// Err reports a font parsing failure. Measure keeps working with an
// approximation when it is non-nil.
func (s *Shaper) Err() error {
	s.load()
	return s.err
}

// Measure implements Measurer.
func (s *Shaper) Measure(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	runes := []rune(text)
	s.load()
	if s.err != nil {
		return approxAdvance * size * float64(len(runes))
	}

	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	s.pool.Put(hb)

	adv := float64(out.Advance) / 64
	if adv < 0 {
		adv = -adv
	}
	return adv
}

func (s *Shaper) load() {
	s.once.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.err = err
			return
		}
		s.font = face.Font
	})
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Fixed is a Measurer with a constant per-character advance. It keeps layout
// tests independent of font data.
type Fixed float64

// Measure implements Measurer.
func (f Fixed) Measure(text string, size float64) float64 {
	return float64(f) * size * float64(len([]rune(text)))
}
