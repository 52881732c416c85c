// Package recipe persists edited layouts.
//
// A [Record] is the versioned, serializable form of a [layout.Info]. It
// can be written as JSON or YAML and read back with [Decode], which
// rebuilds the layout with [layout.Parse].
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
)

// Version is the record version written by this package.
const Version = 1

// Errors returned when reading records.
var (
	ErrUnsupportedVersion = errors.New("recipe: unsupported version")
	ErrUnknownFormat      = errors.New("recipe: unknown format")
)

// Format is a record encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Record is the persisted form of a layout.
type Record struct {
	Version int         `json:"version" yaml:"version"`
	Kind    layout.Kind `json:"kind" yaml:"kind"`
	Steps   []Step      `json:"steps" yaml:"steps"`
	Lines   []Line      `json:"lines,omitempty" yaml:"lines,omitempty"`
	Padding float64     `json:"padding" yaml:"padding"`
	Radian  float64     `json:"radian" yaml:"radian"`
	Color   uint32      `json:"color" yaml:"color"`
	Bounds  Bounds      `json:"bounds" yaml:"bounds"`
}

// Step is one recorded cut.
type Step struct {
	Type      layout.StepType   `json:"type" yaml:"type"`
	Direction collage.Direction `json:"direction" yaml:"direction"`
	Position  int               `json:"position" yaml:"position"`
	Part      int               `json:"part,omitempty" yaml:"part,omitempty"`
	HSize     int               `json:"hSize,omitempty" yaml:"h-size,omitempty"`
	VSize     int               `json:"vSize,omitempty" yaml:"v-size,omitempty"`
	Ratios    []float64         `json:"ratios,omitempty" yaml:"ratios,omitempty,flow"`
}

// Line holds the endpoints of one interior line.
type Line struct {
	StartX float64 `json:"startX" yaml:"start-x"`
	StartY float64 `json:"startY" yaml:"start-y"`
	EndX   float64 `json:"endX" yaml:"end-x"`
	EndY   float64 `json:"endY" yaml:"end-y"`
}

// Bounds holds the outer bounds of the layout.
type Bounds struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// FromInfo converts info to a record of the current version.
func FromInfo(info layout.Info) Record {
	r := Record{
		Version: Version,
		Kind:    info.Kind,
		Steps:   make([]Step, len(info.Steps)),
		Padding: info.Padding,
		Radian:  info.Radian,
		Color:   info.Color,
		Bounds: Bounds{
			Left:   info.Bounds.Min.X,
			Top:    info.Bounds.Min.Y,
			Right:  info.Bounds.Max.X,
			Bottom: info.Bounds.Max.Y,
		},
	}
	for i, s := range info.Steps {
		r.Steps[i] = Step{
			Type:      s.Type,
			Direction: s.Direction,
			Position:  s.Position,
			Part:      s.Part,
			HSize:     s.HSize,
			VSize:     s.VSize,
			Ratios:    append([]float64(nil), s.Ratios...),
		}
	}
	for _, l := range info.Lines {
		r.Lines = append(r.Lines, Line{StartX: l.Start.X, StartY: l.Start.Y, EndX: l.End.X, EndY: l.End.Y})
	}
	return r
}

// Info converts the record back to a layout description.
func (r Record) Info() (layout.Info, error) {
	if r.Version < 1 || r.Version > Version {
		return layout.Info{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	info := layout.Info{
		Kind:    r.Kind,
		Steps:   make([]layout.Step, len(r.Steps)),
		Padding: r.Padding,
		Radian:  r.Radian,
		Color:   r.Color,
		Bounds:  collage.RectLTRB(r.Bounds.Left, r.Bounds.Top, r.Bounds.Right, r.Bounds.Bottom),
	}
	for i, s := range r.Steps {
		info.Steps[i] = layout.Step{
			Type:      s.Type,
			Direction: s.Direction,
			Position:  s.Position,
			Part:      s.Part,
			HSize:     s.HSize,
			VSize:     s.VSize,
			Ratios:    append([]float64(nil), s.Ratios...),
		}
	}
	for _, l := range r.Lines {
		info.Lines = append(info.Lines, layout.LineInfo{
			Start: collage.Pt(l.StartX, l.StartY),
			End:   collage.Pt(l.EndX, l.EndY),
		})
	}
	return info, nil
}

// Layout rebuilds the recorded layout.
func (r Record) Layout() (*layout.Layout, error) {
	info, err := r.Info()
	if err != nil {
		return nil, err
	}
	return layout.Parse(info)
}

// Encode writes the record for l to w.
func Encode(w io.Writer, l *layout.Layout, f Format) error {
	return FromInfo(l.Info()).Encode(w, f)
}

// Encode writes r to w in format f.
func (r Record) Encode(w io.Writer, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("recipe: encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("recipe: encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// DecodeRecord reads a record from rd in format f.
func DecodeRecord(rd io.Reader, f Format) (Record, error) {
	var r Record
	switch f {
	case JSON:
		if err := json.NewDecoder(rd).Decode(&r); err != nil {
			return Record{}, fmt.Errorf("recipe: decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
			return Record{}, fmt.Errorf("recipe: decode yaml: %w", err)
		}
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return r, nil
}

// Decode reads a record from rd and rebuilds its layout.
func Decode(rd io.Reader, f Format) (*layout.Layout, error) {
	r, err := DecodeRecord(rd, f)
	if err != nil {
		return nil, err
	}
	return r.Layout()
}
