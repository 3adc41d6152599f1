package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ZoomFile is the on-disk tuning file. Only keys present in the file
// override the current config.
type ZoomFile struct {
	InitialZoom       *int     `yaml:"initial_zoom"`
	ScrollIncrement   *float64 `yaml:"scroll_increment"`
	MaxScrollTiers    *int     `yaml:"max_scroll_tiers"`
	LinearLikeSteps   *bool    `yaml:"linear_like_steps"`
	RetainScrollTiers *bool    `yaml:"retain_scroll_tiers"`

	Initial *ChannelFile `yaml:"initial"`
	Scroll  *ChannelFile `yaml:"scroll"`
}

// ChannelFile tunes one channel's interpolator.
type ChannelFile struct {
	Kind        *string  `yaml:"kind"`
	Curve       *string  `yaml:"curve"`
	InDuration  *float64 `yaml:"in_duration"`
	OutDuration *float64 `yaml:"out_duration"`
	Speed       *float64 `yaml:"speed"`
	Velocity    *float64 `yaml:"velocity"`
}

// ParseZoomFile decodes a tuning file.
func ParseZoomFile(data []byte) (*ZoomFile, error) {
	var f ZoomFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal zoom file: %w", err)
	}
	return &f, nil
}

// Apply returns base with the file's keys applied.
func (f *ZoomFile) Apply(base ZoomConfig) ZoomConfig {
	z := base
	setInt(&z.InitialZoom, f.InitialZoom)
	setFloat(&z.ScrollIncrement, f.ScrollIncrement)
	setInt(&z.MaxScrollTiers, f.MaxScrollTiers)
	setBool(&z.LinearLikeSteps, f.LinearLikeSteps)
	setBool(&z.RetainScrollTiers, f.RetainScrollTiers)

	if c := f.Initial; c != nil {
		setString(&z.InitialKind, c.Kind)
		setString(&z.InitialCurve, c.Curve)
		setFloat(&z.InitialInDuration, c.InDuration)
		setFloat(&z.InitialOutDuration, c.OutDuration)
		setFloat(&z.InitialSpeed, c.Speed)
		setFloat(&z.InitialVelocity, c.Velocity)
	}
	if c := f.Scroll; c != nil {
		setString(&z.ScrollKind, c.Kind)
		setString(&z.ScrollCurve, c.Curve)
		setFloat(&z.ScrollInDuration, c.InDuration)
		setFloat(&z.ScrollOutDuration, c.OutDuration)
		setFloat(&z.ScrollSpeed, c.Speed)
		setFloat(&z.ScrollVelocity, c.Velocity)
	}
	return z
}

// LoadZoomFile reads path and applies it on top of base. The result is
// validated; a missing file returns base unchanged.
func LoadZoomFile(path string, base ZoomConfig) (ZoomConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}

	f, err := ParseZoomFile(data)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	z := f.Apply(base)
	if err := z.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return z, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
