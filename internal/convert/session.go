package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bls2brs/internal/brick"
	"bls2brs/internal/color"
	"bls2brs/internal/geometry"
	"bls2brs/internal/intern"
	"bls2brs/internal/report"
	"bls2brs/internal/rules"
)

// Session holds the state of one conversion. It is not safe for concurrent
// use.
type Session struct {
	cfg      Config
	registry *rules.Registry
	log      *slog.Logger

	description string
	assets      *intern.Table[string]
	colors      *intern.Table[brick.Color]
	priority    []brick.Target
	deferred    []brick.Target
	report      *report.Report
}

// NewSession creates a session resolving bricks through registry.
func NewSession(registry *rules.Registry, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = newNopLogger()
	}

	if cfg.Now == nil {
		cfg.Now = DefaultConfig().Now
	}

	return &Session{
		cfg:      cfg,
		registry: registry,
		log:      logger,
		assets:   intern.New[string](64),
		colors:   intern.New[brick.Color](64),
		report:   report.New(),
	}
}

// SetDescription sets the save description.
func (s *Session) SetDescription(description string) {
	s.description = description
}

// SeedPalette appends the expanded master palette to the color table.
// Palette indices of source bricks refer to these entries, so it must be
// called before the first Process.
func (s *Session) SeedPalette(palette []brick.LinearColor) {
	for _, c := range color.Palette(palette) {
		s.colors.Append(c)
	}
}

// Reserve preallocates the priority buffer for hint bricks.
func (s *Session) Reserve(hint int, known bool) {
	n := s.cfg.capacity(hint, known)
	if cap(s.priority)-len(s.priority) >= n {
		return
	}

	grown := make([]brick.Target, len(s.priority), len(s.priority)+n)
	copy(grown, s.priority)
	s.priority = grown
}

// Process converts one source brick and returns the number of target
// bricks it produced. Unmapped and rejected bricks produce none and are
// counted in the report.
func (s *Session) Process(src *brick.Source) int {
	res, err := s.registry.Resolve(src)
	if err != nil {
		s.log.Debug("unmapped brick", "name", src.Name, "error", err)

		if errors.Is(err, rules.ErrRejected) {
			s.report.RecordRejection(src.Name)
		} else {
			s.report.RecordFailure(src.Name)
		}

		return 0
	}

	s.log.Debug("mapped brick", "name", src.Name, "rule", res.Rule, "candidates", len(res.Descriptors))
	s.report.RecordSuccess(res.Rule)

	for i := range res.Descriptors {
		d := &res.Descriptors[i]
		t := s.target(src, d)

		if d.Deferred || (d.Procedural && !t.Visibility) {
			s.deferred = append(s.deferred, t)
		} else {
			s.priority = append(s.priority, t)
		}
	}

	return len(res.Descriptors)
}

func (s *Session) target(src *brick.Source, d *brick.Descriptor) brick.Target {
	p := geometry.Transform(src, d)

	return brick.Target{
		AssetIndex: uint32(s.assets.Intern(d.Asset)),
		Size:       p.Size,
		Position:   p.Position,
		Direction:  p.Direction,
		Rotation:   p.Rotation,
		Collision:  p.Collision,
		Visibility: src.Rendering,
		Material:   brick.MaterialFor(src.ColorFx),
		Color:      s.colorMode(src, d),
	}
}

// colorMode picks, in order, the descriptor override, the inline source
// color, and the palette reference.
func (s *Session) colorMode(src *brick.Source, d *brick.Descriptor) brick.ColorMode {
	switch {
	case d.Color != nil:
		return s.custom(*d.Color)
	case src.LinearColor != nil:
		return s.custom(color.FromLinear(*src.LinearColor))
	default:
		return brick.SetColor(uint32(src.ColorIndex))
	}
}

func (s *Session) custom(c brick.Color) brick.ColorMode {
	return brick.CustomColor(c, uint32(s.colors.Intern(c)))
}

// Run seeds the session from source metadata and processes every brick of
// source. It stops at the first read error or when ctx is done.
func (s *Session) Run(ctx context.Context, source Source) error {
	s.SetDescription(source.Description())
	s.SeedPalette(source.Colors())
	s.Reserve(source.CountHint())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to read brick %d: %w", s.report.Total()+1, err)
		}

		s.Process(&b)
	}

	s.log.Info("conversion finished",
		"mapped", s.report.Success,
		"unmapped", s.report.Failure,
		"unique_unmapped", len(s.report.Unmapped),
		"rejected", len(s.report.Rejected),
		"bricks", len(s.priority)+len(s.deferred),
		"assets", s.assets.Len(),
		"colors", s.colors.Len(),
	)

	return nil
}

// Report returns the running tally of the session.
func (s *Session) Report() *report.Report {
	return s.report
}

// Finish assembles the save. Deferred bricks follow all other bricks, each
// group in the order it was produced.
func (s *Session) Finish() *SaveData {
	bricks := make([]brick.Target, 0, len(s.priority)+len(s.deferred))
	bricks = append(bricks, s.priority...)
	bricks = append(bricks, s.deferred...)

	return &SaveData{
		Map:         s.cfg.MapName,
		Author:      User{Name: s.cfg.AuthorName},
		Description: s.description,
		SaveTime:    s.cfg.Now(),
		Mods:        []string{},
		BrickAssets: s.assets.Values(),
		Colors:      s.colors.Values(),
		Materials:   append([]string(nil), brick.Materials...),
		BrickOwners: []User{{ID: PublicOwnerID, Name: s.cfg.OwnerName}},
		Bricks:      bricks,
	}
}

// Convert runs a session over source and writes the save to sink when
// sink is not nil.
func Convert(ctx context.Context, registry *rules.Registry, source Source, sink Sink, cfg Config) (*SaveData, *report.Report, error) {
	s := NewSession(registry, cfg)

	if err := s.Run(ctx, source); err != nil {
		return nil, s.Report(), err
	}

	data := s.Finish()

	if sink != nil {
		if err := sink.Write(data); err != nil {
			return nil, s.Report(), fmt.Errorf("failed to write save: %w", err)
		}
	}

	return data, s.Report(), nil
}
