package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
	"github.com/sirupsen/logrus"

	"tableflip.dev/winterplan/pkg/journal"
)

// Persistence is the load/save contract for the whole {settings, data}
// envelope. Save is best-effort from the caller's point of view; Load
// returns (nil, nil) when no usable envelope exists.
type Persistence interface {
	Load(ctx context.Context) (*journal.Envelope, error)
	Save(env *journal.Envelope) error
}

// envelopeKey is the fixed storage key, versioned with the schema.
const envelopeKey = "winter_planner_v11"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		log: logrus.StandardLogger(),
	}, nil
}

type persistence struct {
	d   *diskv.Diskv
	log logrus.FieldLogger
}

func (p *persistence) Load(_ context.Context) (*journal.Envelope, error) {
	if !p.d.Has(envelopeKey) {
		return nil, nil
	}
	data, err := p.d.Read(envelopeKey)
	if err != nil {
		p.log.WithError(err).Debug("store: envelope unreadable, starting fresh")
		return nil, nil
	}

	// A structurally broken envelope is discarded rather than surfaced:
	// availability beats strictness for a local single-user journal.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		p.log.WithError(err).Debug("store: envelope malformed, starting fresh")
		return nil, nil
	}
	if _, ok := raw["settings"]; !ok {
		p.log.Debug("store: envelope missing settings, starting fresh")
		return nil, nil
	}
	if _, ok := raw["data"]; !ok {
		p.log.Debug("store: envelope missing data, starting fresh")
		return nil, nil
	}

	env := &journal.Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		p.log.WithError(err).Debug("store: envelope undecodable, starting fresh")
		return nil, nil
	}
	if env.Data == nil {
		env.Data = journal.AllData{}
	}
	return env, nil
}

func (p *persistence) Save(env *journal.Envelope) error {
	if env == nil {
		return fmt.Errorf("store: nil envelope")
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("store: marshal envelope: %w", err)
	}
	if err := p.d.Write(envelopeKey, data); err != nil {
		return fmt.Errorf("store: write envelope: %w", err)
	}
	return nil
}
