package env

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/reel"
	"slot_machine/internal/service/game"
	"slot_machine/internal/slot"
)

//go:embed game.yaml
var defaultGameYAML []byte

type symbolYAML struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Image        string  `yaml:"image"`
	Weight       float64 `yaml:"weight"`
	Value        int     `yaml:"value"`
	WinningLabel string  `yaml:"winning_label"`
}

type reelYAML struct {
	StripLength        int           `yaml:"strip_length"`
	SymbolHeight       float64       `yaml:"symbol_height"`
	VisibleSymbols     int           `yaml:"visible_symbols"`
	MaxSpeed           float64       `yaml:"max_speed"`
	Acceleration       float64       `yaml:"acceleration"`
	DecayFactor        float64       `yaml:"decay_factor"`
	MinSpeedNearTarget float64       `yaml:"min_speed_near_target"`
	VeryMinSpeed       float64       `yaml:"very_min_speed"`
	MinFullSpins       int           `yaml:"min_full_spins"`
	StartStagger       time.Duration `yaml:"start_stagger"`
	MinFreeSpin        time.Duration `yaml:"min_free_spin"`
	FreeSpinStagger    time.Duration `yaml:"free_spin_stagger"`
	MinAnimation       time.Duration `yaml:"min_animation"`
}

type gameYAML struct {
	Cooldown         time.Duration `yaml:"cooldown"`
	MinRoundDuration time.Duration `yaml:"min_round_duration"`
	ReleaseFloor     time.Duration `yaml:"release_floor"`
	PopupDelay       time.Duration `yaml:"popup_delay"`
	PersistTimeout   time.Duration `yaml:"persist_timeout"`
	DefaultAttempts  int           `yaml:"default_attempts"`
	FrameRate        int           `yaml:"frame_rate"`
	IdleTTL          time.Duration `yaml:"idle_ttl"`
	MaxCodeAttempts  int           `yaml:"max_code_attempts"`
	Reel             reelYAML      `yaml:"reel"`
	Symbols          []symbolYAML  `yaml:"symbols"`
}

type gameConfig struct {
	catalog         []model.Symbol
	settings        game.Settings
	params          reel.Params
	maxCodeAttempts int
}

// NewGameConfigFromYAML читает конфиг игры из файла.
// Если файла нет, берется встроенный конфиг
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read game config: %w", err)
		}
		data = defaultGameYAML
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal game config: %w", err)
	}

	settings := game.DefaultSettings()
	overrideDuration(&settings.Cooldown, raw.Cooldown)
	overrideDuration(&settings.MinRoundDuration, raw.MinRoundDuration)
	overrideDuration(&settings.ReleaseFloor, raw.ReleaseFloor)
	overrideDuration(&settings.PopupDelay, raw.PopupDelay)
	overrideDuration(&settings.PersistTimeout, raw.PersistTimeout)
	overrideDuration(&settings.IdleTTL, raw.IdleTTL)
	overrideInt(&settings.DefaultAttempts, raw.DefaultAttempts)
	overrideInt(&settings.FrameRate, raw.FrameRate)

	params := reel.DefaultParams()
	overrideInt(&params.StripLength, raw.Reel.StripLength)
	overrideFloat(&params.SymbolHeight, raw.Reel.SymbolHeight)
	overrideInt(&params.VisibleSymbols, raw.Reel.VisibleSymbols)
	overrideFloat(&params.MaxSpeed, raw.Reel.MaxSpeed)
	overrideFloat(&params.Acceleration, raw.Reel.Acceleration)
	overrideFloat(&params.DecayFactor, raw.Reel.DecayFactor)
	overrideFloat(&params.MinSpeedNearTarget, raw.Reel.MinSpeedNearTarget)
	overrideFloat(&params.VeryMinSpeed, raw.Reel.VeryMinSpeed)
	overrideInt(&params.MinFullSpins, raw.Reel.MinFullSpins)
	overrideDuration(&params.StartStagger, raw.Reel.StartStagger)
	overrideDuration(&params.MinFreeSpin, raw.Reel.MinFreeSpin)
	overrideDuration(&params.FreeSpinStagger, raw.Reel.FreeSpinStagger)
	overrideDuration(&params.MinAnimation, raw.Reel.MinAnimation)

	if params.DecayFactor >= 1 {
		return nil, fmt.Errorf("reel decay factor must be below 1, got %v", params.DecayFactor)
	}

	catalog := slot.DefaultCatalog()
	if len(raw.Symbols) > 0 {
		catalog = make([]model.Symbol, 0, len(raw.Symbols))
		for _, s := range raw.Symbols {
			catalog = append(catalog, model.Symbol{
				ID:           s.ID,
				Name:         s.Name,
				Image:        s.Image,
				Weight:       s.Weight,
				Value:        s.Value,
				WinningLabel: s.WinningLabel,
			})
		}
	}

	maxCodeAttempts := 10
	overrideInt(&maxCodeAttempts, raw.MaxCodeAttempts)

	return &gameConfig{
		catalog:         catalog,
		settings:        settings,
		params:          params,
		maxCodeAttempts: maxCodeAttempts,
	}, nil
}

func overrideDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}

func overrideInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func overrideFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func (cfg *gameConfig) Catalog() []model.Symbol {
	out := make([]model.Symbol, len(cfg.catalog))
	copy(out, cfg.catalog)
	return out
}

func (cfg *gameConfig) Settings() game.Settings {
	return cfg.settings
}

func (cfg *gameConfig) ReelParams() reel.Params {
	return cfg.params
}

func (cfg *gameConfig) MaxCodeAttempts() int {
	return cfg.maxCodeAttempts
}
