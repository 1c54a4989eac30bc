// SPDX-License-Identifier: MIT
package tokens

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/themes"
)

// ErrInvalidSelection marks selections rejected for out-of-range numbers.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection is everything the user picked. It is a plain value: callers
// derive new selections instead of mutating shared ones.
type Selection struct {
	Theme          themes.ThemeName      `json:"theme" validate:"theme"`
	Palette        themes.PaletteName    `json:"palette" validate:"palette"`
	Font           themes.FontName       `json:"font" validate:"font"`
	DarkMode       bool                  `json:"darkMode"`
	BaseFontSize   float64               `json:"baseFontSize" validate:"gte=12,lte=24"`
	TypeScale      float64               `json:"typeScale" validate:"gte=1.1,lte=1.6"`
	SpacingUnit    float64               `json:"spacingUnit" validate:"gte=1,lte=32"`
	AnimationSpeed themes.AnimationSpeed `json:"animationSpeed" validate:"speed"`
}

// DefaultSelection is what a fresh session starts with.
func DefaultSelection() Selection {
	return Selection{
		Theme:          themes.FlatModern,
		Palette:        themes.PaletteDefault,
		Font:           themes.FontInter,
		DarkMode:       false,
		BaseFontSize:   16,
		TypeScale:      1.25,
		SpacingUnit:    4,
		AnimationSpeed: themes.SpeedNormal,
	}
}

// Mode returns the palette variant the selection asks for.
func (s Selection) Mode() themes.Mode {
	return themes.ModeFor(s.DarkMode)
}

// WithPreset returns s with the named preset applied. Presets without a
// size or scale keep the current values.
func (s Selection) WithPreset(name string) (Selection, error) {
	p, err := themes.GetPreset(name)
	if err != nil {
		return s, err
	}
	s.Theme = p.Theme
	s.Palette = p.Palette
	s.Font = p.Font
	s.DarkMode = p.DarkMode
	if p.BaseFontSize != 0 {
		s.BaseFontSize = p.BaseFontSize
	}
	if p.TypeScale != 0 {
		s.TypeScale = p.TypeScale
	}
	return s, nil
}

// WithSpacingScale returns s with the spacing unit of scale.
func (s Selection) WithSpacingScale(scale themes.SpacingScale) (Selection, error) {
	spacing, err := themes.GetSpacing(scale)
	if err != nil {
		return s, err
	}
	s.SpacingUnit = spacing.Unit
	return s, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// enumKinds maps the custom validation tags to the identifier kind they guard.
var enumKinds = map[string]string{
	"theme":   "theme",
	"palette": "palette",
	"font":    "font",
	"speed":   "animation speed",
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return themes.IsTheme(fl.Field().String())
		})
		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			return themes.IsPalette(fl.Field().String())
		})
		_ = v.RegisterValidation("font", func(fl validator.FieldLevel) bool {
			_, err := themes.FontStack(themes.FontName(fl.Field().String()))
			return err == nil
		})
		_ = v.RegisterValidation("speed", func(fl validator.FieldLevel) bool {
			_, err := themes.TransitionDuration(themes.AnimationSpeed(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks s at the input boundary: closed names must be catalog
// members and numbers must sit in the ranges the controls allow. Unknown
// names surface as UnknownIdentifier errors.
func (s Selection) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	first := fieldErrs[0]
	if kind, ok := enumKinds[first.Tag()]; ok {
		return apperrors.NewUnknownIdentifier(kind, fmt.Sprint(first.Value()))
	}
	return fmt.Errorf("%w: %s must satisfy %s=%s, got %v", ErrInvalidSelection, first.Field(), first.Tag(), first.Param(), first.Value())
}
