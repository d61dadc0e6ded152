package modal

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/zjrosen/spark/internal/ui/field"
	"github.com/zjrosen/spark/internal/ui/view"
)

// dataConfig lists the keys FromData understands.
type dataConfig struct {
	Title                string    `mapstructure:"title"`
	Content              any       `mapstructure:"content"`
	Markdown             bool      `mapstructure:"markdown"`
	Buttons              ButtonSet `mapstructure:"buttons"`
	Draggable            bool      `mapstructure:"draggable"`
	Closable             bool      `mapstructure:"closable"`
	RemoveOnOverlayClick bool      `mapstructure:"removeOnOverlayClick"`
	Width                int       `mapstructure:"width"`
}

// FromData builds an unopened modal from a keyed value map, typically a
// form snapshot. Recognised keys are title, content, markdown, buttons,
// draggable, closable, removeOnOverlayClick and width; other keys are
// ignored. buttons accepts a ButtonSet, its name ("YES_NO") or its number.
// A missing closable defaults to true, and values equal to
// field.NoSelection count as missing.
func FromData(data map[string]any, container view.Container) (*Modal, error) {
	dc := dataConfig{Closable: true}

	input := make(map[string]any, len(data))
	for k, v := range data {
		if v == field.NoSelection {
			continue
		}
		input[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &dc,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("decoding modal config: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return nil, fmt.Errorf("decoding modal config: %w", err)
	}

	return New(Config{
		Title:                dc.Title,
		Content:              dc.Content,
		Markdown:             dc.Markdown,
		Buttons:              dc.Buttons,
		Draggable:            dc.Draggable,
		Closable:             dc.Closable,
		RemoveOnOverlayClick: dc.RemoveOnOverlayClick,
		Width:                dc.Width,
		RenderTo:             container,
	})
}
