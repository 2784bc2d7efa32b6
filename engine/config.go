package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/utils"
)

// ParamsFromConfig converts the file config into engine parameters
func ParamsFromConfig(config utils.Config) (Params, error) {
	cellColor, err := utils.ParseHexColor(config.CellColor)
	if err != nil {
		return Params{}, errors.Wrap(err, "[ParamsFromConfig] cell_color")
	}
	return Params{
		Width:         config.Width,
		Height:        config.Height,
		CellSize:      config.CellSize,
		CellColor:     cellColor,
		GridVisible:   config.ShowGrid,
		Interval:      config.FrameRate,
		UseMemoryPool: config.UseMemoryPool,
	}, nil
}
