package engine

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-gol-engine/utils"
)

func TestParamsFromConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.CellColor = "#ff0000"
	params, err := ParamsFromConfig(config)
	if err != nil {
		t.Fatalf("ParamsFromConfig: %v", err)
	}
	if params.Width != 10 || params.Height != 10 || params.CellSize != 20 || !params.GridVisible {
		t.Fatalf("params = %+v", params)
	}
	if params.CellColor != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("color = %v", params.CellColor)
	}
	if params.Interval != config.FrameRate || params.UseMemoryPool != config.UseMemoryPool {
		t.Fatalf("params = %+v", params)
	}
}

func TestParamsFromConfigRejectsBadColor(t *testing.T) {
	config := utils.DefaultConfig()
	config.CellColor = "black"
	if _, err := ParamsFromConfig(config); err == nil {
		t.Fatalf("expected error for bad color")
	}
}
