package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/mo"

	"job-board-web/internal/models"
)

// ReferenceSource serves the lookup collections of the posting form.
type ReferenceSource interface {
	Positions(ctx context.Context) ([]models.JobPosition, error)
	Cities(ctx context.Context) ([]models.City, error)
}

// ReferenceData holds the outcome of each lookup fetch separately.
type ReferenceData struct {
	Positions mo.Result[[]models.JobPosition]
	Cities    mo.Result[[]models.City]
}

// FetchReferenceData requests positions and cities concurrently. The two
// fetches are joined independently: one failing leaves the other intact.
func FetchReferenceData(ctx context.Context, src ReferenceSource, logger *slog.Logger) ReferenceData {
	var (
		wg   sync.WaitGroup
		data ReferenceData
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		positions, err := src.Positions(ctx)
		data.Positions = mo.TupleToResult(positions, err)
	}()
	go func() {
		defer wg.Done()
		cities, err := src.Cities(ctx)
		data.Cities = mo.TupleToResult(cities, err)
	}()
	wg.Wait()

	if data.Positions.IsError() {
		logger.Error("failed to load job positions", "error", data.Positions.Error())
	}
	if data.Cities.IsError() {
		logger.Error("failed to load cities", "error", data.Cities.Error())
	}
	return data
}
