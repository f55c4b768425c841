package dataimporter

import (
	"context"
	"fmt"
	"math"

	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"github.com/mirinda123/MetroDrifter/pkg/overpass"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type GeometryReport struct {
	Downloaded []int64
	Failed     []int64
	Skipped    int
}

type geometryResult struct {
	ID  int64
	Err error
}

// DownloadGeometry fetches the geometry of every id that has no geometry file yet.
// Existing files are never requested again.
func (i *Importer) DownloadGeometry(ctx context.Context, ids map[int64]struct{}) GeometryReport {
	allIDs := maps.Keys(ids)
	slices.Sort(allIDs)

	var missing []int64
	for _, id := range allIDs {
		if !i.Store.GeometryExists(id) {
			missing = append(missing, id)
		}
	}

	report := GeometryReport{
		Skipped: len(allIDs) - len(missing),
	}

	log.Info().
		Int("total", len(allIDs)).
		Int("existing", report.Skipped).
		Int("download", len(missing)).
		Msg("Line geometry")

	concurrency := i.GeometryConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	batches := util.Chunk(missing, concurrency)
	done := 0

	for batchIndex, batch := range batches {
		p := pool.NewWithResults[geometryResult]().WithMaxGoroutines(len(batch))

		for _, id := range batch {
			id := id

			p.Go(func() geometryResult {
				return geometryResult{ID: id, Err: i.saveGeometry(ctx, id)}
			})
		}

		var ok, failed []int64
		for _, result := range p.Wait() {
			if result.Err != nil {
				log.Warn().Err(result.Err).Int64("id", result.ID).Msg("Failed to download geometry")
				failed = append(failed, result.ID)
			} else {
				ok = append(ok, result.ID)
			}
		}
		slices.Sort(ok)
		slices.Sort(failed)

		report.Downloaded = append(report.Downloaded, ok...)
		report.Failed = append(report.Failed, failed...)

		done += len(batch)
		percentage := math.Round(float64(done) / float64(len(missing)) * 100)

		event := log.Info().
			Str("progress", fmt.Sprintf("%.0f%%", percentage)).
			Ints64("ids", batch).
			Int("ok", len(ok))
		if len(failed) > 0 {
			event = event.Ints64("failed", failed)
		}
		event.Msg("Geometry batch")

		if batchIndex < len(batches)-1 {
			if util.Sleep(ctx, i.GeometryBatchPause) != nil {
				break
			}
		}
	}

	slices.Sort(report.Downloaded)
	slices.Sort(report.Failed)

	return report
}

// FetchGeometry builds the geometry record of one relation from its member ways
func (i *Importer) FetchGeometry(ctx context.Context, relationID int64) (*metro.Geometry, error) {
	response, err := i.Overpass.Query(ctx, overpass.RelationWays(relationID))
	if err != nil {
		return nil, fmt.Errorf("geometry of %d: %w", relationID, err)
	}

	return metro.NewGeometry(response.WayGeometries()), nil
}

func (i *Importer) saveGeometry(ctx context.Context, relationID int64) error {
	geometry, err := i.FetchGeometry(ctx, relationID)
	if err != nil {
		return err
	}

	return i.Store.WriteGeometry(relationID, geometry)
}
