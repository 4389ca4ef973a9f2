package usecase

import (
	"context"
	"math"
	"sort"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/geo"
	"shuddhify/pkg/logger"
)

// hotspotLimit caps the number of (area, city) clusters returned to map views.
const hotspotLimit = 20

type GeoUseCase struct {
	reportRepo repository.ReportRepository
	cache      HotspotCache
}

// HotspotCache is an optional read-through cache for hotspot aggregation.
// A nil cache means every request recomputes.
type HotspotCache interface {
	Get(ctx context.Context) ([]Hotspot, bool)
	Set(ctx context.Context, hotspots []Hotspot)
}

func NewGeoUseCase(reportRepo repository.ReportRepository, cache HotspotCache) *GeoUseCase {
	return &GeoUseCase{
		reportRepo: reportRepo,
		cache:      cache,
	}
}

// NearbyReport pairs a report with its distance from the query point.
type NearbyReport struct {
	*entity.Report
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"`
}

type Hotspot struct {
	Area              string    `json:"area"`
	City              string    `json:"city"`
	Count             int       `json:"count"`
	HighSeverityCount int       `json:"high_severity_count"`
	Centroid          geo.Point `json:"centroid"`
}

// FindNearby returns active reports within radiusMeters of the query point,
// sorted ascending by haversine distance. Reports whose stored coordinates
// fall outside valid range are skipped rather than failing the query.
func (uc *GeoUseCase) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]NearbyReport, error) {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return nil, errors.BadRequest("Radius must be a positive number of meters", nil)
	}

	origin := geo.Point{Lng: lng, Lat: lat}
	if !origin.Valid() {
		return nil, errors.BadRequest("Invalid query coordinates", nil)
	}

	reports, err := uc.reportRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var nearby []NearbyReport
	for _, report := range reports {
		if !report.Location.Coordinates.Valid() {
			continue
		}

		distance := geo.Haversine(origin, report.Location.Coordinates)
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, NearbyReport{
			Report:         report,
			DistanceMeters: distance,
			Distance:       geo.FormatDistance(distance),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMeters != nearby[j].DistanceMeters {
			return nearby[i].DistanceMeters < nearby[j].DistanceMeters
		}
		return nearby[i].ID < nearby[j].ID
	})

	return nearby, nil
}

// ComputeHotspots clusters active reports by exact (area, city) pair. The
// centroid is the arithmetic mean of member longitudes and latitudes taken
// independently; at city scale the flat-earth error is negligible.
func (uc *GeoUseCase) ComputeHotspots(ctx context.Context) ([]Hotspot, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	reports, err := uc.reportRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		hotspot Hotspot
		sumLng  float64
		sumLat  float64
	}

	groups := make(map[[2]string]*accumulator)
	for _, report := range reports {
		key := [2]string{report.Location.Area, report.Location.City}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{hotspot: Hotspot{
				Area: report.Location.Area,
				City: report.Location.City,
			}}
			groups[key] = acc
		}

		acc.hotspot.Count++
		if report.Severity == entity.SeverityHigh {
			acc.hotspot.HighSeverityCount++
		}
		acc.sumLng += report.Location.Coordinates.Lng
		acc.sumLat += report.Location.Coordinates.Lat
	}

	hotspots := make([]Hotspot, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.hotspot.Count)
		acc.hotspot.Centroid = geo.Point{
			Lng: acc.sumLng / n,
			Lat: acc.sumLat / n,
		}
		hotspots = append(hotspots, acc.hotspot)
	}

	// Equal counts order by area then city so rankings are stable.
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].Count != hotspots[j].Count {
			return hotspots[i].Count > hotspots[j].Count
		}
		if hotspots[i].Area != hotspots[j].Area {
			return hotspots[i].Area < hotspots[j].Area
		}
		return hotspots[i].City < hotspots[j].City
	})

	if len(hotspots) > hotspotLimit {
		hotspots = hotspots[:hotspotLimit]
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, hotspots)
		logger.Debug("hotspot cache refreshed with %d clusters", len(hotspots))
	}

	return hotspots, nil
}
