package adapters

import (
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

func MapSeriesDomainToApi(series domain.Series) api.Series {
	buckets := make([]api.Bucket, 0, len(series.Buckets))
	for _, b := range series.Buckets {
		buckets = append(buckets, api.Bucket{
			Label:       b.Label,
			PeriodStart: b.PeriodStart,
			PeriodEnd:   b.PeriodEnd,
			Total:       b.Total,
			Count:       b.Count,
		})
	}

	return api.Series{
		Dimension:   series.DimensionFilter,
		Granularity: string(series.Granularity),
		Start:       series.Range.Start,
		End:         series.Range.End,
		Total:       series.Total(),
		Buckets:     buckets,
	}
}

func MapKPISnapshotDomainToApi(snapshot domain.KPISnapshot) api.KPISnapshot {
	return api.KPISnapshot{
		Totals:     snapshot.Totals,
		Breakdowns: snapshot.Breakdowns,
	}
}

func MapOverviewDomainToApi(overview domain.Overview) api.Overview {
	return api.Overview{
		TotalPatients:   overview.TotalPatients,
		StaysInProgress: overview.StaysInProgress,
		TotalActs:       overview.TotalActs,
		RevenueYear:     overview.RevenueYear,
		RevenueMonth:    overview.RevenueMonth,
		Stays:           MapKPISnapshotDomainToApi(overview.Stays),
		Acts:            MapKPISnapshotDomainToApi(overview.Acts),
		Investments:     MapKPISnapshotDomainToApi(overview.Investments),
		ActiveByService: overview.ActiveByService,
		RevenueByMonth:  MapSeriesDomainToApi(overview.RevenueByMonth),
	}
}

func MapAssessmentDomainToApi(assessment domain.Assessment) api.Forecast {
	f := assessment.Forecast
	points := make([]api.ForecastPoint, 0, len(f.PredictedPoints))
	for _, p := range f.PredictedPoints {
		points = append(points, api.ForecastPoint{
			Date:  p.Date,
			Label: p.Label,
			Value: p.Value,
			Min:   p.Min,
			Max:   p.Max,
		})
	}

	return api.Forecast{
		Service:           f.Service,
		PredictionType:    string(f.PredictionType),
		HorizonDays:       f.HorizonDays,
		Points:            points,
		Trend:             string(f.Trend),
		VariationPercent:  f.VariationPercent,
		ConfidencePercent: f.ConfidencePercent,
		MeanValue:         f.MeanValue,
		MinValue:          f.MinValue,
		MaxValue:          f.MaxValue,
		KeyFactors:        f.KeyFactors,
		Recommendations:   f.Recommendations,
		Risk:              string(assessment.Risk),
	}
}
