package service

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/returnlens/Annualized-Return-Backend/internal/apperrors"
	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// Chart themes keyed by the sign of the plotted values. The annualized and
// log returns always share the sign of the total return, so one theme per
// chart is enough.
const (
	themeGain = "return-gain"
	themeLoss = "return-loss"
)

func init() {
	charts.AddTheme(themeGain, charts.ThemeOption{
		AxisStrokeColor:    charts.Color{R: 110, G: 112, B: 121, A: 255},
		AxisSplitLineColor: charts.Color{R: 224, G: 230, B: 241, A: 255},
		BackgroundColor:    charts.Color{R: 255, G: 255, B: 255, A: 255},
		TextColor:          charts.Color{R: 70, G: 70, B: 70, A: 255},
		SeriesColors: []charts.Color{
			{R: 46, G: 125, B: 50, A: 255},
		},
	})
	charts.AddTheme(themeLoss, charts.ThemeOption{
		AxisStrokeColor:    charts.Color{R: 110, G: 112, B: 121, A: 255},
		AxisSplitLineColor: charts.Color{R: 224, G: 230, B: 241, A: 255},
		BackgroundColor:    charts.Color{R: 255, G: 255, B: 255, A: 255},
		TextColor:          charts.Color{R: 70, G: 70, B: 70, A: 255},
		SeriesColors: []charts.Color{
			{R: 198, G: 40, B: 40, A: 255},
		},
	})
}

// ChartService renders the two-bar comparison of the annualized and
// continuously compounded annual rates.
type ChartService struct {
	width  int
	height int
}

// NewChartService creates a new ChartService with the given image size.
func NewChartService(width, height int) *ChartService {
	return &ChartService{width: width, height: height}
}

// BuildSeries returns the chart entries for the valid components of a
// result, annualized return first, log return second. Invalid components
// are omitted entirely.
func (s *ChartService) BuildSeries(res model.CalculationResult) []model.ChartEntry {
	entries := make([]model.ChartEntry, 0, 2)

	if res.IsValidAnnualized {
		entries = append(entries, model.ChartEntry{
			Label:        "Annualized Return",
			ShortLabel:   "Annualized",
			ValuePercent: res.AnnualizedReturn * 100,
			Description:  "Equivalent compound annual growth rate",
		})
	}

	if res.IsValidLog {
		entries = append(entries, model.ChartEntry{
			Label:        "Annualized Log Return",
			ShortLabel:   "Log",
			ValuePercent: res.AnnualizedLogReturn * 100,
			Description:  "Continuously compounded annual rate",
		})
	}

	return entries
}

// Render draws the entries as a PNG bar chart. The y-axis always includes
// zero so the zero baseline stays visible, and bars are colored by sign
// (one color for gains, another for losses).
func (s *ChartService) Render(entries []model.ChartEntry, subtitle string) ([]byte, error) {
	if len(entries) == 0 {
		return nil, apperrors.ErrNothingToChart
	}

	values := make([]float64, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.ValuePercent
		labels[i] = e.ShortLabel
	}

	yMin, yMax := chartRange(values)
	theme := themeGain
	if entries[0].ValuePercent < 0 {
		theme = themeLoss
	}

	seriesList := charts.NewSeriesListDataFromValues([][]float64{values}, charts.ChartTypeBar)
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc("Annualized vs. Log Return", subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.WidthOptionFunc(s.width),
		charts.HeightOptionFunc(s.height),
		charts.ThemeOptionFunc(theme),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrChartRender, err)
	}

	img, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrChartRender, err)
	}
	return img, nil
}

// chartRange pads the value range by 10% and stretches it to include the
// zero reference line.
func chartRange(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}

	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 1
	}
	return min - pad, max + pad
}
