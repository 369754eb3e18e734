package present

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lrdrates/go-rateforecaster/ensemble"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

// missing marks a gap in a line series.
const missing = "-"

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values are left
// as gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(t))
		for j := 0; j < len(t); j++ {
			if j >= len(y[i]) || math.IsNaN(y[i][j]) {
				lineData[i] = append(lineData[i], opts.LineData{Value: missing})
				continue
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(formatDates(t))
	for i, series := range seriesName {
		if i >= len(lineData) {
			break
		}
		line = line.AddSeries(series, lineData[i])
	}
	return line
}

// LineForecast charts the rate history followed by the forecast. The forecast line starts
// at the last observed rate so the two connect.
func LineForecast(history *timedataset.TimeDataset, series ensemble.Series) *charts.Line {
	n := history.Len()
	t := make([]time.Time, 0, n+len(series))
	actual := make([]float64, 0, n+len(series))
	forecast := make([]float64, 0, n+len(series))
	for i := 0; i < n; i++ {
		t = append(t, history.T[i])
		actual = append(actual, history.Y[i])
		if i == n-1 && len(series) > 0 {
			forecast = append(forecast, history.Y[i])
			continue
		}
		forecast = append(forecast, math.NaN())
	}
	for _, fc := range series {
		t = append(t, fc.T)
		actual = append(actual, math.NaN())
		forecast = append(forecast, Round(fc.Value, RatePlaces))
	}
	return LineTSeries(Pair+" Forecast", []string{"Actual", "Forecast"}, t, [][]float64{actual, forecast})
}

// LineConfidence charts the decayed confidence of each forecast day in percent.
func LineConfidence(series ensemble.Series) *charts.Line {
	conf := make([]float64, 0, len(series))
	for _, c := range series.Confidences() {
		conf = append(conf, Round(c*100, 1))
	}
	return LineTSeries("Forecast Confidence (%)", []string{"Confidence"}, series.Times(), [][]float64{conf})
}

// RenderForecast writes an HTML page with the forecast and confidence charts to w.
func RenderForecast(w io.Writer, history *timedataset.TimeDataset, series ensemble.Series) error {
	page := components.NewPage()
	page.AddCharts(
		LineForecast(history, series),
		LineConfidence(series),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("unable to render forecast page, %w", err)
	}
	return nil
}

// PlotForecast renders the forecast page into the file at path.
func PlotForecast(path string, history *timedataset.TimeDataset, series ensemble.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return RenderForecast(io.MultiWriter(file), history, series)
}

func formatDates(t []time.Time) []string {
	dates := make([]string, 0, len(t))
	for _, ti := range t {
		dates = append(dates, ti.Format(DateLayout))
	}
	return dates
}
