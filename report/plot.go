package report

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const bandPoints = 50

func (s RunStats) axis(name string) float64 {
	switch name {
	case "CNV_failure_rate":
		return s.CNVFailureRate
	case "avg_cnv_calls_in_passing_samples":
		return s.AvgCNVCallsInPassingSamples
	case "MadIQRBivarSum":
		return s.MadIQRBivarSum
	}
	return math.NaN()
}

// writeRegPlot renders a scatter of yName against xName over the run stats,
// with a least-squares fit line and its 95% confidence band, to
// <outdir>/<xName>VS<yName>.png.
func writeRegPlot(outdir string, table []RunStats, xName, yName string) error {
	xs := make([]float64, 0, len(table))
	ys := make([]float64, 0, len(table))
	for _, s := range table {
		x, y := s.axis(xName), s.axis(yName)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < 2 {
		log.Println("Skipping", xName, "vs", yName, "plot:", len(xs), "usable points")
		return nil
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "runs",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
			},
		},
	}
	series = append(series, fitSeries(xs, ys)...)

	graph := chart.Chart{
		Width:  640,
		Height: 480,
		XAxis:  chart.XAxis{Name: xName},
		YAxis:  chart.YAxis{Name: yName},
		Series: series,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(filepath.Join(outdir, xName+"VS"+yName+".png"))
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	_, err = buffer.WriteTo(outFile)
	return pfx.Err(err)
}

// fitSeries builds the least-squares line over the observed x range, plus
// the upper and lower bounds of the 95% confidence band for the fitted mean
// when there are enough points to estimate the residual variance.
func fitSeries(xs, ys []float64) []chart.Series {
	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if minX == maxX {
		// No spread in x; a fit is meaningless.
		return nil
	}

	n := float64(len(xs))
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	gridX := make([]float64, 0, bandPoints)
	fitY := make([]float64, 0, bandPoints)
	for i := 0; i < bandPoints; i++ {
		x := minX + (maxX-minX)*float64(i)/float64(bandPoints-1)
		gridX = append(gridX, x)
		fitY = append(fitY, alpha+beta*x)
	}

	out := []chart.Series{
		chart.ContinuousSeries{
			Name:    "fit",
			XValues: gridX,
			YValues: fitY,
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				StrokeWidth: 2,
			},
		},
	}

	if len(xs) < 3 {
		return out
	}

	// Residual standard error and the spread of x, for the pointwise
	// standard error of the fitted mean.
	var rss, sxx float64
	meanX := stat.Mean(xs, nil)
	for i, x := range xs {
		resid := ys[i] - (alpha + beta*x)
		rss += resid * resid
		sxx += (x - meanX) * (x - meanX)
	}
	s := math.Sqrt(rss / (n - 2))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}.Quantile(0.975)

	upper := make([]float64, len(gridX))
	lower := make([]float64, len(gridX))
	for i, x := range gridX {
		se := s * math.Sqrt(1/n+(x-meanX)*(x-meanX)/sxx)
		upper[i] = fitY[i] + t*se
		lower[i] = fitY[i] - t*se
	}

	bandStyle := chart.Style{
		StrokeColor:     chart.ColorLightGray,
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 2},
	}
	return append(out,
		chart.ContinuousSeries{Name: "ci95 upper", XValues: gridX, YValues: upper, Style: bandStyle},
		chart.ContinuousSeries{Name: "ci95 lower", XValues: gridX, YValues: lower, Style: bandStyle},
	)
}
