package stats

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"planetes/internal/model"
)

// SaveLengthHistoryPlot draws best route length over epochs and saves it as
// a PNG (format chosen by the path extension).
func SaveLengthHistoryPlot(history []float64, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("length history is empty")
	}

	p := plot.New()
	p.Title.Text = "Route length over epochs"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Route length"

	points := make(plotter.XYs, len(history))
	for i, length := range history {
		points[i].X = float64(i)
		points[i].Y = length
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveRoutePlot draws the cities and the closed tour connecting them. Names
// may be nil; when present it must parallel cities.
func SaveRoutePlot(cities []model.Location, route []int, names []string, title, path string) error {
	if len(route) != len(cities) {
		return fmt.Errorf("route length %d does not match %d cities", len(route), len(cities))
	}
	if len(names) > 0 && len(names) != len(cities) {
		return fmt.Errorf("got %d names for %d cities", len(names), len(cities))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	// Closed tour: revisit the first city after the last.
	tour := make(plotter.XYs, len(route)+1)
	for i, city := range route {
		tour[i].X = cities[city].X
		tour[i].Y = cities[city].Y
	}
	tour[len(route)] = tour[0]

	line, err := plotter.NewLine(tour)
	if err != nil {
		return err
	}
	scatter, err := plotter.NewScatter(tour[:len(route)])
	if err != nil {
		return err
	}
	p.Add(line, scatter)

	if len(names) > 0 {
		labels := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(cities)),
			Labels: make([]string, len(cities)),
		}
		for i, city := range cities {
			labels.XYs[i].X = city.X
			labels.XYs[i].Y = city.Y
			labels.Labels[i] = names[i]
		}
		labelPlot, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}
		p.Add(labelPlot)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
