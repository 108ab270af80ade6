// Package chart describes plotly.js figures of the dashboard.
//
// A Figure marshals to the JSON expected by Plotly.newPlot(div, figure.data, figure.layout).
package chart

import (
	"encoding/json"

	"github.com/etnz/scout"
)

// Figure is a plotly.js figure.
type Figure struct {
	Data   []Bar  `json:"data"`
	Layout Layout `json:"layout"`
}

// Bar is a bar trace.
type Bar struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	Orientation   string    `json:"orientation,omitempty"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Width         []float64 `json:"width,omitempty"`
	Marker        Marker    `json:"marker"`
	Text          []string  `json:"text,omitempty"`
	TextPosition  string    `json:"textposition,omitempty"`
	HoverTemplate []string  `json:"hovertemplate,omitempty"`
}

// Marker sets the colour of each bar.
type Marker struct {
	Color []string `json:"color"`
}

// Layout is the figure layout.
type Layout struct {
	Font         Font   `json:"font"`
	Margin       Margin `json:"margin"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	ShowLegend   bool   `json:"showlegend"`
	PlotBGColor  string `json:"plot_bgcolor"`
	PaperBGColor string `json:"paper_bgcolor"`
}

type Font struct {
	Color string `json:"color"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Axis is an axis of the figure, an empty range lets plotly decide.
type Axis struct {
	Title     Title     `json:"title"`
	Range     []float64 `json:"range,omitempty"`
	ShowLine  bool      `json:"showline"`
	LineWidth int       `json:"linewidth"`
	LineColor string    `json:"linecolor"`
	GridColor string    `json:"gridcolor"`
}

type Title struct {
	Text string `json:"text"`
}

// axis returns an axis with a black line and no grid.
func axis(title string) Axis {
	return Axis{
		Title:     Title{Text: title},
		ShowLine:  true,
		LineWidth: 1,
		LineColor: "black",
		GridColor: "rgba(0,0,0,0)",
	}
}

// BillingChart draws projects as horizontal bars: as long as their rate, as thick as their
// hours, stacked by increasing rate.
func BillingChart(bars []scout.BillingBar) Figure {
	trace := Bar{
		Type:         "bar",
		Name:         "Effective $/hr",
		Orientation:  "h",
		X:            []float64{},
		Y:            []float64{},
		Marker:       Marker{Color: []string{}},
		TextPosition: "outside",
	}
	maxRate := 0.0
	for _, b := range bars {
		rate := b.Rate.Float()
		trace.X = append(trace.X, rate)
		trace.Y = append(trace.Y, b.Left+b.Hours/2)
		trace.Width = append(trace.Width, b.Hours)
		trace.Marker.Color = append(trace.Marker.Color, b.Color)
		trace.Text = append(trace.Text, b.Label)
		trace.HoverTemplate = append(trace.HoverTemplate, b.Hover+"<extra></extra>")
		if rate > maxRate {
			maxRate = rate
		}
	}

	xaxis := axis("Effective $/hr")
	if maxRate > 0 {
		xaxis.Range = []float64{0, maxRate * 1.5}
	}
	return Figure{
		Data: []Bar{trace},
		Layout: Layout{
			Font:         Font{Color: "black"},
			Margin:       Margin{L: 20, R: 20, T: 20, B: 20},
			Height:       600,
			Width:        800,
			XAxis:        xaxis,
			YAxis:        axis("Hours"),
			ShowLegend:   false,
			PlotBGColor:  "white",
			PaperBGColor: "white",
		},
	}
}

// JSON returns the figure as JSON.
func (f Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	return string(b), err
}
