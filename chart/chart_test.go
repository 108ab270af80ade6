package chart

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/etnz/scout"
)

func TestBillingChart(t *testing.T) {
	bars := []scout.BillingBar{
		{Rate: scout.USD(100), Hours: 50, Left: 0, Color: "#687090", Label: "Beta, $10k", Hover: "Hours: 50"},
		{Rate: scout.USD(200), Hours: 100, Left: 50, Color: "#DF1864", Label: "Alpha, $20k", Hover: "Hours: 100"},
	}

	f := BillingChart(bars)

	if len(f.Data) != 1 {
		t.Fatalf("len(Data) = %d, want one trace", len(f.Data))
	}
	bar := f.Data[0]
	if want := []float64{25, 100}; !reflect.DeepEqual(bar.Y, want) {
		t.Errorf("Y = %v, want bar centers %v", bar.Y, want)
	}
	if want := []float64{100, 200}; !reflect.DeepEqual(bar.X, want) {
		t.Errorf("X = %v, want rates %v", bar.X, want)
	}
	if want := []float64{50, 100}; !reflect.DeepEqual(bar.Width, want) {
		t.Errorf("Width = %v, want hours %v", bar.Width, want)
	}
	if bar.HoverTemplate[1] != "Hours: 100<extra></extra>" {
		t.Errorf("HoverTemplate = %v", bar.HoverTemplate)
	}
	if want := []float64{0, 300}; !reflect.DeepEqual(f.Layout.XAxis.Range, want) {
		t.Errorf("XAxis.Range = %v, want %v", f.Layout.XAxis.Range, want)
	}
	if f.Layout.YAxis.Title.Text != "Hours" || f.Layout.XAxis.Title.Text != "Effective $/hr" {
		t.Errorf("axis titles = %q %q", f.Layout.YAxis.Title.Text, f.Layout.XAxis.Title.Text)
	}
}

func TestBillingChart_JSON(t *testing.T) {
	s, err := BillingChart(nil).JSON()
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(s), &got); err != nil {
		t.Fatalf("JSON() is not valid: %v", err)
	}
	layout := got["layout"].(map[string]any)
	if layout["showlegend"] != false || layout["height"] != 600.0 || layout["plot_bgcolor"] != "white" {
		t.Errorf("layout = %v", layout)
	}
	data := got["data"].([]any)[0].(map[string]any)
	if data["orientation"] != "h" || data["textposition"] != "outside" {
		t.Errorf("trace = %v", data)
	}
	if _, ok := layout["xaxis"].(map[string]any)["range"]; ok {
		t.Errorf("an empty chart must let plotly pick the range")
	}
}
