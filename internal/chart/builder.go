// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package chart

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/localescout/internal/models"
)

// Dashboard look.
const (
	PaperBackground = "#DCDCDC"
	PlotBackground  = "#E9E9E9"
	FontFamily      = "Garamond"
	FontSize        = 18

	// OpenStreetMapStyle needs no access token.
	OpenStreetMapStyle = "open-street-map"

	densityRadius = 40
)

// Blugrn is Plotly's sequential Blugrn palette, cycled across categories.
var Blugrn = []string{
	"rgb(196, 230, 195)",
	"rgb(150, 210, 164)",
	"rgb(109, 188, 144)",
	"rgb(77, 162, 132)",
	"rgb(54, 135, 122)",
	"rgb(38, 107, 110)",
	"rgb(29, 79, 96)",
}

var emptyTitles = map[Role]string{
	RoleSimilarity:  "Top 5 attributes associated with being open (Jaccard Similarity)",
	RoleSeasonality: "Seasonality by Review Counts",
}

// MapOptions configures the two map charts.
type MapOptions struct {
	Token string
	Style string
	Zoom  float64
}

// Builder renders figures for every chart role.
type Builder struct {
	maps MapOptions
}

// NewBuilder returns a Builder. Without a token the map style falls back to
// OpenStreetMapStyle, since Mapbox styles refuse to load without one.
func NewBuilder(opts MapOptions) *Builder {
	if opts.Style == "" {
		opts.Style = "streets"
	}
	if opts.Token == "" {
		opts.Style = OpenStreetMapStyle
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 10
	}
	return &Builder{maps: opts}
}

func baseLayout(title string) Layout {
	l := Layout{
		Font:         Font{Family: FontFamily, Size: FontSize},
		PaperBGColor: PaperBackground,
		PlotBGColor:  PlotBackground,
	}
	if title != "" {
		l.Title = &Title{Text: title, X: floatPtr(0.5)}
	}
	return l
}

// categoryBars emits one bar trace per category so each category gets its
// own legend entry and palette color.
func categoryBars(labels []string, values []float64) []Trace {
	traces := make([]Trace, len(labels))
	for i, label := range labels {
		traces[i] = Trace{
			Type:   "bar",
			Name:   label,
			X:      []interface{}{label},
			Y:      []interface{}{values[i]},
			Marker: &Marker{Color: Blugrn[i%len(Blugrn)]},
		}
	}
	return traces
}

// TopTen renders the top cities for a tag.
func (b *Builder) TopTen(tag models.Tag, rows []models.CityCount) *Figure {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.City
		values[i] = float64(r.Count)
	}

	layout := baseLayout(fmt.Sprintf("Cities With the Most %s Businesses", tag.Name))
	layout.BarMode = "relative"
	layout.BarGap = floatPtr(0.75)
	layout.XAxis = &Axis{Title: &Title{Text: "city"}}
	layout.YAxis = &Axis{Title: &Title{Text: "cnt"}}

	return &Figure{Data: categoryBars(labels, values), Layout: layout}
}

// Similarity renders the attributes most associated with being open.
func (b *Builder) Similarity(city string, scores []models.AttributeScore) *Figure {
	labels := make([]string, len(scores))
	values := make([]float64, len(scores))
	for i, s := range scores {
		labels[i] = s.Attribute
		values[i] = s.Similarity
	}

	layout := baseLayout("Top 5 attributes associated with being open (Jaccard Similarity)")
	layout.BarMode = "relative"
	layout.BarGap = floatPtr(0.5)
	layout.XAxis = &Axis{Title: &Title{Text: "Top 5 tags for open businesses in " + city}}
	layout.YAxis = &Axis{Title: &Title{Text: "Jaccard Similarity"}}

	return &Figure{Data: categoryBars(labels, values), Layout: layout}
}

func (b *Builder) mapbox(center models.Centroid) *Mapbox {
	return &Mapbox{
		AccessToken: b.maps.Token,
		Style:       b.maps.Style,
		Center:      Center{Lat: center.Latitude, Lon: center.Longitude},
		Zoom:        b.maps.Zoom,
	}
}

// Geo renders open businesses as a scatter map. Marker size is stars
// squared and color follows stars on the Bluered scale.
func (b *Builder) Geo(res *models.GeoResult) *Figure {
	n := len(res.Businesses)
	lat := make([]float64, n)
	lon := make([]float64, n)
	text := make([]string, n)
	size := make([]float64, n)
	color := make([]float64, n)
	for i, biz := range res.Businesses {
		lat[i] = biz.Latitude
		lon[i] = biz.Longitude
		text[i] = biz.Name + "<br>" + strconv.FormatFloat(biz.Stars, 'f', -1, 64) + " stars"
		size[i] = biz.Stars * biz.Stars
		color[i] = biz.Stars
	}

	layout := baseLayout("Filtered Businesses. Larger/Redder Means Higher Average Stars")
	layout.HoverMode = "closest"
	layout.Mapbox = b.mapbox(res.Center)

	return &Figure{
		Data: []Trace{{
			Type:      "scattermapbox",
			Lat:       lat,
			Lon:       lon,
			Mode:      "markers",
			Text:      text,
			HoverInfo: "text",
			Marker:    &Marker{Size: size, Color: color, ColorScale: "Bluered"},
		}},
		Layout: layout,
	}
}

// Density renders review counts as a density heatmap scaled from 0 to the
// largest review count.
func (b *Builder) Density(res *models.DensityResult) *Figure {
	n := len(res.Businesses)
	lat := make([]float64, n)
	lon := make([]float64, n)
	z := make([]float64, n)
	text := make([]string, n)
	for i, biz := range res.Businesses {
		lat[i] = biz.Latitude
		lon[i] = biz.Longitude
		z[i] = float64(biz.ReviewCount)
		text[i] = biz.Name
	}

	layout := baseLayout("Review Density in " + res.City)
	layout.Mapbox = b.mapbox(res.Center)

	return &Figure{
		Data: []Trace{{
			Type:       "densitymapbox",
			Lat:        lat,
			Lon:        lon,
			Z:          z,
			Text:       text,
			Radius:     densityRadius,
			ZMin:       floatPtr(0),
			ZMax:       floatPtr(float64(res.MaxReviewCount)),
			ColorScale: "Viridis",
		}},
		Layout: layout,
	}
}

// Seasonality renders review counts per month. months is expected to be
// the twelve rows produced by analytics.FillMonths.
func (b *Builder) Seasonality(months []models.MonthCount) *Figure {
	labels := make([]string, len(months))
	values := make([]float64, len(months))
	for i, m := range months {
		labels[i] = m.Label
		values[i] = float64(m.Count)
	}

	traces := categoryBars(labels, values)
	for i := range traces {
		traces[i].ShowLegend = boolPtr(false)
	}

	layout := baseLayout("Seasonality by Review Counts")
	layout.BarMode = "relative"
	layout.XAxis = &Axis{Title: &Title{Text: "Month"}}
	layout.YAxis = &Axis{Title: &Title{Text: "Review Count"}}

	return &Figure{Data: traces, Layout: layout}
}

// ReviewStars renders how a city's reviews split across star ratings.
func (b *Builder) ReviewStars(city string, totals []models.StarTotal) *Figure {
	x := make([]interface{}, len(totals))
	y := make([]interface{}, len(totals))
	for i, t := range totals {
		x[i] = t.Stars
		y[i] = t.Count
	}

	layout := baseLayout("Review Stars in " + city)
	layout.XAxis = &Axis{Title: &Title{Text: "stars"}}
	layout.YAxis = &Axis{Title: &Title{Text: "total_count"}}

	return &Figure{
		Data:   []Trace{{Type: "bar", X: x, Y: y, Marker: &Marker{Color: Blugrn[len(Blugrn)-1]}}},
		Layout: layout,
	}
}

// Empty renders a placeholder with message centered on blank axes. The
// role's title is kept so the slot still reads correctly.
func (b *Builder) Empty(role Role, message string) *Figure {
	layout := baseLayout(emptyTitles[role])
	layout.XAxis = &Axis{Visible: boolPtr(false)}
	layout.YAxis = &Axis{Visible: boolPtr(false)}
	layout.Annotations = []Annotation{{
		Text: message, XRef: "paper", YRef: "paper", X: 0.5, Y: 0.5,
	}}
	return &Figure{Data: []Trace{}, Layout: layout}
}
