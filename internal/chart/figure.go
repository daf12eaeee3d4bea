// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package chart turns analytics tables into Plotly figure specifications.
//
// A Figure serializes to the {"data": [...], "layout": {...}} object that
// Plotly.newPlot accepts, so the browser renders it without reshaping.
package chart

// Role names the dashboard slot a figure is drawn in.
type Role string

// Chart roles.
const (
	RoleTopTen      Role = "top_ten"
	RoleSimilarity  Role = "similarity"
	RoleGeo         Role = "geo"
	RoleDensity     Role = "density"
	RoleSeasonality Role = "seasonality"
	RoleReviewStars Role = "review_stars"
)

// DashboardRoles are the roles a full dashboard response carries.
var DashboardRoles = []Role{RoleTopTen, RoleSimilarity, RoleGeo, RoleDensity, RoleSeasonality}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleTopTen, RoleSimilarity, RoleGeo, RoleDensity, RoleSeasonality, RoleReviewStars:
		return true
	}
	return false
}

// Figure is a Plotly figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the subset of Plotly trace attributes the dashboard uses.
type Trace struct {
	Type       string        `json:"type"`
	Name       string        `json:"name,omitempty"`
	X          []interface{} `json:"x,omitempty"`
	Y          []interface{} `json:"y,omitempty"`
	Lat        []float64     `json:"lat,omitempty"`
	Lon        []float64     `json:"lon,omitempty"`
	Z          []float64     `json:"z,omitempty"`
	Text       []string      `json:"text,omitempty"`
	HoverInfo  string        `json:"hoverinfo,omitempty"`
	Mode       string        `json:"mode,omitempty"`
	Marker     *Marker       `json:"marker,omitempty"`
	Radius     int           `json:"radius,omitempty"`
	ZMin       *float64      `json:"zmin,omitempty"`
	ZMax       *float64      `json:"zmax,omitempty"`
	ColorScale string        `json:"colorscale,omitempty"`
	ShowLegend *bool         `json:"showlegend,omitempty"`
}

// Marker styles bar and scatter points.
type Marker struct {
	Color      interface{} `json:"color,omitempty"`
	Size       []float64   `json:"size,omitempty"`
	ColorScale string      `json:"colorscale,omitempty"`
	ShowScale  bool        `json:"showscale,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Font         Font         `json:"font"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	BarMode      string       `json:"barmode,omitempty"`
	BarGap       *float64     `json:"bargap,omitempty"`
	HoverMode    string       `json:"hovermode,omitempty"`
	ShowLegend   *bool        `json:"showlegend,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Mapbox       *Mapbox      `json:"mapbox,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

// Title is a layout title.
type Title struct {
	Text string   `json:"text"`
	X    *float64 `json:"x,omitempty"`
}

// Font is a layout font.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Axis is an x or y axis.
type Axis struct {
	Title   *Title `json:"title,omitempty"`
	Visible *bool  `json:"visible,omitempty"`
}

// Mapbox positions the map of scattermapbox and densitymapbox traces.
type Mapbox struct {
	AccessToken string  `json:"accesstoken,omitempty"`
	Style       string  `json:"style"`
	Center      Center  `json:"center"`
	Zoom        float64 `json:"zoom"`
	Bearing     float64 `json:"bearing"`
	Pitch       float64 `json:"pitch"`
}

// Center is a map center.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Annotation is a free text label, used for empty-state charts.
type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }
