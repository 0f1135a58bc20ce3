package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Norgate-AV/winarea/internal/geom"
)

// parseFloats splits s on commas into exactly n numbers
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: expected %d comma-separated numbers, got %d", s, n, len(parts))
	}

	out := make([]float64, n)

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}

		out[i] = v
	}

	return out, nil
}

// parseCoord reads "x,y"
func parseCoord(s string) (geom.Coord, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geom.Coord{}, err
	}

	return geom.NewCoord(v[0], v[1])
}

// parseArea reads "x,y,w,h"
func parseArea(s string) (geom.Area, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Area{}, err
	}

	point, err := geom.NewCoord(v[0], v[1])
	if err != nil {
		return geom.Area{}, fmt.Errorf("%q: %w", s, err)
	}

	size, err := geom.NewCoord(v[2], v[3])
	if err != nil {
		return geom.Area{}, fmt.Errorf("%q: %w", s, err)
	}

	if size.X < 0 || size.Y < 0 {
		return geom.Area{}, fmt.Errorf("%q: width and height must be >= 0", s)
	}

	return geom.AreaOf(point, size), nil
}

// parsePolygon reads "x,y;x,y;x,y;..."
func parsePolygon(s string) (geom.Polygon, error) {
	var points []geom.Coord

	for _, p := range strings.Split(s, ";") {
		if strings.TrimSpace(p) == "" {
			continue
		}

		c, err := parseCoord(p)
		if err != nil {
			return geom.Polygon{}, err
		}

		points = append(points, c)
	}

	return geom.NewPolygon(points...)
}

// parsePos reads "v" as (v, v) or "x,y"
func parsePos(s string) (geom.Coord, error) {
	if !strings.Contains(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return geom.Coord{}, fmt.Errorf("%q: %w", s, err)
		}

		return geom.NewCoord(v, v)
	}

	return parseCoord(s)
}
