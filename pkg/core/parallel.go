package core

import "golang.org/x/sync/errgroup"

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits h rows into at most n contiguous, non-overlapping bands of
// near-equal height. Every row belongs to exactly one band.
func Bands(h, n int) []Band {
	if h <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > h {
		n = h
	}
	bands := make([]Band, 0, n)
	base, extra := h/n, h%n
	y := 0
	for i := 0; i < n; i++ {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// ForEachBand runs fn once per band of h rows split across n workers and
// returns after every call has finished. With one band fn runs on the
// calling goroutine.
func ForEachBand(h, n int, fn func(y0, y1 int)) {
	bands := Bands(h, n)
	if len(bands) == 1 {
		fn(bands[0].Y0, bands[0].Y1)
		return
	}
	var g errgroup.Group
	for _, b := range bands {
		g.Go(func() error {
			fn(b.Y0, b.Y1)
			return nil
		})
	}
	// The closures never fail, so Wait only joins.
	g.Wait()
}
