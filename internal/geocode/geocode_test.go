package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

func TestStaticGeocode(t *testing.T) {
	table := DefaultTable()

	p, err := table.Geocode(context.Background(), "6666 W 66th St, Chicago, Illinois")
	require.NoError(t, err)
	assert.Equal(t, 41.772, p.Lat())
	assert.Equal(t, -87.782, p.Lon())

	_, err = table.Geocode(context.Background(), "1 Nowhere Lane")
	require.ErrorIs(t, err, ErrNotFound)
}

type failingGeocoder struct{ err error }

func (f failingGeocoder) Geocode(context.Context, string) (geometry.Point, error) {
	return geometry.Point{}, f.err
}

func TestFallbackFirstHitWins(t *testing.T) {
	primary := Static{"plant": geometry.MakePoint(1, 1)}
	secondary := Static{"plant": geometry.MakePoint(2, 2)}

	p, err := Fallback{primary, secondary}.Geocode(context.Background(), "plant")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Lat())
}

func TestFallbackTriesNextOnNotFound(t *testing.T) {
	chain := Fallback{Static{}, Static{"plant": geometry.MakePoint(2, 2)}}

	p, err := chain.Geocode(context.Background(), "plant")
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Lat())
}

func TestFallbackAbortsOnHardError(t *testing.T) {
	boom := errors.New("connection refused")
	chain := Fallback{failingGeocoder{err: boom}, Static{"plant": geometry.MakePoint(2, 2)}}

	_, err := chain.Geocode(context.Background(), "plant")
	require.ErrorIs(t, err, boom)
}

func TestFallbackExhausted(t *testing.T) {
	_, err := Fallback{Static{}, Static{}}.Geocode(context.Background(), "plant")
	require.ErrorIs(t, err, ErrNotFound)
}
