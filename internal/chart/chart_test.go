package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestTopStates(t *testing.T) {
	records := agri.GenerateDefault(datagen.NewFakerWithSeed(5))
	values := analysis.TopStatesByValue(records, analysis.TopStatesLimit)

	img, err := TopStates(values, DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestYieldByCrop(t *testing.T) {
	records := agri.GenerateDefault(datagen.NewFakerWithSeed(5))

	img, err := YieldByCrop(analysis.MeanYieldByCrop(records), DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestEmptyChart(t *testing.T) {
	img, err := TopStates(nil, DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}
