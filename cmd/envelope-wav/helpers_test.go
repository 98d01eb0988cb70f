package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefinition = 1024

func TestBuildPreset_KnownPresets(t *testing.T) {
	for _, name := range []string{"adsr", "riser", "bezier", "spline", "gaussian", "tremolo"} {
		t.Run(name, func(t *testing.T) {
			curve, err := buildPreset(name, testDefinition)
			require.NoError(t, err)
			require.NotNil(t, curve)
			assert.Equal(t, testDefinition, curve.Definition())
		})
	}
}

func TestBuildPreset_Unknown(t *testing.T) {
	_, err := buildPreset("square", testDefinition)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestBuildPreset_ADSRRendersInRange(t *testing.T) {
	curve, err := buildPreset("adsr", testDefinition)
	require.NoError(t, err)
	require.NoError(t, curve.Render())

	samples, err := curve.Samples()
	require.NoError(t, err)
	require.Len(t, samples, testDefinition)
	for i, v := range samples {
		require.GreaterOrEqual(t, v, 0.0, "sample %d", i)
		require.LessOrEqual(t, v, 1.0, "sample %d", i)
	}
	assert.Equal(t, 0.0, samples[0], "envelope starts at silence")
}

func TestToPCM_16BitFullScale(t *testing.T) {
	pcm, clipped := toPCM([]float64{0, 0.5, 1.0, -1.0}, 1.0, bitsPerSample16)
	assert.Equal(t, 0, clipped)
	assert.Equal(t, []int{0, 16383, 32767, -32767}, pcm)
}

func TestToPCM_ClipsAndCounts(t *testing.T) {
	pcm, clipped := toPCM([]float64{0.8, -0.8, 0.2}, 2.0, bitsPerSample16)
	assert.Equal(t, 2, clipped)
	assert.Equal(t, 32767, pcm[0])
	assert.Equal(t, -32767, pcm[1])
}

func TestToPCM_24Bit(t *testing.T) {
	pcm, clipped := toPCM([]float64{1.0}, 1.0, bitsPerSample24)
	assert.Equal(t, 0, clipped)
	assert.Equal(t, []int{8388607}, pcm)
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "env.wav")

	in := []int{0, 1000, -1000, 32767}
	require.NoError(t, writeWAV(path, in, 48000, bitsPerSample16))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 48000, buf.Format.SampleRate)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Equal(t, in, buf.Data)
}
