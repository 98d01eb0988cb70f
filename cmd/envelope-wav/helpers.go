package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	envelope "github.com/tphakala/go-audio-envelope"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0

	monoChannels = 1
	wavPCMFormat = 1
)

// buildPreset constructs one of the named demonstration envelopes at the
// given definition. Presets mirror the envelope families typical in
// synthesis work; they are also exercised by the package examples.
func buildPreset(name string, definition int) (*envelope.Curve, error) {
	switch name {
	case "adsr":
		return adsrPreset(definition)
	case "riser":
		return riserPreset(definition)
	case "bezier":
		return bezierPreset(definition)
	case "spline":
		return splinePreset(definition)
	case "gaussian":
		return gaussianPreset(definition)
	case "tremolo":
		return tremoloPreset(definition)
	default:
		return nil, fmt.Errorf("unknown preset %q (want adsr, riser, bezier, spline, gaussian or tremolo)", name)
	}
}

// adsrPreset: sharp attack, curved decay to a sustain plateau, smooth
// release back to silence.
func adsrPreset(definition int) (*envelope.Curve, error) {
	attack, err := envelope.NewSegment(0.1, 1.0, envelope.Linear())
	if err != nil {
		return nil, err
	}
	decayShape, err := envelope.Power(3)
	if err != nil {
		return nil, err
	}
	decay, err := envelope.NewSegment(0.2, 0.6, decayShape)
	if err != nil {
		return nil, err
	}
	sustain, err := envelope.NewSegment(0.4, 0.6, envelope.Linear())
	if err != nil {
		return nil, err
	}
	release, err := envelope.NewSegment(0.3, 0.0, envelope.Smooth())
	if err != nil {
		return nil, err
	}
	return envelope.New(definition, 0, []*envelope.Segment{attack, decay, sustain, release})
}

// riserPreset: a single slow exponential rise, the classic build-up sweep.
func riserPreset(definition int) (*envelope.Curve, error) {
	shape, err := envelope.Typed(-6)
	if err != nil {
		return nil, err
	}
	rise, err := envelope.NewSegment(1.0, 1.0, shape)
	if err != nil {
		return nil, err
	}
	return envelope.New(definition, 0, []*envelope.Segment{rise})
}

// bezierPreset: an S-shaped swell and release built from cubic Beziers.
func bezierPreset(definition int) (*envelope.Curve, error) {
	up := envelope.CubicBezier(envelope.Point{X: 0.2, Y: 0.9}, envelope.Point{X: 0.8, Y: 0.1})
	swell, err := envelope.NewSegment(0.5, 1.0, up)
	if err != nil {
		return nil, err
	}
	down := envelope.QuadraticBezier(envelope.Point{X: 0.3, Y: 0.2})
	fall, err := envelope.NewSegment(0.5, 0.0, down)
	if err != nil {
		return nil, err
	}
	return envelope.New(definition, 0, []*envelope.Segment{swell, fall})
}

// splinePreset: a free-form contour through a handful of knots.
func splinePreset(definition int) (*envelope.Curve, error) {
	shape, err := envelope.CubicSpline([]envelope.Point{
		{X: 0.2, Y: 0.8},
		{X: 0.3, Y: 0.3},
		{X: 0.5, Y: 1.0},
	})
	if err != nil {
		return nil, err
	}
	contour, err := envelope.NewSegment(1.0, 0.0, shape)
	if err != nil {
		return nil, err
	}
	return envelope.New(definition, 0, []*envelope.Segment{contour})
}

// gaussianPreset: a symmetric bell built from a gaussian rise and its
// inverted mirror.
func gaussianPreset(definition int) (*envelope.Curve, error) {
	bell, err := envelope.Gaussian(1, 0.5)
	if err != nil {
		return nil, err
	}
	rise, err := envelope.NewSegment(0.5, 1.0, bell)
	if err != nil {
		return nil, err
	}
	mirrored, err := envelope.Inverted(bell)
	if err != nil {
		return nil, err
	}
	fall, err := envelope.NewSegment(0.5, 0.0, mirrored)
	if err != nil {
		return nil, err
	}
	return envelope.New(definition, 0, []*envelope.Segment{rise, fall})
}

// tremoloPreset: a linear fade carrying an amplitude-ramped sine
// modulator, summed sample by sample.
func tremoloPreset(definition int) (*envelope.Curve, error) {
	fade, err := envelope.NewSegment(1.0, 0.0, envelope.Linear())
	if err != nil {
		return nil, err
	}
	carrier, err := envelope.New(definition, 1, []*envelope.Segment{fade})
	if err != nil {
		return nil, err
	}
	if err := carrier.Render(); err != nil {
		return nil, err
	}

	wobbleShape, err := envelope.Sine(envelope.FixedAmplitude(0.15), 12)
	if err != nil {
		return nil, err
	}
	wobbleSeg, err := envelope.NewSegment(1.0, 0.0, wobbleShape)
	if err != nil {
		return nil, err
	}
	wobble, err := envelope.New(definition, 0, []*envelope.Segment{wobbleSeg})
	if err != nil {
		return nil, err
	}
	if err := wobble.Render(); err != nil {
		return nil, err
	}

	if err := carrier.AddInPlace(wobble); err != nil {
		return nil, err
	}
	return carrier, nil
}

// toPCM converts a float buffer to integer PCM at the given bit depth,
// applying gain and clipping to full scale. It reports how many samples
// clipped.
func toPCM(samples []float64, gain float64, bits int) ([]int, int) {
	maxVal := maxInt16
	if bits == bitsPerSample24 {
		maxVal = maxInt24
	}

	pcm := make([]int, len(samples))
	clipped := 0
	for i, s := range samples {
		v := s * gain
		if v > 1.0 {
			v = 1.0
			clipped++
		} else if v < -1.0 {
			v = -1.0
			clipped++
		}
		pcm[i] = int(v * maxVal)
	}
	return pcm, clipped
}

// writeWAV writes mono PCM data to path.
func writeWAV(path string, pcm []int, rate, bits int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bits, monoChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  rate,
		},
		Data:           pcm,
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
