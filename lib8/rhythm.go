package lib8

// Beat generators for time-synchronized animation. All of them take the
// current time in milliseconds so they stay deterministic and testable;
// callers on hardware feed in a monotonic tick counter.

func beat88(nowMS uint32, bpm88 uint16, timebase uint32) uint16 {
	return uint16((nowMS - timebase) * uint32(bpm88) * 280 >> 16)
}

// Beat16 returns a 16-bit sawtooth rising at the given whole-number BPM.
func Beat16(nowMS uint32, bpm uint16, timebase uint32) uint16 {
	if bpm < 256 {
		bpm <<= 8
	}
	return beat88(nowMS, bpm, timebase)
}

// Beat8 returns an 8-bit sawtooth rising at the given whole-number BPM.
func Beat8(nowMS uint32, bpm uint16, timebase uint32) Fract8 {
	return uint8(Beat16(nowMS, bpm, timebase) >> 8)
}

// BeatSin8 returns a sine wave at the given BPM, rescaled into
// [lowest, highest] and shifted by phase.
func BeatSin8(nowMS uint32, bpm uint16, lowest, highest Fract8, timebase uint32, phase Fract8) Fract8 {
	beat := Sin8(Beat8(nowMS, bpm, timebase) + phase)
	return lowest + Scale8(beat, highest-lowest)
}
