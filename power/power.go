package power

// BrightnessForMilliwatts returns the effective brightness for a frame
// whose estimated draw is totalMW: if the draw requested at the target
// brightness would exceed the maxMW ceiling, the target is scaled down to
// fit; otherwise the target passes through unchanged.
func BrightnessForMilliwatts(totalMW uint32, target uint8, maxMW uint32) uint8 {
	requested := totalMW * uint32(target) / 256
	if requested > maxMW {
		return uint8(uint32(target) * maxMW / requested)
	}
	return target
}
