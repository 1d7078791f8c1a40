package speaker

import "encoding/binary"

// convertPCM converts 16-bit little-endian PCM between sample rates and
// channel counts. Nearest-sample resampling is plenty for announcement
// speech.
func convertPCM(pcm []byte, fromRate, fromChannels, toRate, toChannels int) []byte {
	if fromRate <= 0 || fromChannels <= 0 || toRate <= 0 || toChannels <= 0 {
		return nil
	}

	frameSize := 2 * fromChannels
	frameCount := len(pcm) / frameSize
	if frameCount == 0 {
		return nil
	}

	frames := make([][2]int16, frameCount)
	for i := 0; i < frameCount; i++ {
		off := i * frameSize
		left := int16(binary.LittleEndian.Uint16(pcm[off : off+2]))
		right := left
		if fromChannels >= 2 {
			right = int16(binary.LittleEndian.Uint16(pcm[off+2 : off+4]))
		}
		frames[i] = [2]int16{left, right}
	}

	outCount := frameCount
	if fromRate != toRate {
		outCount = frameCount * toRate / fromRate
	}

	out := make([]byte, 0, outCount*2*toChannels)
	buf := make([]byte, 2)
	for i := 0; i < outCount; i++ {
		src := frames[i*fromRate/toRate]
		if toChannels == 1 {
			mono := int16((int32(src[0]) + int32(src[1])) / 2)
			binary.LittleEndian.PutUint16(buf, uint16(mono))
			out = append(out, buf...)
			continue
		}
		binary.LittleEndian.PutUint16(buf, uint16(src[0]))
		out = append(out, buf...)
		binary.LittleEndian.PutUint16(buf, uint16(src[1]))
		out = append(out, buf...)
	}
	return out
}
