package augment

import (
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/prf"
	"github.com/detpipe-core/detpipe/sample"
)

// Pipeline runs the fixed-order augmentation chain on in, writing the
// result into out. out.Data must already have capacity for
// leading*CropHeight*CropWidth elements, where leading is the product of
// in's dimensions before its last two (spatial) axes; the core never
// allocates to grow it. out's Dims/NDims/TotalElements are set by
// Pipeline itself to reflect the post-crop shape.
func Pipeline(in *sample.Sample, out *sample.Sample, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) error {
	if in.NDims < 2 {
		return ErrShapeTooShallow
	}

	h := in.Dims[in.NDims-2]
	w := in.Dims[in.NDims-1]
	leading := uint32(1)
	for i := uint32(0); i < in.NDims-2; i++ {
		leading *= in.Dims[i]
	}

	cropH, cropW := cfg.CropHeight, cfg.CropWidth
	total := leading * cropH * cropW
	if uint32(len(out.Data)) < total {
		return ErrOutputTooSmall
	}

	out.Version = in.Version
	out.DType = in.DType
	out.NDims = in.NDims
	out.Dims = in.Dims
	out.Dims[in.NDims-2] = cropH
	out.Dims[in.NDims-1] = cropW
	out.TotalElements = total
	out.Data = out.Data[:total]

	applyCrop(in, out, leading, h, w, cropH, cropW, cfg, seed, epoch, sampleIdx, faults)
	applyHFlip(out, leading, cropH, cropW, cfg, seed, epoch, sampleIdx, faults)
	applyVFlip(out, leading, cropH, cropW, cfg, seed, epoch, sampleIdx, faults)
	applyBrightness(out, cfg, seed, epoch, sampleIdx, faults)
	applyNoise(out, cfg, seed, epoch, sampleIdx, faults)

	return nil
}

// applyCrop always draws offset_y and offset_x, and always crops to
// (cropH, cropW): when RandomCrop is disabled, the draws are made and
// discarded, and the centre crop is used instead of a random one.
func applyCrop(in, out *sample.Sample, leading, h, w, cropH, cropW uint32, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) {
	maxY := h - cropH
	maxX := w - cropW
	opY := packOpID(idCropY, sampleIdx, 0)
	opX := packOpID(idCropX, sampleIdx, 0)
	randY := prf.UniformUint32(seed, epoch, opY, maxY+1, faults)
	randX := prf.UniformUint32(seed, epoch, opX, maxX+1, faults)

	var offY, offX uint32
	if cfg.Flags.RandomCrop {
		offY, offX = randY, randX
	} else {
		offY, offX = maxY/2, maxX/2
	}

	for lead := uint32(0); lead < leading; lead++ {
		srcPlane := lead * h * w
		dstPlane := lead * cropH * cropW
		for y := uint32(0); y < cropH; y++ {
			srcRow := srcPlane + (offY+y)*w + offX
			dstRow := dstPlane + y*cropW
			copy(out.Data[dstRow:dstRow+cropW], in.Data[srcRow:srcRow+cropW])
		}
	}
}

// applyHFlip draws one decision bit; it reverses every row's columns only
// when HFlip is enabled and the draw's low bit is 1.
func applyHFlip(out *sample.Sample, leading, cropH, cropW uint32, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) {
	op := packOpID(idHFlip, sampleIdx, 0)
	decision := prf.PRF(seed, epoch, op) & 1
	if !cfg.Flags.HFlip || decision != 1 {
		return
	}
	for lead := uint32(0); lead < leading; lead++ {
		plane := lead * cropH * cropW
		for y := uint32(0); y < cropH; y++ {
			row := plane + y*cropW
			for x := uint32(0); x < cropW/2; x++ {
				l, r := row+x, row+cropW-1-x
				out.Data[l], out.Data[r] = out.Data[r], out.Data[l]
			}
		}
	}
}

// applyVFlip is the row-reversal counterpart of applyHFlip.
func applyVFlip(out *sample.Sample, leading, cropH, cropW uint32, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) {
	op := packOpID(idVFlip, sampleIdx, 0)
	decision := prf.PRF(seed, epoch, op) & 1
	if !cfg.Flags.VFlip || decision != 1 {
		return
	}
	for lead := uint32(0); lead < leading; lead++ {
		plane := lead * cropH * cropW
		for y := uint32(0); y < cropH/2; y++ {
			topRow := plane + y*cropW
			botRow := plane + (cropH-1-y)*cropW
			for x := uint32(0); x < cropW; x++ {
				out.Data[topRow+x], out.Data[botRow+x] = out.Data[botRow+x], out.Data[topRow+x]
			}
		}
	}
}

// applyBrightness draws one scalar factor and, if enabled, scales every
// element by it; if disabled the draw is made and discarded.
func applyBrightness(out *sample.Sample, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) {
	op := packOpID(idBrightness, sampleIdx, 0)
	r := prf.PRF(seed, epoch, op)
	if !cfg.Flags.Brightness {
		return
	}
	rSigned := fixed.Fixed(int32(uint32(r)&0xFFFF) - 32768)
	offset := fixed.RoundShiftRNE(fixed.Mul64(rSigned, cfg.BrightnessDelta), 15, faults)
	factor := fixed.Add32(fixed.One, offset, faults)
	for i := range out.Data {
		out.Data[i] = fixed.RoundShiftRNE(fixed.Mul64(out.Data[i], factor), 16, faults)
	}
}

// applyNoise draws one value per element and, if enabled, adds the
// derived noise term to that element; disabled draws are discarded.
func applyNoise(out *sample.Sample, cfg *Config, seed uint64, epoch, sampleIdx uint32, faults *fixed.FaultFlags) {
	for i := range out.Data {
		op := packOpID(idNoise, sampleIdx, uint32(i)&0xFF)
		r := prf.PRF(seed, epoch, op)
		if !cfg.Flags.AdditiveNoise {
			continue
		}
		rSigned := fixed.Fixed(int32(uint32(r)&0xFFFF) - 32768)
		noise := fixed.RoundShiftRNE(fixed.Mul64(rSigned, cfg.NoiseStd), 15, faults)
		out.Data[i] = fixed.Add32(out.Data[i], noise, faults)
	}
}
