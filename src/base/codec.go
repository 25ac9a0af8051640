package base

import "errors"

// EmptyCell is the packed value of a cell nobody owns.
const EmptyCell uint32 = 0

var (
	ErrInvalidOwner   = errors.New("invalid owner")
	ErrInvalidVariant = errors.New("invalid variant")
)

// CellCodec packs an owner and a sprite variant into one board cell value.
// A nonzero value v decodes as owner = (v-1)/Stride, variant = (v-1)%Stride.
type CellCodec struct {
	Stride uint32
}

var (
	FourBitCodec  = CellCodec{Stride: 16}
	EightBitCodec = CellCodec{Stride: 48}
)

func CodecFor(mode TilerMode) CellCodec {
	if mode == EightBit {
		return EightBitCodec
	}
	return FourBitCodec
}

func (c CellCodec) Encode(owner, variant int) (uint32, error) {
	if owner < 0 {
		return EmptyCell, ErrInvalidOwner
	}
	if variant < 0 || uint32(variant) >= c.Stride {
		return EmptyCell, ErrInvalidVariant
	}
	return uint32(owner)*c.Stride + uint32(variant) + 1, nil
}

// Decode returns ok=false for an empty cell.
func (c CellCodec) Decode(v uint32) (owner, variant int, ok bool) {
	if v == EmptyCell {
		return 0, 0, false
	}
	return int((v - 1) / c.Stride), int((v - 1) % c.Stride), true
}

// Encode packs with the 16-per-owner stride of the 4-bit tiler.
func Encode(owner, mask int) (uint32, error) {
	return FourBitCodec.Encode(owner, mask)
}

func Decode(v uint32) (owner, mask int, ok bool) {
	return FourBitCodec.Decode(v)
}
