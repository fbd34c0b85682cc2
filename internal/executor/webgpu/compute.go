//go:build windows

package webgpu

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/spindle-la/spindle/internal/object"
	"github.com/spindle-la/spindle/internal/status"
)

// createBuffer creates a GPU buffer and uploads initial data.
func (e *Executor) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := e.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readStaging maps a staging buffer and copies its contents out.
func (e *Executor) readStaging(staging *wgpu.Buffer, size uint64) ([]byte, error) {
	if err := staging.MapAsync(e.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, status.Executionf("webgpu: failed to map staging buffer: %v", err)
	}
	defer staging.Unmap()

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)

	out := make([]byte, size)
	copy(out, mappedSlice)
	return out, nil
}

// cellBytes serializes a scalar argument cell for upload.
func cellBytes(o object.Object) ([]byte, error) {
	raw := make([]byte, 4)
	switch cell := o.(type) {
	case *object.Scalar[int32]:
		binary.LittleEndian.PutUint32(raw, uint32(cell.Value()))
	case *object.Scalar[uint32]:
		binary.LittleEndian.PutUint32(raw, cell.Value())
	case *object.Scalar[float32]:
		binary.LittleEndian.PutUint32(raw, math.Float32bits(cell.Value()))
	default:
		return nil, status.Executionf("webgpu: %T is not a device-transferable cell", o)
	}
	return raw, nil
}

// storeCell writes a readback result into the destination cell.
func storeCell(o object.Object, raw []byte) error {
	if len(raw) != 4 {
		return status.Executionf("webgpu: result has %d bytes, want 4", len(raw))
	}
	word := binary.LittleEndian.Uint32(raw)
	switch cell := o.(type) {
	case *object.Scalar[int32]:
		cell.SetValue(int32(word))
	case *object.Scalar[uint32]:
		cell.SetValue(word)
	case *object.Scalar[float32]:
		cell.SetValue(math.Float32frombits(word))
	case *object.Flag:
		cell.SetValue(word != 0)
	default:
		return status.Executionf("webgpu: %T is not a device-writable cell", o)
	}
	return nil
}
