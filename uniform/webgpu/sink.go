// SPDX-License-Identifier: MIT

//go:build webgpu

// Package webgpu uploads uniform blocks into WebGPU buffers.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings;
// the package is only built with the "webgpu" build tag.
package webgpu

import (
	"fmt"
	"unsafe"

	log "github.com/golang/glog"
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/katalvlaran/mats/uniform"
)

// Device bundles what a Sink needs from the GPU.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

// OpenDevice requests the default adapter and a device on it.
// Returns an error if WebGPU is not available.
func OpenDevice() (d *Device, err error) {
	// wgpu panics when the native library is missing.
	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", err)
	}
	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Device{instance: instance, adapter: adapter, device: device, queue: queue}, nil
}

// Release frees the device in reverse order of creation.
func (d *Device) Release() {
	d.queue.Release()
	d.device.Release()
	d.adapter.Release()
	d.instance.Release()
}

// Sink is a uniform.Sender backed by a GPU uniform buffer. Calls are encoded
// into a CPU uniform.Block; Flush copies the block into the buffer.
type Sink struct {
	dev      *Device
	block    *uniform.Block
	buffer   *wgpu.Buffer
	uploaded uint64
	flushed  bool
}

// NewSink creates a uniform buffer (Uniform|CopyDst) the size of block.
func NewSink(dev *Device, block *uniform.Block) *Sink {
	buffer := dev.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(block.Len()),
	})

	return &Sink{dev: dev, block: block, buffer: buffer}
}

// SendUniform encodes c into the block. Nothing reaches the GPU before Flush.
func (s *Sink) SendUniform(c uniform.Call) error {
	return s.block.SendUniform(c)
}

// Buffer is the GPU buffer to bind as a uniform binding.
func (s *Sink) Buffer() *wgpu.Buffer { return s.buffer }

// Block is the CPU side of the sink.
func (s *Sink) Block() *uniform.Block { return s.block }

// Flush uploads the block when it changed since the last Flush, through a
// staging buffer mapped at creation and a buffer-to-buffer copy.
func (s *Sink) Flush() {
	if s.flushed && s.block.Version() == s.uploaded {
		return
	}
	data := s.block.Bytes()
	size := uint64(len(data))

	staging := s.dev.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageCopySrc,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	defer staging.Release()

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice over the mapped range
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	staging.Unmap()

	encoder := s.dev.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(staging, 0, s.buffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	s.dev.queue.Submit(cmdBuffer)

	s.uploaded = s.block.Version()
	s.flushed = true
	log.V(1).Infof("webgpu: uploaded %d-byte %s block (version %d)", size, s.block.Layout(), s.uploaded)
}

// Release frees the GPU buffer.
func (s *Sink) Release() {
	s.buffer.Release()
}
