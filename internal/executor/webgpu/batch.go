//go:build windows

package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/spindle-la/spindle/internal/schedule"
)

// commandBatch accumulates one schedule step for a single submission.
// Instead of submitting each task separately (causing GPU overhead), all of
// a step's dispatches share one CommandEncoder; the readback of the staging
// buffers after submission is the step barrier.
type commandBatch struct {
	exec    *Executor
	encoder *wgpu.CommandEncoder
	pending []pendingResult
	buffers []*wgpu.Buffer
}

// pendingResult is one task result awaiting readback into its destination.
type pendingResult struct {
	task    *schedule.Task
	staging *wgpu.Buffer
	size    uint64
}

func (e *Executor) newBatch() *commandBatch {
	return &commandBatch{
		exec:    e,
		encoder: e.device.CreateCommandEncoder(nil),
	}
}

// encodeTask encodes one task's dispatch into the batch. The result copy to
// a staging buffer is encoded alongside, so a single submission covers the
// whole step.
func (b *commandBatch) encodeTask(task *schedule.Task) error {
	code, err := shaderFor(task.Op())
	if err != nil {
		return err
	}
	shader := b.exec.compileShader(task.Key(), code)
	pipeline := b.exec.getOrCreatePipeline(task.Key(), shader)

	args := task.Args()
	entries := make([]wgpu.BindGroupEntry, 0, len(args))
	for i, src := range args[1:] {
		data, err := cellBytes(src)
		if err != nil {
			return taskErr(task, "argument %d: %v", i, err)
		}
		buffer := b.exec.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopyDst)
		b.buffers = append(b.buffers, buffer)
		entries = append(entries, wgpu.BufferBindingEntry(uint32(i), buffer, 0, uint64(len(data))))
	}

	// Scalar cells and select flags are both 4-byte words on device.
	const resultSize = uint64(4)
	resultBuffer := b.exec.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
		Size:  resultSize,
	})
	b.buffers = append(b.buffers, resultBuffer)
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(args)-1), resultBuffer, 0, resultSize))

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.exec.device.CreateBindGroupSimple(bindGroupLayout, entries)
	defer bindGroup.Release()

	computePass := b.encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.DispatchWorkgroups(1, 1, 1)
	computePass.End()

	staging := b.exec.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	b.encoder.CopyBufferToBuffer(resultBuffer, 0, staging, 0, resultSize)
	b.pending = append(b.pending, pendingResult{task: task, staging: staging, size: resultSize})

	return nil
}

// submitAndWait submits the encoded step and reads every task result back
// into its destination cell. The batch is consumed.
func (b *commandBatch) submitAndWait() error {
	defer b.release()

	if len(b.pending) == 0 {
		return nil
	}

	cmdBuffer := b.encoder.Finish(nil)
	b.encoder = nil
	b.exec.queue.Submit(cmdBuffer)

	for _, p := range b.pending {
		raw, err := b.exec.readStaging(p.staging, p.size)
		if err != nil {
			return taskErr(p.task, "%v", err)
		}
		if err := storeCell(p.task.Args()[0], raw); err != nil {
			return taskErr(p.task, "%v", err)
		}
	}
	return nil
}

// release frees every buffer the batch still owns.
func (b *commandBatch) release() {
	for _, p := range b.pending {
		p.staging.Release()
	}
	b.pending = nil
	for _, buffer := range b.buffers {
		buffer.Release()
	}
	b.buffers = nil
}
