//go:build windows

// Package webgpu implements the device executor. Operation source fragments
// are spliced into WGSL compute shader templates, compiled once per
// operation key, and dispatched against GPU buffers. Uses go-webgpu
// (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
	"k8s.io/klog/v2"

	"github.com/spindle-la/spindle/internal/schedule"
	"github.com/spindle-la/spindle/internal/status"
)

func init() {
	schedule.RegisterExecutor("webgpu", func(string) (schedule.Executor, error) {
		return New()
	})
}

// Executor runs schedule steps on a WebGPU device.
type Executor struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline caches, keyed by operation key. Two operations
	// with equal keys are interchangeable, so the cache never recompiles
	// an already seen signature.
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex
}

// New creates a device executor.
// Returns an error if WebGPU is not available or initialization fails.
func New() (exec *Executor, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			exec = nil
			err = status.Executionf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, status.Executionf("webgpu: failed to request adapter: %v", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, status.Executionf("webgpu: failed to request device: %v", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, status.Executionf("webgpu: failed to get queue")
	}

	return &Executor{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}, nil
}

// Name implements schedule.Executor.
func (e *Executor) Name() string { return "webgpu" }

// Execute runs the steps in order. All tasks of a step are encoded into one
// command batch and submitted together; the readback of their results is the
// barrier before the next step.
func (e *Executor) Execute(steps [][]*schedule.Task) error {
	for i, step := range steps {
		klog.V(1).Infof("webgpu executor: step %d with %d task(s)", i, len(step))

		batch := e.newBatch()
		for _, task := range step {
			if err := batch.encodeTask(task); err != nil {
				batch.release()
				return err
			}
		}
		if err := batch.submitAndWait(); err != nil {
			return err
		}
	}
	return nil
}

// Release frees all device resources. The executor is invalid afterwards.
func (e *Executor) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.pipelines {
		p.Release()
	}
	for _, s := range e.shaders {
		s.Release()
	}
	e.device.Release()
	e.adapter.Release()
	e.instance.Release()
}

// compileShader compiles WGSL shader code into a ShaderModule, cached by
// operation key.
func (e *Executor) compileShader(key, code string) *wgpu.ShaderModule {
	e.mu.RLock()
	if shader, exists := e.shaders[key]; exists {
		e.mu.RUnlock()
		return shader
	}
	e.mu.RUnlock()

	shader := e.device.CreateShaderModuleWGSL(code)

	e.mu.Lock()
	e.shaders[key] = shader
	e.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (e *Executor) getOrCreatePipeline(key string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	e.mu.RLock()
	if pipeline, exists := e.pipelines[key]; exists {
		e.mu.RUnlock()
		return pipeline
	}
	e.mu.RUnlock()

	pipeline := e.device.CreateComputePipelineSimple(nil, shader, "main")

	e.mu.Lock()
	e.pipelines[key] = pipeline
	e.mu.Unlock()

	return pipeline
}

func taskErr(task *schedule.Task, format string, args ...interface{}) error {
	return status.Executionf("task %s: %s", task.KeyFull(), fmt.Sprintf(format, args...))
}
