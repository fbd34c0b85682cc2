//go:build windows

package webgpu

import (
	"fmt"

	"github.com/spindle-la/spindle/internal/op"
	"github.com/spindle-la/spindle/internal/status"
)

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// Shader templates wrap an operation's source fragment into an elementwise
// compute shader. The fragment becomes the body of apply(); the surrounding
// code is fixed per variant.

const unaryTemplate = `fn apply(a: %[1]s) -> %[1]s {
%[2]s
}

@group(0) @binding(0) var<storage, read> input: array<%[1]s>;
@group(0) @binding(1) var<storage, read_write> result: array<%[1]s>;

@compute @workgroup_size(%[3]d)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < arrayLength(&input)) {
        result[idx] = apply(input[idx]);
    }
}
`

const binaryTemplate = `fn apply(a: %[1]s, b: %[1]s) -> %[1]s {
%[2]s
}

@group(0) @binding(0) var<storage, read> lhs: array<%[1]s>;
@group(0) @binding(1) var<storage, read> rhs: array<%[1]s>;
@group(0) @binding(2) var<storage, read_write> result: array<%[1]s>;

@compute @workgroup_size(%[3]d)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < arrayLength(&lhs)) {
        result[idx] = apply(lhs[idx], rhs[idx]);
    }
}
`

// Select results are stored as u32 words (0 or 1); WGSL storage buffers
// cannot hold bool.
const selectTemplate = `fn apply(a: %[1]s) -> bool {
%[2]s
}

@group(0) @binding(0) var<storage, read> input: array<%[1]s>;
@group(0) @binding(1) var<storage, read_write> result: array<u32>;

@compute @workgroup_size(%[3]d)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < arrayLength(&input)) {
        result[idx] = select(0u, 1u, apply(input[idx]));
    }
}
`

// shaderFor renders the WGSL module for an operation.
func shaderFor(o op.Op) (string, error) {
	scalar := o.Result().WGSL()
	switch o.(type) {
	case *op.Unary[int32], *op.Unary[uint32], *op.Unary[float32]:
		return fmt.Sprintf(unaryTemplate, scalar, indent(o.Source()), workgroupSize), nil
	case *op.Binary[int32], *op.Binary[uint32], *op.Binary[float32]:
		return fmt.Sprintf(binaryTemplate, scalar, indent(o.Source()), workgroupSize), nil
	case *op.Select[int32], *op.Select[uint32], *op.Select[float32]:
		return fmt.Sprintf(selectTemplate, scalar, indent(o.Source()), workgroupSize), nil
	default:
		return "", status.NotSupportedf("op %q: variant %T has no shader template", o.Key(), o)
	}
}

// indent shifts a source fragment into the apply() body.
func indent(source string) string {
	out := "    "
	for _, c := range source {
		out += string(c)
		if c == '\n' {
			out += "    "
		}
	}
	return out
}
