// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package deps

import (
	"go.jetify.com/ropescfg/internal/options"
)

// Step is one option-driven change to a spec.
type Step struct {
	Name  string
	apply func(*Spec)
}

// Steps returns the changes opts makes to a base spec. The steps touch
// disjoint names, so they can be applied in any order. opts must already be
// defaulted and valid.
func Steps(opts options.Set) []Step {
	var steps []Step
	if opts.CheckOpenGLCompatibility == options.Yes {
		steps = append(steps, Step{
			Name:  "add OpenGL sanity check",
			apply: func(s *Spec) { s.set(OpenGL, OpenGLSanityCheck) },
		})
	}
	if opts.SDLSource == options.System {
		steps = append(steps, Step{
			Name:  "use system SDL",
			apply: func(s *Spec) { s.remove(SDL, SDLTTF) },
		})
	}
	if opts.OpenGLSource == options.System {
		steps = append(steps, Step{
			Name:  "use system OpenGL",
			apply: func(s *Spec) { s.remove(GLFW) },
		})
	}
	return steps
}

// Apply runs the given steps on a copy of base and returns the copy.
func Apply(base *Spec, steps ...Step) *Spec {
	out := base.Clone()
	for _, step := range steps {
		step.apply(out)
	}
	return out
}

// Resolve returns the dependencies of base that remain once opts is applied.
// Unspecified options take their defaults. base is not modified.
func Resolve(base *Spec, opts options.Set) (*Spec, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return Apply(base, Steps(opts)...), nil
}
