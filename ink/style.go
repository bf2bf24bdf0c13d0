/*
Copyright 2024 The Universal Ink Library Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ink

// DefaultRenderModeURI is the render mode a Style carries when none
// is set explicitly, per spec §3.4.
const DefaultRenderModeURI = "will://rasterization/3.0/blend-mode/SourceOver"

// Style binds a stroke to the constant per-point values it does not
// vary per sample, and to the brush used to render it.
type Style struct {
	Properties          PathPointProperties
	BrushURI             string
	ParticlesRandomSeed   uint32
	RenderModeURI         string
}

// NewStyle builds a Style defaulting RenderModeURI when left blank.
func NewStyle(props PathPointProperties, brushURI string, particlesRandomSeed uint32) Style {
	return Style{
		Properties:          props,
		BrushURI:             brushURI,
		ParticlesRandomSeed:  particlesRandomSeed,
		RenderModeURI:        DefaultRenderModeURI,
	}
}

// EffectiveRenderModeURI returns s.RenderModeURI, falling back to
// DefaultRenderModeURI when unset.
func (s Style) EffectiveRenderModeURI() string {
	if s.RenderModeURI == "" {
		return DefaultRenderModeURI
	}
	return s.RenderModeURI
}
