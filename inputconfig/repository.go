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

package inputconfig

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// Repository holds the five content-addressed lists of spec §4.3:
// environments, providers, devices, sensor contexts and input
// contexts. Sensor-channel contexts are held transitively inside
// their owning sensor context, not as a sixth top-level list.
//
// Insertion order is preserved for round-trip stability and insertion
// is idempotent on Hash-Id: inserting a value equal to an existing
// one is a no-op that just returns the existing id.
type Repository struct {
	environments   []Environment
	providers      []InkInputProvider
	devices        []InputDevice
	sensorContexts []SensorContext
	inputContexts  []InputContext

	envIndex     map[identity.ID]int
	providerIdx  map[identity.ID]int
	deviceIdx    map[identity.ID]int
	sensorCtxIdx map[identity.ID]int
	inputCtxIdx  map[identity.ID]int
}

// NewRepository returns an empty, ready-to-use Repository.
func NewRepository() *Repository {
	return &Repository{
		envIndex:     map[identity.ID]int{},
		providerIdx:  map[identity.ID]int{},
		deviceIdx:    map[identity.ID]int{},
		sensorCtxIdx: map[identity.ID]int{},
		inputCtxIdx:  map[identity.ID]int{},
	}
}

// AddEnvironment inserts e if not already present and returns its id.
func (r *Repository) AddEnvironment(e Environment) identity.ID {
	id := e.ID()
	if _, ok := r.envIndex[id]; !ok {
		r.envIndex[id] = len(r.environments)
		r.environments = append(r.environments, e)
	}
	return id
}

// Environment looks up an environment by id.
func (r *Repository) Environment(id identity.ID) (Environment, error) {
	if i, ok := r.envIndex[id]; ok {
		return r.environments[i], nil
	}
	return Environment{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such environment")
}

// Environments returns the environments in insertion order.
func (r *Repository) Environments() []Environment { return r.environments }

// AddProvider inserts p if not already present and returns its id.
func (r *Repository) AddProvider(p InkInputProvider) identity.ID {
	id := p.ID()
	if _, ok := r.providerIdx[id]; !ok {
		r.providerIdx[id] = len(r.providers)
		r.providers = append(r.providers, p)
	}
	return id
}

// Provider looks up a provider by id.
func (r *Repository) Provider(id identity.ID) (InkInputProvider, error) {
	if i, ok := r.providerIdx[id]; ok {
		return r.providers[i], nil
	}
	return InkInputProvider{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such provider")
}

// Providers returns the providers in insertion order.
func (r *Repository) Providers() []InkInputProvider { return r.providers }

// AddDevice inserts d if not already present and returns its id.
func (r *Repository) AddDevice(d InputDevice) identity.ID {
	id := d.ID()
	if _, ok := r.deviceIdx[id]; !ok {
		r.deviceIdx[id] = len(r.devices)
		r.devices = append(r.devices, d)
	}
	return id
}

// Device looks up a device by id.
func (r *Repository) Device(id identity.ID) (InputDevice, error) {
	if i, ok := r.deviceIdx[id]; ok {
		return r.devices[i], nil
	}
	return InputDevice{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such device")
}

// Devices returns the devices in insertion order.
func (r *Repository) Devices() []InputDevice { return r.devices }

// AddSensorContext inserts c if not already present and returns its id.
func (r *Repository) AddSensorContext(c SensorContext) identity.ID {
	id := c.ID()
	if _, ok := r.sensorCtxIdx[id]; !ok {
		r.sensorCtxIdx[id] = len(r.sensorContexts)
		r.sensorContexts = append(r.sensorContexts, c)
	}
	return id
}

// SensorContext looks up a sensor context by id.
func (r *Repository) SensorContext(id identity.ID) (SensorContext, error) {
	if i, ok := r.sensorCtxIdx[id]; ok {
		return r.sensorContexts[i], nil
	}
	return SensorContext{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such sensor context")
}

// SensorContexts returns the sensor contexts in insertion order.
func (r *Repository) SensorContexts() []SensorContext { return r.sensorContexts }

// AddInputContext inserts c if not already present, after validating
// that both referenced ids resolve within this repository. It
// returns c's id.
func (r *Repository) AddInputContext(c InputContext) (identity.ID, error) {
	if _, err := r.Environment(c.EnvironmentID); err != nil {
		return identity.Nil, uimerr.At(uimerr.KindConsistency, c.EnvironmentID.H(), "inputconfig: input context references unknown environment")
	}
	if _, err := r.SensorContext(c.SensorContextID); err != nil {
		return identity.Nil, uimerr.At(uimerr.KindConsistency, c.SensorContextID.H(), "inputconfig: input context references unknown sensor context")
	}
	id := c.ID()
	if _, ok := r.inputCtxIdx[id]; !ok {
		r.inputCtxIdx[id] = len(r.inputContexts)
		r.inputContexts = append(r.inputContexts, c)
	}
	return id, nil
}

// InputContext looks up an input context by id.
func (r *Repository) InputContext(id identity.ID) (InputContext, error) {
	if i, ok := r.inputCtxIdx[id]; ok {
		return r.inputContexts[i], nil
	}
	return InputContext{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such input context")
}

// InputContexts returns the input contexts in insertion order.
func (r *Repository) InputContexts() []InputContext { return r.inputContexts }

// HasConfiguration reports whether any providers, devices or sensor
// contexts have been recorded, per spec §4.3.
func (r *Repository) HasConfiguration() bool {
	return len(r.providers) > 0 || len(r.devices) > 0 || len(r.sensorContexts) > 0
}

// ResolveChannel finds a sensor channel anywhere in the repository's
// sensor contexts by the channel's own Hash-Id, returning the owning
// channels-context alongside it.
func (r *Repository) ResolveChannel(id identity.ID) (SensorChannel, SensorChannelsContext, error) {
	for _, sc := range r.sensorContexts {
		for _, cc := range sc.ChannelsContexts {
			if ch, ok := cc.Channel(id); ok {
				return ch, cc, nil
			}
		}
	}
	return SensorChannel{}, SensorChannelsContext{}, uimerr.At(uimerr.KindNotFound, id.H(), "inputconfig: no such sensor channel")
}
