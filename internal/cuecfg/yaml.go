// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cuecfg

import "gopkg.in/yaml.v3"

func marshalYaml(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func unmarshalYaml(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
