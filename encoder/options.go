// SPDX-FileCopyrightText: © 2026 The hamlbars authors <https://github.com/golangee/hamlbars/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// attributeBindingsSince is the first Ember release which binds attributes
// directly, like class={{expr}}, and deprecates bind-attr.
const attributeBindingsSince = "v1.11.0"

// ErrInvalidTarget is returned for a Target which is not a semantic version.
var ErrInvalidTarget = errors.New("invalid target version")

// Options configure the encoder. The zero value emits bind-attr helpers.
type Options struct {
	// Target is the Ember release the template is written for, like "v1.10" or "1.13.0".
	Target string
}

// canonicalTarget returns the Target in the "vMAJOR.MINOR.PATCH" form or the empty string.
func (o Options) canonicalTarget() (string, error) {
	if o.Target == "" {
		return "", nil
	}

	v := o.Target
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return "", fmt.Errorf("'%s': %w", o.Target, ErrInvalidTarget)
	}

	return semver.Canonical(v), nil
}

// Validate checks the options without encoding anything.
func (o Options) Validate() error {
	_, err := o.canonicalTarget()

	return err
}

// attributeBindings returns true if bindings must be written as plain attributes.
func (o Options) attributeBindings() (bool, error) {
	v, err := o.canonicalTarget()
	if err != nil || v == "" {
		return false, err
	}

	return semver.Compare(v, attributeBindingsSince) >= 0, nil
}
