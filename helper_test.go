// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join_test

import (
	"testing"

	"code.hybscloud.com/join"
)

// newJunction creates a junction torn down at test cleanup.
// Close is idempotent, so tests may also close explicitly.
func newJunction(t *testing.T) *join.Junction {
	t.Helper()
	j := join.New()
	t.Cleanup(j.Close)
	return j
}
