// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

import "errors"

// ErrJunctionClosed reports that the junction's intake transport is gone:
// the junction has been closed and the envelope could not be admitted.
// Returned by fire-and-forget sends. For blocking operations the same
// condition is unrecoverable and panics instead, because the reply
// obligation could not even be registered.
var ErrJunctionClosed = errors.New("join: junction closed")

// ErrReplyNeverArrived reports that a blocking call's reply handoff
// closed before a value arrived: the junction was torn down while the
// call was waiting. Returned as a normal error, never escalated.
var ErrReplyNeverArrived = errors.New("join: reply never arrived")
